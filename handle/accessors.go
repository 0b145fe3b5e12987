package handle

import (
	"math"

	"github.com/typedbuf/typedbuf/buffer"
	"github.com/typedbuf/typedbuf/errors"
	"github.com/typedbuf/typedbuf/view"
)

// resolveTag maps DefaultTag to the buffer's cached type.
func resolveTag(buf *buffer.Buffer, tag view.Tag) view.Tag {
	if tag == DefaultTag {
		return view.BufferTag(buf)
	}
	return tag
}

// Size returns the buffer's byte size.
func (t *Table) Size(h Handle) (int, error) {
	buf, err := t.get(h)
	if err != nil {
		return 0, err
	}
	return buf.Size(), nil
}

// SetSize resizes the buffer to size bytes.
func (t *Table) SetSize(h Handle, size int) error {
	buf, err := t.get(h)
	if err != nil {
		return err
	}
	if err := buf.Resize(size); err != nil {
		return err
	}
	t.notify(Event{Type: EventResized, Handle: h, Size: buf.Size()})
	return nil
}

// Length returns the buffer's element count under tag.
func (t *Table) Length(h Handle, tag view.Tag) (int, error) {
	buf, err := t.get(h)
	if err != nil {
		return 0, err
	}
	return view.ElementCount(buf, resolveTag(buf, tag))
}

// SetLength resizes the buffer so that its element count under tag
// becomes length.
func (t *Table) SetLength(h Handle, length int, tag view.Tag) error {
	buf, err := t.get(h)
	if err != nil {
		return err
	}
	elemSize, err := view.ElementSize(resolveTag(buf, tag))
	if err != nil {
		return err
	}
	if length <= 0 {
		return errors.InvalidArgument(errors.PhaseResize, "length must be positive, got %d", length)
	}
	if length > math.MaxInt/elemSize {
		return errors.InvalidArgument(errors.PhaseResize, "%d elements of %d bytes overflow", length, elemSize)
	}
	if err := buf.Resize(length * elemSize); err != nil {
		return err
	}
	t.notify(Event{Type: EventResized, Handle: h, Size: buf.Size()})
	return nil
}

// Type returns the buffer's cached type tag.
func (t *Table) Type(h Handle) (view.Tag, error) {
	buf, err := t.get(h)
	if err != nil {
		return 0, err
	}
	return view.BufferTag(buf), nil
}

// SetType caches tag as the buffer's type.
func (t *Table) SetType(h Handle, tag view.Tag) error {
	buf, err := t.get(h)
	if err != nil {
		return err
	}
	return view.SetBufferTag(buf, tag)
}

// GetValue reads the element at index under tag.
func (t *Table) GetValue(h Handle, index int, tag view.Tag) (any, error) {
	buf, err := t.get(h)
	if err != nil {
		return nil, err
	}
	return view.Get(buf, index, resolveTag(buf, tag))
}

// SetValue writes value at index under tag.
func (t *Table) SetValue(h Handle, index int, tag view.Tag, value any) error {
	buf, err := t.get(h)
	if err != nil {
		return err
	}
	return view.Set(buf, index, resolveTag(buf, tag), value)
}

// Each calls fn for every element of the buffer under tag, in index
// order, until fn returns false.
func (t *Table) Each(h Handle, tag view.Tag, fn func(index int, value any) bool) error {
	buf, err := t.get(h)
	if err != nil {
		return err
	}
	resolved := resolveTag(buf, tag)
	count, err := view.ElementCount(buf, resolved)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		v, err := view.Get(buf, i, resolved)
		if err != nil {
			return err
		}
		if !fn(i, v) {
			return nil
		}
	}
	return nil
}

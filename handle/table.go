package handle

import (
	"sync"

	"go.uber.org/zap"

	"github.com/typedbuf/typedbuf/buffer"
	"github.com/typedbuf/typedbuf/errors"
	"github.com/typedbuf/typedbuf/view"
)

// Table maps integer handles to buffers and owns their lifecycle.
type Table struct {
	mu        sync.RWMutex
	entries   map[Handle]*buffer.Buffer
	next      Handle
	observers []Observer
	closed    bool
}

// NewTable creates an empty table. Handles are never reused within a
// table's lifetime.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]*buffer.Buffer),
		next:    1,
	}
}

// Insert registers an existing buffer and returns its handle.
func (t *Table) Insert(buf *buffer.Buffer) (Handle, error) {
	if buf == nil {
		return 0, errors.InvalidArgument(errors.PhaseHandle, "nil buffer")
	}
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, errors.InvalidOperation(errors.PhaseHandle, "table is closed")
	}
	h := t.next
	t.next++
	t.entries[h] = buf
	t.mu.Unlock()

	Logger().Debug("buffer registered",
		zap.Uint32("handle", uint32(h)),
		zap.Int("size", buf.Size()),
		zap.Bool("owned", buf.Owned()))

	t.notify(Event{Type: EventCreated, Handle: h, Size: buf.Size()})
	return h, nil
}

// New allocates an owned buffer of size bytes and registers it.
func (t *Table) New(size int) (Handle, error) {
	buf, err := buffer.Alloc(size)
	if err != nil {
		return 0, err
	}
	return t.insertOrRelease(buf)
}

// NewZeroed allocates an owned, zero-filled buffer of count*elemSize
// bytes and registers it.
func (t *Table) NewZeroed(count, elemSize int) (Handle, error) {
	buf, err := buffer.AllocZeroed(count, elemSize)
	if err != nil {
		return 0, err
	}
	return t.insertOrRelease(buf)
}

func (t *Table) insertOrRelease(buf *buffer.Buffer) (Handle, error) {
	h, err := t.Insert(buf)
	if err != nil {
		buf.Release()
		return 0, err
	}
	return h, nil
}

// NewTyped allocates a zero-filled buffer holding count elements of the
// tag's type, caches the tag as the buffer's type, and registers it.
func (t *Table) NewTyped(count int, tag view.Tag) (Handle, error) {
	elemSize, err := view.ElementSize(tag)
	if err != nil {
		return 0, err
	}
	buf, err := buffer.AllocZeroed(count, elemSize)
	if err != nil {
		return 0, err
	}
	if err := view.SetBufferTag(buf, tag); err != nil {
		buf.Release()
		return 0, err
	}
	return t.insertOrRelease(buf)
}

// Get retrieves a buffer by handle.
func (t *Table) Get(h Handle) (*buffer.Buffer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	buf, ok := t.entries[h]
	return buf, ok
}

// Remove drops a handle and releases its buffer. The buffer must not
// be used afterwards.
func (t *Table) Remove(h Handle) error {
	t.mu.Lock()
	buf, ok := t.entries[h]
	if ok {
		delete(t.entries, h)
	}
	t.mu.Unlock()
	if !ok {
		return errors.NotFound(errors.PhaseHandle, "buffer", uint32(h))
	}

	err := buf.Release()

	Logger().Debug("buffer removed", zap.Uint32("handle", uint32(h)))
	t.notify(Event{Type: EventReleased, Handle: h})
	return err
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Close releases every remaining buffer and rejects further inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	remaining := make([]Handle, 0, len(t.entries))
	for h := range t.entries {
		remaining = append(remaining, h)
	}
	t.mu.Unlock()

	var firstErr error
	for _, h := range remaining {
		if err := t.Remove(h); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

func (t *Table) notify(e Event) {
	t.mu.RLock()
	observers := make([]Observer, len(t.observers))
	copy(observers, t.observers)
	t.mu.RUnlock()
	for _, o := range observers {
		o.OnBufferEvent(e)
	}
}

// get resolves a handle or reports not_found.
func (t *Table) get(h Handle) (*buffer.Buffer, error) {
	buf, ok := t.Get(h)
	if !ok {
		return nil, errors.NotFound(errors.PhaseHandle, "buffer", uint32(h))
	}
	return buf, nil
}

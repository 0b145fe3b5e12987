package buffer

import (
	"math"

	"github.com/typedbuf/typedbuf"
	"github.com/typedbuf/typedbuf/errors"
)

// Buffer is a handle to a contiguous byte region with a logical size
// tracked separately from the allocated capacity.
//
// The zero value is not usable; construct through Alloc, AllocZeroed
// or Wrap.
type Buffer struct {
	data     []byte
	size     int
	tag      int32
	owned    bool
	released bool
	alloc    typedbuf.Allocator
}

// Alloc returns an owned buffer of size uninitialized-or-zeroed bytes,
// backed by the default allocator.
func Alloc(size int) (*Buffer, error) {
	return AllocWith(typedbuf.DefaultAllocator(), size)
}

// AllocWith returns an owned buffer of size bytes backed by a. The
// content of the region is whatever a.Alloc hands out.
func AllocWith(a typedbuf.Allocator, size int) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.InvalidArgument(errors.PhaseAlloc, "size must be positive, got %d", size)
	}
	region, err := a.Alloc(size)
	if err != nil {
		return nil, errors.OutOfMemory(errors.PhaseAlloc, size, err)
	}
	return &Buffer{
		data:  region,
		size:  size,
		owned: true,
		alloc: a,
	}, nil
}

// AllocZeroed returns an owned buffer of count*elemSize bytes, all zero,
// backed by the default allocator.
func AllocZeroed(count, elemSize int) (*Buffer, error) {
	return AllocZeroedWith(typedbuf.DefaultAllocator(), count, elemSize)
}

// AllocZeroedWith returns an owned zero-filled buffer of count*elemSize
// bytes backed by a. Overflow of count*elemSize is rejected.
func AllocZeroedWith(a typedbuf.Allocator, count, elemSize int) (*Buffer, error) {
	if count <= 0 {
		return nil, errors.InvalidArgument(errors.PhaseAlloc, "count must be positive, got %d", count)
	}
	if elemSize <= 0 {
		return nil, errors.InvalidArgument(errors.PhaseAlloc, "element size must be positive, got %d", elemSize)
	}
	if count > math.MaxInt/elemSize {
		return nil, errors.InvalidArgument(errors.PhaseAlloc, "%d elements of %d bytes overflow", count, elemSize)
	}
	buf, err := AllocWith(a, count*elemSize)
	if err != nil {
		return nil, err
	}
	// custom allocators give no zeroing guarantee
	clear(buf.data[:buf.size])
	return buf, nil
}

// Wrap returns a borrowed buffer over region. The caller guarantees the
// region stays valid for the buffer's entire usable lifetime; the buffer
// never owns it, cannot resize it, and frees nothing on release.
func Wrap(region []byte) *Buffer {
	return &Buffer{
		data: region,
		size: len(region),
	}
}

// Size returns the logical length in bytes.
func (b *Buffer) Size() int {
	return b.size
}

// Capacity returns the allocated length in bytes. Borrowed buffers
// report zero, the conventional "not owned" marker.
func (b *Buffer) Capacity() int {
	if !b.owned {
		return 0
	}
	return len(b.data)
}

// Owned reports whether the buffer owns its backing region.
func (b *Buffer) Owned() bool {
	return b.owned
}

// Released reports whether the buffer has been released.
func (b *Buffer) Released() bool {
	return b.released
}

// Bytes returns the logical prefix of the backing region. The slice
// aliases the buffer's memory and is invalidated by Resize and Release.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.size]
}

// Tag returns the opaque caller tag.
func (b *Buffer) Tag() int32 {
	return b.tag
}

// SetTag stores an opaque caller tag.
func (b *Buffer) SetTag(tag int32) {
	b.tag = tag
}

// Resize grows or shrinks the logical size, preserving existing bytes
// up to min(old, new). Within the reserved capacity only the size
// changes; growing past it reallocates and frees the old region. On
// allocation failure the buffer is left untouched. Capacity never
// shrinks.
func (b *Buffer) Resize(newSize int) error {
	if b.released {
		return errors.InvalidOperation(errors.PhaseResize, "buffer already released")
	}
	if newSize <= 0 {
		return errors.InvalidArgument(errors.PhaseResize, "size must be positive, got %d", newSize)
	}
	if newSize <= len(b.data) && b.owned {
		b.size = newSize
		return nil
	}
	if !b.owned {
		return errors.InvalidOperation(errors.PhaseResize, "buffer is borrowed")
	}
	region, err := b.alloc.Alloc(newSize)
	if err != nil {
		return errors.OutOfMemory(errors.PhaseResize, newSize, err)
	}
	copy(region, b.data[:b.size])
	b.alloc.Free(b.data)
	b.data = region
	b.size = newSize
	return nil
}

// Grow enlarges (or shrinks, for negative amounts) the logical size by
// amount bytes.
func (b *Buffer) Grow(amount int) error {
	return b.Resize(b.size + amount)
}

// Release frees owned memory and marks the buffer unusable. Releasing
// a borrowed buffer frees nothing but still retires the handle. A
// second release is an error.
func (b *Buffer) Release() error {
	if b.released {
		return errors.InvalidOperation(errors.PhaseRelease, "buffer already released")
	}
	if b.owned {
		b.alloc.Free(b.data)
	}
	b.released = true
	b.data = nil
	b.size = 0
	return nil
}

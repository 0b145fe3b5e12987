// Package buffer implements the resizable byte buffer at the core of typedbuf.
//
// A Buffer tracks a logical size in bytes separately from the capacity of
// its backing region, so shrinking is free and a later regrow within the
// reserved capacity needs no reallocation.
//
// # Ownership
//
// Owned buffers (from Alloc or AllocZeroed) hold memory obtained from an
// Allocator and must be released exactly once:
//
//	buf, err := buffer.Alloc(100)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
// Borrowed buffers (from Wrap) reference a region owned by someone else.
// They cannot be resized, their reported capacity is zero, and releasing
// them frees nothing; the caller guarantees the region outlives every use
// of the buffer.
//
// # Resize Semantics
//
// Resize preserves existing bytes up to min(old, new) size. Growing past
// the current capacity reallocates; on allocation failure the buffer is
// left untouched. Capacity never shrinks. Bytes newly exposed by growth
// are unspecified unless the backing allocator zeroes its regions.
//
// The tag field is an opaque int32 for caller use; the view package
// caches the active element type in its low five bits.
package buffer

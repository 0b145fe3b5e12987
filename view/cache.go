package view

import (
	"github.com/typedbuf/typedbuf/buffer"
	"github.com/typedbuf/typedbuf/errors"
)

// SetBufferTag caches t in the low five bits of the buffer's tag field,
// preserving any caller metadata in the upper bits.
func SetBufferTag(b *buffer.Buffer, t Tag) error {
	if err := checkTag(errors.PhaseAccess, t); err != nil {
		return err
	}
	b.SetTag(b.Tag()&^TagMask | int32(t))
	return nil
}

// BufferTag returns the tag cached in the buffer's tag field. A fresh
// buffer reports unsigned char, tag zero.
func BufferTag(b *buffer.Buffer) Tag {
	return Tag(b.Tag() & TagMask)
}

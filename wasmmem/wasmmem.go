package wasmmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/typedbuf/typedbuf/buffer"
	"github.com/typedbuf/typedbuf/errors"
)

// Borrow wraps mem's current full extent as a borrowed buffer. The
// buffer aliases the instance's linear memory and stays valid only
// until the memory grows or the instance closes.
func Borrow(mem api.Memory) (*buffer.Buffer, error) {
	if mem == nil {
		return nil, errors.InvalidArgument(errors.PhaseWrap, "nil memory")
	}
	return BorrowRange(mem, 0, mem.Size())
}

// BorrowRange wraps length bytes of mem starting at offset as a
// borrowed buffer.
func BorrowRange(mem api.Memory, offset, length uint32) (*buffer.Buffer, error) {
	if mem == nil {
		return nil, errors.InvalidArgument(errors.PhaseWrap, "nil memory")
	}
	if length == 0 {
		return nil, errors.InvalidArgument(errors.PhaseWrap, "length must be positive")
	}
	region, ok := mem.Read(offset, length)
	if !ok {
		return nil, errors.New(errors.PhaseWrap, errors.KindOutOfRange).
			Detail("range [%d, %d) outside memory of %d bytes", offset, uint64(offset)+uint64(length), mem.Size()).
			Build()
	}
	return buffer.Wrap(region), nil
}

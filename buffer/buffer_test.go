package buffer

import (
	stderrors "errors"
	"fmt"
	"math"
	"testing"

	"github.com/typedbuf/typedbuf/errors"
)

func TestAlloc(t *testing.T) {
	buf, err := Alloc(100)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	if buf.Size() != 100 {
		t.Errorf("Size = %d, want 100", buf.Size())
	}
	if buf.Capacity() < 100 {
		t.Errorf("Capacity = %d, want >= 100", buf.Capacity())
	}
	if !buf.Owned() {
		t.Error("allocated buffer should be owned")
	}
	if buf.Tag() != 0 {
		t.Errorf("fresh buffer tag = %d, want 0", buf.Tag())
	}
}

func TestAlloc_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			if _, err := Alloc(size); !stderrors.Is(err, errors.InvalidArgument(errors.PhaseAlloc, "")) {
				t.Errorf("Alloc(%d) = %v, want invalid_argument", size, err)
			}
		})
	}
}

func TestAllocZeroed(t *testing.T) {
	buf, err := AllocZeroed(25, 4)
	if err != nil {
		t.Fatalf("AllocZeroed: %v", err)
	}
	defer buf.Release()

	if buf.Size() != 100 {
		t.Errorf("Size = %d, want 100", buf.Size())
	}
	for i, b := range buf.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestAllocZeroed_Overflow(t *testing.T) {
	tests := []struct {
		name            string
		count, elemSize int
	}{
		{"count overflow", math.MaxInt/8 + 1, 8},
		{"zero count", 0, 4},
		{"negative count", -1, 4},
		{"zero element size", 4, 0},
		{"negative element size", 4, -8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AllocZeroed(tt.count, tt.elemSize)
			if !stderrors.Is(err, errors.InvalidArgument(errors.PhaseAlloc, "")) {
				t.Errorf("AllocZeroed(%d, %d) = %v, want invalid_argument", tt.count, tt.elemSize, err)
			}
		})
	}
}

// failAllocator rejects allocations above a byte budget.
type failAllocator struct {
	budget int
}

func (a *failAllocator) Alloc(size int) ([]byte, error) {
	if size > a.budget {
		return nil, stderrors.New("budget exceeded")
	}
	return make([]byte, size), nil
}

func (a *failAllocator) Free([]byte) {}

func TestAllocWith_AllocatorFailure(t *testing.T) {
	_, err := AllocWith(&failAllocator{budget: 10}, 100)
	if !stderrors.Is(err, errors.OutOfMemory(errors.PhaseAlloc, 0, nil)) {
		t.Errorf("err = %v, want out_of_memory", err)
	}
}

func TestResize_WithinCapacity(t *testing.T) {
	buf, err := Alloc(100)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	for i := range buf.Bytes() {
		buf.Bytes()[i] = byte(i)
	}

	if err := buf.Resize(10); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if buf.Size() != 10 {
		t.Errorf("Size = %d, want 10", buf.Size())
	}
	if buf.Capacity() < 100 {
		t.Errorf("Capacity = %d after shrink, want >= 100", buf.Capacity())
	}

	// regrow inside the reserved capacity; pre-shrink bytes survive
	if err := buf.Resize(100); err != nil {
		t.Fatalf("regrow: %v", err)
	}
	for i := 0; i < 100; i++ {
		if buf.Bytes()[i] != byte(i) {
			t.Fatalf("byte %d = %#x after shrink/regrow, want %#x", i, buf.Bytes()[i], byte(i))
		}
	}
}

func TestResize_GrowPreservesPrefix(t *testing.T) {
	buf, err := Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	for i := range buf.Bytes() {
		buf.Bytes()[i] = byte(0xa0 + i)
	}

	if err := buf.Resize(4096); err != nil {
		t.Fatalf("grow: %v", err)
	}
	if buf.Size() != 4096 {
		t.Errorf("Size = %d, want 4096", buf.Size())
	}
	if buf.Capacity() < 4096 {
		t.Errorf("Capacity = %d, want >= 4096", buf.Capacity())
	}
	for i := 0; i < 16; i++ {
		if buf.Bytes()[i] != byte(0xa0+i) {
			t.Fatalf("byte %d = %#x after grow, want %#x", i, buf.Bytes()[i], byte(0xa0+i))
		}
	}
}

func TestResize_InvalidSize(t *testing.T) {
	buf, err := Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	for _, size := range []int{0, -5} {
		if err := buf.Resize(size); !stderrors.Is(err, errors.InvalidArgument(errors.PhaseResize, "")) {
			t.Errorf("Resize(%d) = %v, want invalid_argument", size, err)
		}
	}
	if buf.Size() != 8 {
		t.Errorf("Size changed to %d after rejected resize", buf.Size())
	}
}

func TestResize_FailedGrowLeavesBufferIntact(t *testing.T) {
	a := &failAllocator{budget: 64}
	buf, err := AllocWith(a, 16)
	if err != nil {
		t.Fatalf("AllocWith: %v", err)
	}
	defer buf.Release()

	for i := range buf.Bytes() {
		buf.Bytes()[i] = byte(i + 1)
	}

	if err := buf.Resize(1024); !stderrors.Is(err, errors.OutOfMemory(errors.PhaseResize, 0, nil)) {
		t.Fatalf("Resize past budget = %v, want out_of_memory", err)
	}
	if buf.Size() != 16 {
		t.Errorf("Size = %d after failed grow, want 16", buf.Size())
	}
	for i := 0; i < 16; i++ {
		if buf.Bytes()[i] != byte(i+1) {
			t.Fatalf("byte %d corrupted after failed grow", i)
		}
	}
}

func TestGrow(t *testing.T) {
	buf, err := Alloc(10)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	if err := buf.Grow(6); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if buf.Size() != 16 {
		t.Errorf("Size = %d, want 16", buf.Size())
	}
	if err := buf.Grow(-8); err != nil {
		t.Fatalf("Grow negative: %v", err)
	}
	if buf.Size() != 8 {
		t.Errorf("Size = %d, want 8", buf.Size())
	}
}

func TestWrap(t *testing.T) {
	region := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf := Wrap(region)

	if buf.Size() != 8 {
		t.Errorf("Size = %d, want 8", buf.Size())
	}
	if buf.Capacity() != 0 {
		t.Errorf("Capacity = %d for borrowed buffer, want 0", buf.Capacity())
	}
	if buf.Owned() {
		t.Error("wrapped buffer should not be owned")
	}

	// the buffer aliases the caller's region
	buf.Bytes()[0] = 0xff
	if region[0] != 0xff {
		t.Error("write through buffer did not reach the wrapped region")
	}
}

func TestWrap_ResizeRejected(t *testing.T) {
	buf := Wrap(make([]byte, 32))

	for _, size := range []int{64, 16} {
		if err := buf.Resize(size); !stderrors.Is(err, errors.InvalidOperation(errors.PhaseResize, "")) {
			t.Errorf("Resize(%d) on borrowed buffer = %v, want invalid_operation", size, err)
		}
	}
	if buf.Size() != 32 {
		t.Errorf("Size = %d after rejected resize, want 32", buf.Size())
	}
}

func TestRelease(t *testing.T) {
	buf, err := Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	if err := buf.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if !buf.Released() {
		t.Error("Released() = false after release")
	}
	if buf.Size() != 0 {
		t.Errorf("Size = %d after release, want 0", buf.Size())
	}

	if err := buf.Release(); !stderrors.Is(err, errors.InvalidOperation(errors.PhaseRelease, "")) {
		t.Errorf("double release = %v, want invalid_operation", err)
	}
	if err := buf.Resize(16); !stderrors.Is(err, errors.InvalidOperation(errors.PhaseResize, "")) {
		t.Errorf("resize after release = %v, want invalid_operation", err)
	}
}

func TestRelease_Borrowed(t *testing.T) {
	region := []byte{9, 9, 9}
	buf := Wrap(region)

	if err := buf.Release(); err != nil {
		t.Fatalf("Release on borrowed buffer: %v", err)
	}
	// the caller's region is untouched
	for i, b := range region {
		if b != 9 {
			t.Errorf("region byte %d = %d after release, want 9", i, b)
		}
	}
}

func TestSizeCapacityInvariant(t *testing.T) {
	buf, err := Alloc(50)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	check := func(step string) {
		t.Helper()
		if buf.Capacity() > 0 && buf.Size() > buf.Capacity() {
			t.Fatalf("%s: size %d > capacity %d", step, buf.Size(), buf.Capacity())
		}
	}

	check("after alloc")
	for _, size := range []int{1, 200, 13, 199, 4096, 1} {
		if err := buf.Resize(size); err != nil {
			t.Fatalf("Resize(%d): %v", size, err)
		}
		check(fmt.Sprintf("after Resize(%d)", size))
	}
}

func TestTagRoundTrip(t *testing.T) {
	buf, err := Alloc(4)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer buf.Release()

	buf.SetTag(0x7f00_0012)
	if buf.Tag() != 0x7f00_0012 {
		t.Errorf("Tag = %#x, want 0x7f000012", buf.Tag())
	}
}

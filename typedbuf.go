package typedbuf

// Allocator provides the raw memory behind owned buffers.
//
// Alloc returns a region of at least size bytes; the region's full
// length is taken as the buffer's capacity. No zeroing is guaranteed.
// Free returns a region previously obtained from Alloc; implementations
// that do not recycle memory may treat it as a no-op.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// heapAllocator hands out fresh garbage-collected regions.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapAllocator) Free([]byte) {}

// DefaultAllocator returns the make-based allocator used when no
// custom allocator is supplied. Its Alloc never fails and its regions
// come back zeroed.
func DefaultAllocator() Allocator {
	return heapAllocator{}
}

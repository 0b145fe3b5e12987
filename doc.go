// Package typedbuf provides resizable, runtime-typed memory buffers.
//
// A buffer owns (or borrows) a contiguous byte region and tracks its
// logical size separately from its allocated capacity. The view layer
// reinterprets a buffer's bytes as an array of a numeric type selected
// at runtime by a type tag, with bounds-checked signed/unsigned element
// access.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	typedbuf/            Root package with the core Allocator interface
//	├── buffer/          Buffer lifecycle: allocate, zero-fill, wrap, resize, release
//	├── view/            Type tags, element sizing, typed element access, tag parsing
//	├── handle/          Handle table surfacing buffers to embedding layers
//	├── errors/          Structured error types for debugging
//	└── wasmmem/         Borrowing WASM linear memory as a buffer region
//
// # Quick Start
//
// Allocate a zero-filled buffer and access it through a type tag:
//
//	buf, err := buffer.AllocZeroed(25, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Release()
//
//	tag, _ := view.Parse("signed int32")
//	n, _ := view.ElementCount(buf, tag) // 25
//	for i := 0; i < n; i++ {
//	    view.Set(buf, i, tag, int32(i))
//	}
//	v, _ := view.Get(buf, 3, tag) // int64(3)
//
// The same bytes can be read back through a different tag; element size
// and count are always derived from the buffer's byte size and the
// requested type, so distinct views of one buffer never desynchronize.
//
// # Ownership Model
//
// Buffers come in two ownership modes. Owned buffers hold memory
// obtained from an Allocator and must be released exactly once.
// Borrowed buffers (created by Wrap) reference memory owned by an
// external party; resizing them is an error and releasing them frees
// nothing. A borrowed buffer's capacity is reported as zero, the
// conventional "not owned" marker for interop handles.
//
// # Thread Safety
//
// Buffers are mutable shared state with single-threaded semantics: the
// library performs no internal locking, and an embedding system that
// shares a buffer across goroutines must serialize Resize, Set and
// Release against any concurrent access. The handle.Table is safe for
// concurrent use; the buffers it hands out are not.
package typedbuf

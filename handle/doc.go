// Package handle surfaces buffers to embedding layers through opaque
// integer handles instead of Go pointers.
//
// A binding layer (scripting language, FFI surface) keeps a Table and
// refers to buffers by Handle. The table owns the buffer lifecycle:
// Remove releases owned memory exactly once, and Close drains whatever
// the embedder leaked.
//
//	table := handle.NewTable()
//	defer table.Close()
//
//	h, err := table.NewTyped(25, view.Fixed32|view.Signed)
//	table.SetValue(h, 0, handle.DefaultTag, 42)
//	v, err := table.GetValue(h, 0, handle.DefaultTag)
//	table.Remove(h)
//
// # Named Accessors
//
// The operation set mirrors what a binding exposes as object
// properties: Size/SetSize (bytes), Length/SetLength (elements of a
// type), Type/SetType (the cached tag), GetValue/SetValue (indexed
// element access) and Each (iteration). Passing DefaultTag for a tag
// argument resolves to the buffer's cached type, the way an omitted
// argument does in the binding.
//
// # Observers
//
// Subscribe to track buffer lifecycle events:
//
//	table.Subscribe(handle.ObserverFunc(func(e handle.Event) {
//	    switch e.Type {
//	    case handle.EventCreated:
//	        log.Printf("buffer %d created (%d bytes)", e.Handle, e.Size)
//	    case handle.EventReleased:
//	        log.Printf("buffer %d released", e.Handle)
//	    }
//	}))
//
// # Concurrency
//
// The table itself is safe for concurrent use. The buffers it manages
// keep the library's single-threaded semantics: concurrent mutation of
// one buffer through its handle must be serialized by the embedder.
package handle

// Package wasmmem borrows WebAssembly linear memory as a buffer region.
//
// A WASM instance owns its linear memory; this package wraps that
// memory's current extent as a borrowed buffer, so the view layer can
// apply runtime-typed element access to guest memory without copying:
//
//	mem := mod.ExportedMemory("mem")
//	buf, err := wasmmem.Borrow(mem)
//	v, err := view.Get(buf, 0, view.Fixed32)
//
// The borrowed region aliases the instance's memory. Growing the
// memory may move it, which invalidates the buffer exactly as the
// borrowed-lifetime contract warns; re-borrow after any growth.
package wasmmem

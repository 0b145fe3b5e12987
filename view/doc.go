// Package view interprets a buffer's bytes as an array of a numeric type
// selected at runtime by a type tag.
//
// # Type Tags
//
// A Tag packs a 4-bit category and a signedness bit (0x10). Categories
// cover the platform-width types char, short, int, long, long long,
// float and double, plus the fixed-width integers int8 through int64.
// The signedness bit is meaningful for integer categories only and is
// ignored for float and double.
//
// Category availability depends on the configured MaxInteger constant:
// a category whose platform width cannot be represented without
// truncation does not exist on that build, and tags naming it fail
// validation with an unsupported_type error.
//
// # Element Access
//
// Element size and count are always derived from the buffer's byte size
// and the requested tag, never stored per buffer, so views cannot
// desynchronize from the byte size after a resize:
//
//	n, _ := view.ElementCount(buf, tag) // buf.Size() / ElementSize(tag)
//	v, _ := view.Get(buf, 0, tag)
//	err := view.Set(buf, 0, tag, 42)
//
// Get returns int64 for signed integer tags, uint64 for unsigned ones
// and float64 for float/double. Set accepts any Go numeric type and
// truncates to the element's width using the target type's native
// conversion, like a C value cast. Reads and writes use the host's
// native byte order, so reading the same bytes through a different tag
// reinterprets the in-memory representation bit for bit.
//
// Out-of-range indexes are rejected with out_of_range for both Get and
// Set; nothing is silently clamped or dropped.
//
// # Cached Tags
//
// SetBufferTag caches a tag in the low five bits of a buffer's opaque
// tag field, leaving the remaining bits to the caller. Embedding layers
// use the cached tag as the default when an operation omits an explicit
// one.
package view

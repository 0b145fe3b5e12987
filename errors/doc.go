// Package errors provides structured error types for the typedbuf library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the offending type tag, element index, and
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindOutOfRange).
//		Tag("unsigned int32").
//		Index(30).
//		Detail("element count is 25").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseAccess, 30, 25)
//	err := errors.UnsupportedType(errors.PhaseParse, "int64")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

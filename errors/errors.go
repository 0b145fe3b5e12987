package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc   Phase = "alloc"   // buffer construction
	PhaseResize  Phase = "resize"  // logical size changes
	PhaseAccess  Phase = "access"  // typed element reads/writes
	PhaseParse   Phase = "parse"   // type token parsing
	PhaseWrap    Phase = "wrap"    // borrowing external regions
	PhaseRelease Phase = "release" // buffer destruction
	PhaseHandle  Phase = "handle"  // handle table operations
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfMemory      Kind = "out_of_memory"
	KindInvalidArgument  Kind = "invalid_argument"
	KindUnsupportedType  Kind = "unsupported_type"
	KindOutOfRange       Kind = "out_of_range"
	KindInvalidOperation Kind = "invalid_operation"
	KindNotFound         Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Tag    string
	Index  int
	Detail string

	hasIndex bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Tag != "" {
		b.WriteString(": type ")
		b.WriteString(e.Tag)
	}

	if e.hasIndex {
		if e.Tag != "" {
			b.WriteString(", index ")
		} else {
			b.WriteString(": index ")
		}
		fmt.Fprintf(&b, "%d", e.Index)
	}

	if e.Detail != "" {
		if e.Tag != "" || e.hasIndex {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Tag sets the type tag's textual form
func (b *Builder) Tag(tag string) *Builder {
	b.err.Tag = tag
	return b
}

// Index sets the element index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	b.err.hasIndex = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfMemory creates an allocation failure error
func OutOfMemory(phase Phase, size int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Cause:  cause,
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// UnsupportedType creates an error for a tag naming a category absent on this build
func UnsupportedType(phase Phase, tag string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Tag:    tag,
		Detail: "type not available on this build",
	}
}

// OutOfRange creates an index out of range error
func OutOfRange(phase Phase, index, count int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfRange,
		Index:    index,
		hasIndex: true,
		Detail:   fmt.Sprintf("index out of range (element count %d)", count),
		Value:    index,
	}
}

// InvalidOperation creates an error for an operation the buffer's state forbids
func InvalidOperation(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOperation,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %d not found", what, id),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

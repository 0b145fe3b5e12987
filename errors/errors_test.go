package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseAccess,
				Kind:     KindOutOfRange,
				Tag:      "unsigned int32",
				Index:    30,
				hasIndex: true,
				Detail:   "element count is 25",
			},
			contains: []string{"[access]", "out_of_range", "unsigned int32", "30", "element count is 25"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResize,
				Kind:  KindInvalidOperation,
			},
			contains: []string{"[resize]", "invalid_operation"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindOutOfMemory,
				Detail: "failed to allocate 4096 bytes",
				Cause:  errors.New("arena exhausted"),
			},
			contains: []string{"[alloc]", "out_of_memory", "4096", "caused by", "arena exhausted"},
		},
		{
			name:     "index zero is rendered",
			err:      OutOfRange(PhaseAccess, 0, 0),
			contains: []string{"[access]", "out_of_range", "index 0", "element count 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseResize, KindOutOfMemory, cause, "grow to 1024 bytes")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := OutOfRange(PhaseAccess, 5, 3)
	b := OutOfRange(PhaseAccess, 99, 100)
	c := InvalidArgument(PhaseAccess, "bad index")

	if !errors.Is(a, b) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different kind should not match")
	}
	if errors.Is(a, errors.New("plain")) {
		t.Error("structured error should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseParse, KindUnsupportedType).
		Tag("int64").
		Value(uint8(0x1a)).
		Detail("maximum integer width is %d bits", 32).
		Build()

	if err.Phase != PhaseParse || err.Kind != KindUnsupportedType {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Tag != "int64" {
		t.Errorf("unexpected tag: %q", err.Tag)
	}
	if err.Detail != "maximum integer width is 32 bits" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Value != uint8(0x1a) {
		t.Errorf("unexpected value: %v", err.Value)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"out of memory", OutOfMemory(PhaseAlloc, 100, nil), KindOutOfMemory},
		{"invalid argument", InvalidArgument(PhaseAlloc, "size must be positive, got %d", -1), KindInvalidArgument},
		{"unsupported type", UnsupportedType(PhaseParse, "int64"), KindUnsupportedType},
		{"out of range", OutOfRange(PhaseAccess, 25, 25), KindOutOfRange},
		{"invalid operation", InvalidOperation(PhaseResize, "buffer is borrowed"), KindInvalidOperation},
		{"not found", NotFound(PhaseHandle, "buffer", 7), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

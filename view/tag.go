package view

import (
	"math"
	"math/bits"

	"github.com/typedbuf/typedbuf/errors"
)

// Tag identifies an element type: a 4-bit category plus the Signed bit.
type Tag uint8

const (
	Char     Tag = 0x0
	Short    Tag = 0x1
	Int      Tag = 0x2
	Long     Tag = 0x3
	LongLong Tag = 0x4
	Float    Tag = 0x5
	Double   Tag = 0x6
	Fixed8   Tag = 0x7
	Fixed16  Tag = 0x8
	Fixed32  Tag = 0x9
	Fixed64  Tag = 0xa

	// Signed marks an integer tag as signed. Ignored for Float/Double.
	Signed Tag = 0x10

	categoryMask Tag = 0x0f
	tagMask      Tag = 0x1f
)

// TagMask covers the bits the view layer reserves in a buffer's tag
// field; the remaining bits are free for caller metadata.
const TagMask int32 = int32(tagMask)

// MaxInteger is the widest integer value the embedding surface can
// represent. Categories wider than this do not exist on the build.
const MaxInteger = math.MaxInt64

// longWidth is the platform's native word width in bytes, standing in
// for C's long.
const longWidth = bits.UintSize / 8

var categoryNames = [...]string{
	Char:     "char",
	Short:    "short",
	Int:      "int",
	Long:     "long",
	LongLong: "long long",
	Float:    "float",
	Double:   "double",
	Fixed8:   "int8",
	Fixed16:  "int16",
	Fixed32:  "int32",
	Fixed64:  "int64",
}

// categorySizes maps each category to its element width in bytes.
// Platform categories use the native width; fixed-width categories use
// their own regardless of platform.
var categorySizes = [...]int{
	Char:     1,
	Short:    2,
	Int:      4,
	Long:     longWidth,
	LongLong: 8,
	Float:    4,
	Double:   8,
	Fixed8:   1,
	Fixed16:  2,
	Fixed32:  4,
	Fixed64:  8,
}

// available is the capability table: computed once from MaxInteger, it
// gates every tag-accepting entry point. Float categories are always
// present since the surface's number type is 64-bit.
var available = computeAvailable(MaxInteger)

// computeAvailable gates each integer category on whether its widest
// value fits in maxInteger without truncation.
func computeAvailable(maxInteger int64) [16]bool {
	var a [16]bool
	a[Char] = true
	a[Short] = maxInteger >= math.MaxInt16
	a[Int] = maxInteger >= math.MaxInt32
	a[Long] = longWidth < 8 || maxInteger >= math.MaxInt64
	a[LongLong] = maxInteger >= math.MaxInt64
	a[Float] = true
	a[Double] = true
	a[Fixed8] = true
	a[Fixed16] = maxInteger >= math.MaxInt16
	a[Fixed32] = maxInteger >= math.MaxInt32
	a[Fixed64] = maxInteger >= math.MaxInt64
	return a
}

// Category strips the signedness bit.
func (t Tag) Category() Tag {
	return t & categoryMask
}

// IsSigned reports whether the signedness bit is set.
func (t Tag) IsSigned() bool {
	return t&Signed != 0
}

// IsFloat reports whether the tag names a floating-point category.
func (t Tag) IsFloat() bool {
	c := t.Category()
	return c == Float || c == Double
}

func (t Tag) String() string {
	c := t.Category()
	if t&tagMask != t || int(c) >= len(categoryNames) || categoryNames[c] == "" {
		return "unknown"
	}
	if t.IsFloat() {
		return categoryNames[c]
	}
	if t.IsSigned() {
		return "signed " + categoryNames[c]
	}
	return "unsigned " + categoryNames[c]
}

// Valid reports whether no stray bits are set and the tag's category is
// available on this build.
func Valid(t Tag) bool {
	return t&tagMask == t && available[t.Category()]
}

// checkTag classifies an invalid tag: stray bits or an unknown category
// are an argument error, a known-but-gated category is unsupported.
func checkTag(phase errors.Phase, t Tag) error {
	if t&tagMask != t || int(t.Category()) >= len(categoryNames) || categoryNames[t.Category()] == "" {
		return errors.New(phase, errors.KindInvalidArgument).
			Value(t).
			Detail("unrecognized type tag %#x", uint8(t)).
			Build()
	}
	if !available[t.Category()] {
		return errors.UnsupportedType(phase, t.String())
	}
	return nil
}

// ElementSize returns the byte width of one element of the tag's type.
func ElementSize(t Tag) (int, error) {
	if err := checkTag(errors.PhaseAccess, t); err != nil {
		return 0, err
	}
	return categorySizes[t.Category()], nil
}

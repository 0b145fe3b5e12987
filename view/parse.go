package view

import (
	"strings"

	"github.com/typedbuf/typedbuf/errors"
)

// category names and their fixed-width aliases, as the embedding
// surface spells them
var tokenCategories = map[string]Tag{
	"char":      Char,
	"short":     Short,
	"int":       Int,
	"long":      Long,
	"long long": LongLong,
	"float":     Float,
	"double":    Double,
	"8":         Fixed8,
	"int8":      Fixed8,
	"16":        Fixed16,
	"int16":     Fixed16,
	"32":        Fixed32,
	"int32":     Fixed32,
	"64":        Fixed64,
	"int64":     Fixed64,
}

// Parse maps a human-readable type description to a tag. The token is
// an optional "signed " or "unsigned " qualifier followed by a category
// name or a bare fixed-width number. Unrecognized text is an argument
// error; recognized text naming a category gated off this build is an
// unsupported_type error.
func Parse(token string) (Tag, error) {
	name := token
	var sign Tag
	if rest, ok := strings.CutPrefix(name, "signed "); ok {
		name = rest
		sign = Signed
	} else if rest, ok := strings.CutPrefix(name, "unsigned "); ok {
		name = rest
	}

	category, ok := tokenCategories[name]
	if !ok {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidArgument).
			Detail("unrecognized type %q", token).
			Build()
	}

	t := category | sign
	if !available[category] {
		return 0, errors.UnsupportedType(errors.PhaseParse, t.String())
	}
	return t, nil
}

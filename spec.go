package castable

import "strings"

// CastSpec is a parsed cast declaration. Declarations take the form
// "type" or "type:arg1,arg2"; arguments are positional, untyped strings
// handed through to caster construction. A CastSpec is immutable after
// parsing.
type CastSpec struct {
	// Type is the cast type identifier (e.g. "datetime", "decimal",
	// "encrypted:array", or a registered caster name).
	Type string

	// Args holds the positional arguments following the first colon,
	// split on commas. Empty when the declaration has no arguments.
	Args []string
}

// ParseCast parses a raw cast declaration string into a CastSpec.
// Everything before the first ':' is the type identifier; everything
// after is split on ',' into arguments. Identifiers are not validated
// here — unknown types surface later as classification errors.
func ParseCast(decl string) CastSpec {
	typ, rest, ok := strings.Cut(decl, ":")
	if !ok {
		return CastSpec{Type: decl}
	}
	return CastSpec{Type: typ, Args: strings.Split(rest, ",")}
}

// Arg returns the i'th argument, or fallback when absent.
func (s CastSpec) Arg(i int, fallback string) string {
	if i < len(s.Args) {
		return s.Args[i]
	}
	return fallback
}

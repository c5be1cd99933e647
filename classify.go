package castable

import (
	"fmt"
	"strings"
)

// typeName names a non-string, non-caster declaration for error context.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// CastType represents a built-in primitive cast type.
// These identifiers are handled by the primitive cast delegate rather
// than a user-supplied caster.
type CastType string

// Primitive cast vocabulary.
const (
	CastArray               CastType = "array"
	CastBool                CastType = "bool"
	CastBoolean             CastType = "boolean"
	CastCollection          CastType = "collection"
	CastCustomDatetime      CastType = "custom_datetime"
	CastDate                CastType = "date"
	CastDatetime            CastType = "datetime"
	CastDecimal             CastType = "decimal"
	CastDouble              CastType = "double"
	CastEncrypted           CastType = "encrypted"
	CastEncryptedArray      CastType = "encrypted:array"
	CastEncryptedCollection CastType = "encrypted:collection"
	CastEncryptedJSON       CastType = "encrypted:json"
	CastEncryptedObject     CastType = "encrypted:object"
	CastFloat               CastType = "float"
	CastInt                 CastType = "int"
	CastInteger             CastType = "integer"
	CastJSON                CastType = "json"
	CastObject              CastType = "object"
	CastReal                CastType = "real"
	CastString              CastType = "string"
	CastTimestamp           CastType = "timestamp"
)

// primitiveCasts is the fixed primitive vocabulary. Declarations whose
// type identifier falls outside this set are candidates for class casts.
var primitiveCasts = map[CastType]bool{
	CastArray:               true,
	CastBool:                true,
	CastBoolean:             true,
	CastCollection:          true,
	CastCustomDatetime:      true,
	CastDate:                true,
	CastDatetime:            true,
	CastDecimal:             true,
	CastDouble:              true,
	CastEncrypted:           true,
	CastEncryptedArray:      true,
	CastEncryptedCollection: true,
	CastEncryptedJSON:       true,
	CastEncryptedObject:     true,
	CastFloat:               true,
	CastInt:                 true,
	CastInteger:             true,
	CastJSON:                true,
	CastObject:              true,
	CastReal:                true,
	CastString:              true,
	CastTimestamp:           true,
}

// jsonCasts selects JSON encode/decode processing.
var jsonCasts = map[CastType]bool{
	CastArray:               true,
	CastJSON:                true,
	CastObject:              true,
	CastCollection:          true,
	CastEncryptedArray:      true,
	CastEncryptedCollection: true,
	CastEncryptedJSON:       true,
	CastEncryptedObject:     true,
}

// encryptedCasts selects encryption/decryption processing.
var encryptedCasts = map[CastType]bool{
	CastEncrypted:           true,
	CastEncryptedArray:      true,
	CastEncryptedCollection: true,
	CastEncryptedJSON:       true,
	CastEncryptedObject:     true,
}

// IsPrimitiveCastType returns true if t is in the primitive vocabulary.
func IsPrimitiveCastType(t CastType) bool {
	return primitiveCasts[t]
}

// declaration returns the raw cast registry entry for key.
func (e *Engine) declaration(key string) (any, bool) {
	d, ok := e.rec.Casts()[key]
	return d, ok
}

// castType normalizes the declaration for key into its classified type.
// Parameterized date and decimal declarations collapse to their
// vocabulary entries; composite encrypted types stay whole. Returns ""
// when no string declaration exists.
func (e *Engine) castType(key string) CastType {
	d, ok := e.declaration(key)
	if !ok {
		return ""
	}
	s, ok := d.(string)
	if !ok {
		return ""
	}
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(t, "date:"), strings.HasPrefix(t, "datetime:"):
		return CastCustomDatetime
	case strings.HasPrefix(t, "decimal:"):
		return CastDecimal
	}
	return CastType(t)
}

// castSpecFor parses the string declaration for key. The second return
// is false when no declaration exists or it is a live caster.
func (e *Engine) castSpecFor(key string) (CastSpec, bool) {
	d, ok := e.declaration(key)
	if !ok {
		return CastSpec{}, false
	}
	s, ok := d.(string)
	if !ok {
		return CastSpec{}, false
	}
	return ParseCast(s), true
}

// IsPrimitiveCast reports whether key's classified type is in the
// primitive vocabulary. Absent declarations are simply not primitive.
func (e *Engine) IsPrimitiveCast(key string) bool {
	return primitiveCasts[e.castType(key)]
}

// IsJSONCast reports whether key's classified type is in the JSON family.
func (e *Engine) IsJSONCast(key string) bool {
	return jsonCasts[e.castType(key)]
}

// IsEncryptedCast reports whether key's classified type is in the
// encrypted family.
func (e *Engine) IsEncryptedCast(key string) bool {
	return encryptedCasts[e.castType(key)]
}

// IsClassCastable reports whether key's declaration names a user-supplied
// caster. False when no declaration exists or the type identifier is
// primitive. A declaration that is neither primitive nor resolvable to a
// registered caster fails with InvalidCastError immediately: that is a
// configuration error, surfaced loud, never retried. Classification
// never mutates the registry.
func (e *Engine) IsClassCastable(key string) (bool, error) {
	d, ok := e.declaration(key)
	if !ok {
		return false, nil
	}
	if _, live := d.(CasterSetter); live {
		return true, nil
	}
	s, ok := d.(string)
	if !ok {
		return false, newInvalidCastError(e.rec.Identity(), key, typeName(d))
	}
	spec := ParseCast(s)
	if primitiveCasts[CastType(strings.ToLower(strings.TrimSpace(spec.Type)))] {
		return false, nil
	}
	if _, registered := lookupCaster(spec.Type); registered {
		return true, nil
	}
	return false, newInvalidCastError(e.rec.Identity(), key, spec.Type)
}

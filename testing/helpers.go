// Package testing provides test utilities for castable.
package testing

import (
	"maps"
	"time"

	"github.com/ahmetaksoy/castable"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncrypter returns an AES-GCM encrypter configured for testing.
func TestEncrypter() castable.Encrypter {
	enc, err := castable.AES(TestKey())
	if err != nil {
		panic(err)
	}
	return enc
}

// MapRecord is a map-backed castable.Record for tests and examples.
type MapRecord struct {
	Name    string
	Attrs   map[string]any
	CastMap map[string]any

	// DateAttrs marks keys reported as date attributes.
	DateAttrs map[string]bool
}

// NewMapRecord returns an empty MapRecord with the given cast registry.
func NewMapRecord(name string, casts map[string]any) *MapRecord {
	return &MapRecord{
		Name:    name,
		Attrs:   make(map[string]any),
		CastMap: casts,
	}
}

func (r *MapRecord) Attributes() map[string]any { return r.Attrs }

func (r *MapRecord) SetRawAttribute(key string, value any) { r.Attrs[key] = value }

func (r *MapRecord) MergeRawAttributes(values map[string]any) {
	maps.Copy(r.Attrs, values)
}

func (r *MapRecord) Casts() map[string]any { return r.CastMap }

func (r *MapRecord) Identity() string { return r.Name }

// IsDateAttribute implements castable.DateHandler.
func (r *MapRecord) IsDateAttribute(key string) bool { return r.DateAttrs[key] }

// FromDateTime formats time.Time values with the storage layout and
// passes everything else through.
func (r *MapRecord) FromDateTime(value any) any {
	if t, ok := value.(time.Time); ok {
		return t.Format(castable.TimeLayout)
	}
	return value
}

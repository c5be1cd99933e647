package casts

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/ahmetaksoy/castable"
)

func init() {
	castable.RegisterCastable("uuid", UUID{})
}

// UUID casts string columns to uuid.UUID values and back. It is also
// its own Castable descriptor, so declaring the "uuid" cast resolves
// straight to an instance.
type UUID struct{}

// CastUsing implements castable.Castable.
func (UUID) CastUsing([]string) any {
	return UUID{}
}

// Get parses the stored string into a uuid.UUID.
func (UUID) Get(_ castable.Record, _ string, raw any, _ map[string]any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, err
	}
	return uuid.Parse(s)
}

// Set renders value to its canonical string form. Strings are validated
// before storage.
func (UUID) Set(_ castable.Record, _ string, value any, _ map[string]any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case uuid.UUID:
		return v.String(), nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	default:
		return nil, fmt.Errorf("uuid cast: unsupported value type %T", value)
	}
}

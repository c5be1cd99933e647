package castable

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cybergodev/json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// TimeLayout is the storage layout for date and datetime casts.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the storage layout for date casts.
const DateLayout = "2006-01-02"

// PrimitiveCaster performs the built-in primitive conversions for the
// vocabulary types. It is an injected delegate: engines default to the
// shipped implementation but accept replacements through
// WithPrimitiveCaster. Conversion failures propagate verbatim.
type PrimitiveCaster interface {
	// Cast converts a raw stored value according to spec. spec.Type is
	// the classified vocabulary type with the encrypted: prefix already
	// stripped by the caller; "" passes value through unchanged.
	Cast(key string, spec CastSpec, value any) (any, error)
}

// primitiveCaster is the default PrimitiveCaster.
type primitiveCaster struct{}

// NewPrimitiveCaster returns the built-in primitive cast delegate.
func NewPrimitiveCaster() PrimitiveCaster {
	return primitiveCaster{}
}

func (primitiveCaster) Cast(key string, spec CastSpec, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch CastType(spec.Type) {
	case "":
		return value, nil
	case CastInt, CastInteger:
		return cast.ToInt64E(value)
	case CastFloat, CastDouble, CastReal:
		return cast.ToFloat64E(value)
	case CastDecimal:
		return toDecimalString(value, spec.Arg(0, "0"))
	case CastString:
		return cast.ToStringE(value)
	case CastBool, CastBoolean:
		return cast.ToBoolE(value)
	case CastArray, CastJSON, CastObject, CastCollection:
		return fromJSON(value)
	case CastDate:
		t, err := parseDateTime(value, "")
		if err != nil {
			return nil, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	case CastDatetime:
		return parseDateTime(value, "")
	case CastCustomDatetime:
		return parseDateTime(value, spec.Arg(0, TimeLayout))
	case CastTimestamp:
		t, err := parseDateTime(value, "")
		if err != nil {
			return nil, err
		}
		return t.Unix(), nil
	}

	return value, nil
}

// toDecimalString renders value as a fixed-scale decimal string.
func toDecimalString(value any, scale string) (string, error) {
	places, err := strconv.Atoi(scale)
	if err != nil {
		return "", fmt.Errorf("decimal cast: bad scale %q: %w", scale, err)
	}

	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	default:
		s, err := cast.ToStringE(value)
		if err != nil {
			return "", err
		}
		d, err = decimal.NewFromString(s)
		if err != nil {
			return "", err
		}
	}

	return d.StringFixed(int32(places)), nil
}

// fromJSON decodes a stored JSON document. Values that are already
// decoded (maps, slices) pass through untouched.
func fromJSON(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDateTime coerces value to a time.Time. layout, when non-empty,
// is tried first; otherwise the storage layouts and RFC 3339 apply.
// Numeric values are Unix seconds.
func parseDateTime(value any, layout string) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case int, int32, int64, uint, uint32, uint64, float64:
		return time.Unix(cast.ToInt64(v), 0).UTC(), nil
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return time.Time{}, err
	}

	layouts := []string{TimeLayout, time.RFC3339, DateLayout}
	if layout != "" {
		layouts = []string{layout}
	}

	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as datetime", s)
}

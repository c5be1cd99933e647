package casts

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/ahmetaksoy/castable"
)

func init() {
	castable.RegisterCastable("decimal_value", decimalDescriptor{})
}

// decimalDescriptor supplies Decimal casters for the "decimal_value"
// declaration; the first argument is the storage scale.
type decimalDescriptor struct{}

func (decimalDescriptor) CastUsing(args []string) any {
	scale := 2
	if len(args) > 0 {
		s, err := strconv.Atoi(args[0])
		if err == nil {
			scale = s
		}
	}
	return &Decimal{scale: int32(scale)}
}

// Decimal casts string columns to decimal.Decimal values, storing a
// fixed-scale string representation. Unlike the primitive decimal cast,
// reads produce decimal.Decimal values rather than strings.
type Decimal struct {
	scale int32
}

// NewDecimal returns a Decimal caster with the given storage scale.
func NewDecimal(scale int32) *Decimal {
	return &Decimal{scale: scale}
}

// Get parses the stored string into a decimal.Decimal.
func (d *Decimal) Get(_ castable.Record, _ string, raw any, _ map[string]any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, err
	}
	return decimal.NewFromString(s)
}

// Set renders value as a fixed-scale decimal string.
func (d *Decimal) Set(_ castable.Record, _ string, value any, _ map[string]any) (any, error) {
	if value == nil {
		return nil, nil
	}

	var dec decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		dec = v
	case float64:
		dec = decimal.NewFromFloat(v)
	default:
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		if dec, err = decimal.NewFromString(s); err != nil {
			return nil, err
		}
	}

	return dec.StringFixed(d.scale), nil
}

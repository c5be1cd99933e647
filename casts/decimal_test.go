package casts_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ahmetaksoy/castable"
	"github.com/ahmetaksoy/castable/casts"
	castabletesting "github.com/ahmetaksoy/castable/testing"
)

func TestDecimal_Set(t *testing.T) {
	d := casts.NewDecimal(2)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"decimal value", decimal.RequireFromString("19.999"), "20.00"},
		{"float", 3.14159, "3.14"},
		{"string", "7.5", "7.50"},
		{"int", 12, "12.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := d.Set(nil, "price", tt.value, nil)
			if err != nil {
				t.Fatalf("Set(%v) error: %v", tt.value, err)
			}
			if out != tt.want {
				t.Errorf("Set(%v) = %v, want %v", tt.value, out, tt.want)
			}
		})
	}

	if _, err := d.Set(nil, "price", "not a number", nil); err == nil {
		t.Error("Set() should reject unparseable strings")
	}
}

func TestDecimal_Get(t *testing.T) {
	d := casts.NewDecimal(2)

	got, err := d.Get(nil, "price", "19.99", nil)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	dec, ok := got.(decimal.Decimal)
	if !ok {
		t.Fatalf("Get() returned %T, want decimal.Decimal", got)
	}
	if !dec.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("Get() = %v, want 19.99", dec)
	}

	if got, _ := d.Get(nil, "price", nil, nil); got != nil {
		t.Errorf("Get(nil) = %v, want nil", got)
	}
}

func TestDecimal_ScaleArgument(t *testing.T) {
	rec := castabletesting.NewMapRecord("Order", map[string]any{
		"total": "decimal_value:4",
	})
	e := castable.New(rec)

	if err := e.Set("total", "1.5"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if rec.Attrs["total"] != "1.5000" {
		t.Errorf("stored %v, want 1.5000", rec.Attrs["total"])
	}

	got, err := e.GetAttribute("total")
	if err != nil {
		t.Fatalf("GetAttribute() error: %v", err)
	}
	if !got.(decimal.Decimal).Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("GetAttribute() = %v, want 1.5", got)
	}
}

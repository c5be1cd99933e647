package castable

import (
	"reflect"
	"testing"
)

func TestParseCast(t *testing.T) {
	tests := []struct {
		decl string
		want CastSpec
	}{
		{"int", CastSpec{Type: "int"}},
		{"decimal:2", CastSpec{Type: "decimal", Args: []string{"2"}}},
		{"datetime:2006-01-02", CastSpec{Type: "datetime", Args: []string{"2006-01-02"}}},
		{"my_caster:a,b,c", CastSpec{Type: "my_caster", Args: []string{"a", "b", "c"}}},
		{"encrypted:array", CastSpec{Type: "encrypted", Args: []string{"array"}}},
		{"x:", CastSpec{Type: "x", Args: []string{""}}},
		{"", CastSpec{Type: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			got := ParseCast(tt.decl)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCast(%q) = %+v, want %+v", tt.decl, got, tt.want)
			}
		})
	}
}

func TestCastSpec_Arg(t *testing.T) {
	spec := ParseCast("decimal:4")

	if got := spec.Arg(0, "0"); got != "4" {
		t.Errorf("Arg(0) = %q, want 4", got)
	}
	if got := spec.Arg(1, "fallback"); got != "fallback" {
		t.Errorf("Arg(1) = %q, want fallback", got)
	}
}

package registry

import (
	"testing"

	"github.com/unitexpr/unitexpr/internal/scalar"
	"github.com/unitexpr/unitexpr/internal/units"
)

func TestPiOverPi(t *testing.T) {
	r := New()
	h, _, ok := r.Lookup("PI", 0)
	if !ok {
		t.Fatal("PI/0 not registered")
	}
	v, err := h(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := v.Scalar.Div(v.Scalar, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Si != 1 {
		t.Errorf("got %v, want 1", got.Si)
	}
}

func TestSinRejectsDimensioned(t *testing.T) {
	r := New()
	h, _, ok := r.Lookup("sin", 1)
	if !ok {
		t.Fatal("sin/1 not registered")
	}
	if _, err := h([]scalar.Scalar{scalar.NewRelative(1, units.QuantityLength)}, 0); err == nil {
		t.Fatal("expected DimensionMismatch")
	}
	if _, err := h([]scalar.Scalar{scalar.NewRelative(1, units.Dimensionless)}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnknownArityReportsRegisteredArities(t *testing.T) {
	r := New()
	if _, _, ok := r.Lookup("sin", 2); ok {
		t.Fatal("sin/2 should not be registered")
	}
	_, arities, _ := r.Lookup("sin", 2)
	if len(arities) != 1 || arities[0] != 1 {
		t.Errorf("got %v, want [1]", arities)
	}
}

func TestCurrentTimeIsAbsolute(t *testing.T) {
	r := New()
	h, _, _ := r.Lookup("CURRENTTIME", 0)
	v, err := h(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Scalar.Kind != scalar.Absolute {
		t.Errorf("CURRENTTIME should be absolute, got %v", v.Scalar.Kind)
	}
}

func TestPow(t *testing.T) {
	r := New()
	h, _, _ := r.Lookup("pow", 2)
	v, err := h([]scalar.Scalar{
		scalar.NewRelative(2, units.Dimensionless),
		scalar.NewRelative(10, units.Dimensionless),
	}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Scalar.Si != 1024 {
		t.Errorf("got %v, want 1024", v.Scalar.Si)
	}
}

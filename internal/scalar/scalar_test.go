package scalar

import (
	"testing"

	"github.com/unitexpr/unitexpr/internal/units"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		l, r    Scalar
		want    float64
		wantKind Kind
		wantErr  bool
	}{
		{"relative + relative", NewRelative(2, units.QuantityLength), NewRelative(3, units.QuantityLength), 5, Relative, false},
		{"absolute + relative", NewAbsolute(100, units.QuantityLength), NewRelative(3, units.QuantityLength), 103, Absolute, false},
		{"relative + absolute fails", NewRelative(3, units.QuantityLength), NewAbsolute(100, units.QuantityLength), 0, Relative, true},
		{"absolute + absolute fails", NewAbsolute(3, units.QuantityLength), NewAbsolute(100, units.QuantityLength), 0, Relative, true},
		{"mismatched quantity fails", NewRelative(3, units.QuantityLength), NewRelative(1, units.QuantityTime), 0, Relative, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.l.Add(tt.r, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Si != tt.want || got.Kind != tt.wantKind {
				t.Errorf("got {%v %v}, want {%v %v}", got.Si, got.Kind, tt.want, tt.wantKind)
			}
		})
	}
}

func TestSubPositionMinusPosition(t *testing.T) {
	position := NewAbsolute(100, units.QuantityLength)

	rel, err := position.Sub(position, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel.Kind != Relative || rel.Si != 0 {
		t.Errorf("got %+v, want relative zero", rel)
	}

	if _, err := position.Add(position, 0); err == nil {
		t.Errorf("position + position should fail with AbsoluteOperation")
	}
}

func TestMulAddsExponents(t *testing.T) {
	l := NewRelative(3, units.QuantityLength)
	r := NewRelative(2, units.QuantityTime)

	got, err := l.Mul(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := units.QuantityLength.Mul(units.QuantityTime)
	if !got.Quantity.Equal(want) || got.Si != 6 {
		t.Errorf("got {%v %v}, want {6 %v}", got.Si, got.Quantity, want)
	}
}

func TestDivByZero(t *testing.T) {
	l := NewRelative(1, units.Dimensionless)
	r := NewRelative(0, units.Dimensionless)

	if _, err := l.Div(r, 0); err == nil {
		t.Fatal("expected DivisionByZero error")
	}
}

func TestCmpSignedZero(t *testing.T) {
	l := NewRelative(0, units.Dimensionless)
	r := NewRelative(0, units.Dimensionless)
	r.Si = -r.Si

	cmp, err := l.Cmp(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp != 0 {
		t.Errorf("expected +0.0 == -0.0 under Cmp, got %d", cmp)
	}

	eq, err := l.Equal(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Errorf("expected +0.0 == -0.0 under Equal")
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	l := NewRelative(1, units.QuantityLength)
	r := NewRelative(1, units.QuantityTime)

	if _, err := l.Equal(r, 0); err == nil {
		t.Fatal("expected DimensionMismatch error comparing different quantities")
	}
}

func TestPowRequiresDimensionless(t *testing.T) {
	l := NewRelative(2, units.QuantityLength)
	r := NewRelative(2, units.Dimensionless)

	if _, err := l.Pow(r, 0); err == nil {
		t.Fatal("expected DimensionMismatch error")
	}

	dimless := NewRelative(2, units.Dimensionless)
	got, err := dimless.Pow(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Si != 4 {
		t.Errorf("got %v, want 4", got.Si)
	}
}

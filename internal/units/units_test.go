package units

import "testing"

func TestParseNewton(t *testing.T) {
	var r Registry
	scale, q, err := r.Parse("kg.m/s2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scale.Factor != 1 {
		t.Errorf("got factor %v, want 1", scale.Factor)
	}
	want := Quantity{Mass: 1, Length: 1, Time: -2}
	if !q.Equal(want) {
		t.Errorf("got %v, want %v", q, want)
	}
}

func TestParseMilePerHour(t *testing.T) {
	var r Registry
	scale, q, err := r.Parse("mi/h", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFactor := 1609.344 / 3600
	if diff := scale.Factor - wantFactor; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got factor %v, want %v", scale.Factor, wantFactor)
	}
	if !q.Equal(QuantityLength.Div(QuantityTime)) {
		t.Errorf("got quantity %v, want length/time", q)
	}
}

func TestParseMsMinusOneIsMetrePerSecond(t *testing.T) {
	// spec.md §4.1's own worked example: "ms-1" means "m·s⁻¹", two
	// concatenated factors, not "millisecond⁻¹".
	var r Registry
	scale, q, err := r.Parse("ms-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := QuantityLength.Div(QuantityTime)
	if !q.Equal(want) {
		t.Errorf("got quantity %v, want %v", q, want)
	}
	if diff := scale.Factor - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got factor %v, want 1", scale.Factor)
	}
}

func TestParseBareReciprocal(t *testing.T) {
	var r Registry
	scale, q, err := r.Parse("/s", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Equal(Quantity{Time: -1}) {
		t.Errorf("got quantity %v, want time^-1", q)
	}
	if scale.Factor != 1 {
		t.Errorf("got factor %v, want 1", scale.Factor)
	}
}

func TestParseKgSquaredKeepsWholeSymbolWithExponent(t *testing.T) {
	// "kg2" must not be mistaken for the "ms-1"-style implicit
	// concatenation and split into "k" + "g2" (Lookup("k") has no bare
	// entry): the whole letter run "kg" carries the trailing exponent.
	var r Registry
	scale, q, err := r.Parse("kg2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scale.Factor != 1 {
		t.Errorf("got factor %v, want 1", scale.Factor)
	}
	if !q.Equal(Quantity{Mass: 2}) {
		t.Errorf("got %v, want mass^2", q)
	}
}

func TestParseKmSquared(t *testing.T) {
	var r Registry
	scale, q, err := r.Parse("km2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1000.0 * 1000.0
	if diff := scale.Factor - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("got factor %v, want %v", scale.Factor, want)
	}
	if !q.Equal(Quantity{Length: 2}) {
		t.Errorf("got %v, want length^2", q)
	}
}

func TestParseCelsiusHasOffset(t *testing.T) {
	var r Registry
	scale, q, err := r.Parse("°C", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scale.Offset != 273.15 {
		t.Errorf("got offset %v, want 273.15", scale.Offset)
	}
	if !q.Equal(QuantityTemperature) {
		t.Errorf("got %v, want temperature", q)
	}
}

func TestParseUnknownUnit(t *testing.T) {
	var r Registry
	if _, _, err := r.Parse("frobnicate", 0); err == nil {
		t.Fatal("expected UnknownUnit error")
	}
}

func TestParseDoubleSlashRejected(t *testing.T) {
	var r Registry
	if _, _, err := r.Parse("m/s/s", 0); err == nil {
		t.Fatal("expected error for multiple '/'")
	}
}

func TestFallbackParser(t *testing.T) {
	r := Registry{Fallback: stubParser{sym: "widgets", scale: Scale{Factor: 1}, q: Dimensionless}}
	scale, q, err := r.Parse("widgets", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scale.Factor != 1 || !q.IsDimensionless() {
		t.Errorf("got {%v %v}, want fallback-resolved dimensionless", scale, q)
	}
}

type stubParser struct {
	sym   string
	scale Scale
	q     Quantity
}

func (s stubParser) ParseSymbol(symbol string) (Scale, Quantity, bool) {
	if symbol == s.sym {
		return s.scale, s.q, true
	}
	return Scale{}, Quantity{}, false
}

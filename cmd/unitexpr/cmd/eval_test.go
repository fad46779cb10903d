package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/unitexpr/unitexpr/pkg/unitexpr"
)

func TestFormatValueSnapshots(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"scalar_with_unit", "3[kg.m/s2]"},
		{"dimensionless", "PI()/PI()"},
		{"boolean", "(2>3) ? TRUE() : FALSE()"},
		{"ternary_short_circuit", "(2>3) ? 5 : 1+100"},
	}

	for _, c := range cases {
		v, err := unitexpr.Evaluate(c.expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		out, err := formatValue(v, "text")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		snaps.MatchSnapshot(t, c.name, out)
	}
}

func TestFormatEvalErrorDimensionMismatch(t *testing.T) {
	expr := "12[m/s] > 7[m]"
	_, err := unitexpr.Evaluate(expr)
	if err == nil {
		t.Fatal("expected an error")
	}
	snaps.MatchSnapshot(t, "dimension_mismatch_error", formatEvalError(expr, err))
}

package cmd

import (
	"encoding/json"
	"fmt"

	everrors "github.com/unitexpr/unitexpr/internal/errors"
	"github.com/unitexpr/unitexpr/pkg/unitexpr"
)

// resultEnvelope is the JSON shape printed by --format json, keeping the
// boolean/scalar variants in one flat, easy-to-parse object rather than a
// tagged union.
type resultEnvelope struct {
	IsBoolean bool    `json:"isBoolean"`
	Boolean   bool    `json:"boolean,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Quantity  string  `json:"quantity,omitempty"`
	Kind      string  `json:"kind,omitempty"`
}

func toEnvelope(v unitexpr.Value) resultEnvelope {
	if v.IsBoolean {
		return resultEnvelope{IsBoolean: true, Boolean: v.Boolean}
	}
	return resultEnvelope{
		Value:    v.Scalar.Si,
		Quantity: v.Scalar.Quantity.String(),
		Kind:     v.Scalar.Kind.String(),
	}
}

func formatValue(v unitexpr.Value, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.Marshal(toEnvelope(v))
		if err != nil {
			return "", fmt.Errorf("marshaling result: %w", err)
		}
		return string(data), nil
	case "", "text":
		if v.IsBoolean {
			return fmt.Sprintf("%t", v.Boolean), nil
		}
		if v.Scalar.Quantity.IsDimensionless() {
			return fmt.Sprintf("%g", v.Scalar.Si), nil
		}
		return fmt.Sprintf("%g %s (%s)", v.Scalar.Si, v.Scalar.Quantity, v.Scalar.Kind), nil
	default:
		return "", fmt.Errorf("unknown --format %q (want \"text\" or \"json\")", format)
	}
}

// formatEvalError renders err as a caret-annotated diagnostic when it
// carries a source position, falling back to its plain message otherwise.
func formatEvalError(expr string, err error) string {
	if ee, ok := err.(*everrors.EvalError); ok {
		return ee.Format(expr)
	}
	return err.Error()
}

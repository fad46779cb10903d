package evalengine

import (
	"github.com/unitexpr/unitexpr/internal/registry"
	"github.com/unitexpr/unitexpr/internal/scalar"
)

// Value is the tagged Scalar|Boolean result spec.md §3 describes. It is a
// thin alias of registry.Value so the registry's handlers and the
// evaluator's stack agree on one representation without converting back
// and forth at every function call.
type Value = registry.Value

// ScalarValue wraps a Scalar as a Value.
func ScalarValue(s scalar.Scalar) Value { return registry.ScalarValue(s) }

// BooleanValue wraps a bool as a Value.
func BooleanValue(b bool) Value { return registry.BooleanValue(b) }

// Resolver looks up a variable by name. A returned value other than a
// scalar.Scalar or a plain bool is a TypeError, per spec.md §6.
type Resolver interface {
	Lookup(name string) (any, bool)
}

// UnitParser is the caller-supplied fallback unit resolver from spec.md
// §6: given the raw numeric literal and the full bracket body, it builds
// the complete Scalar (including any absolute-kind offset) itself.
type UnitParser interface {
	Parse(value float64, unit string) (scalar.Scalar, bool)
}

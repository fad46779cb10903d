// Package registry implements the fixed function & constant table described
// in spec.md §4.5: zero-argument physical constants and system functions,
// one-argument dimensionless math functions, and the single two-argument
// pow(base, exponent).
//
// The table is built once by New and is immutable thereafter, matching
// spec.md §5 ("the registry... must be invoked synchronously and must be
// side-effect free; CURRENTTIME is the sole documented observable effect").
package registry

import (
	"math"
	"time"

	everrors "github.com/unitexpr/unitexpr/internal/errors"
	"github.com/unitexpr/unitexpr/internal/scalar"
	"github.com/unitexpr/unitexpr/internal/units"
)

// Value is the tagged result a function/constant handler returns: either a
// Scalar or a Boolean, matching spec.md §3's Value variant. The evaluator
// (internal/evalengine) reuses this type through a type alias, so this
// package has no dependency on evalengine.
type Value struct {
	IsBoolean bool
	Scalar    scalar.Scalar
	Boolean   bool
}

// ScalarValue wraps a Scalar as a Value.
func ScalarValue(s scalar.Scalar) Value { return Value{Scalar: s} }

// BooleanValue wraps a bool as a Value.
func BooleanValue(b bool) Value { return Value{IsBoolean: true, Boolean: b} }

// Handler evaluates a function or constant call. args has already been
// arity-checked against the registered entry. pos is the call's position,
// used only for error annotation.
type Handler func(args []scalar.Scalar, pos int) (Value, error)

// key identifies an entry by name and arity, matching spec.md's "looked up
// by (name, arity)" rule: two entries of the same name at different arity
// never collide.
type key struct {
	name  string
	arity int
}

// Registry is the fixed, immutable function & constant table.
type Registry struct {
	entries map[key]Handler
	names   map[string][]int // name -> registered arities, for WrongArity diagnostics
}

// New builds the complete registry described in spec.md §4.5.
func New() *Registry {
	r := &Registry{
		entries: make(map[key]Handler),
		names:   make(map[string][]int),
	}
	r.registerConstants()
	r.registerSystemFunctions()
	r.registerUnaryMath()
	r.register("pow", 2, builtinPow)
	return r
}

func (r *Registry) register(name string, arity int, h Handler) {
	r.entries[key{name, arity}] = h
	r.names[name] = append(r.names[name], arity)
}

// Lookup resolves (name, arity). When the name exists but not at this
// arity, the second return value reports the registered arities so the
// caller can raise WrongArity instead of a blanket UnknownFunction.
func (r *Registry) Lookup(name string, arity int) (Handler, []int, bool) {
	if h, ok := r.entries[key{name, arity}]; ok {
		return h, nil, true
	}
	return nil, r.names[name], false
}

// Names returns every registered function/constant name with its
// registered arities, for the CLI's `functions` subcommand.
func (r *Registry) Names() map[string][]int {
	out := make(map[string][]int, len(r.names))
	for name, arities := range r.names {
		cp := make([]int, len(arities))
		copy(cp, arities)
		out[name] = cp
	}
	return out
}

func constant(si float64, q units.Quantity) Handler {
	return func(args []scalar.Scalar, pos int) (Value, error) {
		return ScalarValue(scalar.NewRelative(si, q)), nil
	}
}

func (r *Registry) registerConstants() {
	r.register("PI", 0, constant(math.Pi, units.Dimensionless))
	r.register("E", 0, constant(math.E, units.Dimensionless))
	r.register("PHI", 0, constant(1.618033988749895, units.Dimensionless))
	r.register("TAU", 0, constant(2*math.Pi, units.Dimensionless))
	r.register("AVOGADRO", 0, constant(6.02214076e23, units.Quantity{Amount: -1}))
	r.register("BOLTZMANN", 0, constant(1.380649e-23,
		units.Quantity{Mass: 1, Length: 2, Time: -2, Temperature: -1}))
	r.register("CESIUM133_FREQUENCY", 0, constant(9192631770, units.Quantity{Time: -1}))
	r.register("ELECTRONCHARGE", 0, constant(-1.602176634e-19, units.Quantity{Current: 1, Time: 1}))
	r.register("ELECTRONMASS", 0, constant(9.1093837015e-31, units.Quantity{Mass: 1}))
	r.register("G", 0, constant(6.67430e-11,
		units.Quantity{Length: 3, Mass: -1, Time: -2}))
	r.register("LIGHTSPEED", 0, constant(299792458, units.QuantityLength.Div(units.QuantityTime)))
	r.register("LUMINOUS_EFFICACY_540THZ", 0, constant(683,
		units.Quantity{Luminosity: 1, Time: 3, Mass: -1, Length: -2}))
	r.register("NEUTRONMASS", 0, constant(1.67492749804e-27, units.Quantity{Mass: 1}))
	r.register("PLANCK", 0, constant(6.62607015e-34,
		units.Quantity{Mass: 1, Length: 2, Time: -1}))
	r.register("PLANKREDUCED", 0, constant(1.054571817e-34,
		units.Quantity{Mass: 1, Length: 2, Time: -1}))
	r.register("PROTONCHARGE", 0, constant(1.602176634e-19, units.Quantity{Current: 1, Time: 1}))
	r.register("PROTONMASS", 0, constant(1.67262192369e-27, units.Quantity{Mass: 1}))
	r.register("VACUUMIMPEDANCE", 0, constant(376.730313668,
		units.Quantity{Mass: 1, Length: 2, Time: -3, Current: -2}))
	r.register("VACUUMPERMEABILITY", 0, constant(1.25663706212e-6,
		units.Quantity{Mass: 1, Length: 1, Time: -2, Current: -2}))
	r.register("VACUUMPERMITTIVITY", 0, constant(8.8541878128e-12,
		units.Quantity{Mass: -1, Length: -3, Time: 4, Current: 2}))
}

func (r *Registry) registerSystemFunctions() {
	r.register("CURRENTTIME", 0, func(args []scalar.Scalar, pos int) (Value, error) {
		return ScalarValue(scalar.NewAbsolute(float64(time.Now().UnixNano())/1e9, units.QuantityTime)), nil
	})
	r.register("TRUE", 0, func(args []scalar.Scalar, pos int) (Value, error) {
		return BooleanValue(true), nil
	})
	r.register("FALSE", 0, func(args []scalar.Scalar, pos int) (Value, error) {
		return BooleanValue(false), nil
	})
}

// unaryMath wraps a func(float64) float64 (such as math.Sin) as a Handler that rejects
// dimensioned input, per spec.md §4.5.
func unaryMath(name string, f func(float64) float64) Handler {
	return func(args []scalar.Scalar, pos int) (Value, error) {
		arg := args[0]
		if !arg.Dimensionless() {
			return Value{}, everrors.New(everrors.KindDimensionMismatch, pos,
				"%s() requires a dimensionless argument, got %s", name, arg.Quantity)
		}
		return ScalarValue(scalar.NewRelative(f(arg.Si), units.Dimensionless)), nil
	}
}

func (r *Registry) registerUnaryMath() {
	fns := []struct {
		name string
		f    func(float64) float64
	}{
		{"sin", math.Sin}, {"cos", math.Cos}, {"tan", math.Tan},
		{"asin", math.Asin}, {"acos", math.Acos}, {"atan", math.Atan},
		{"sinh", math.Sinh}, {"cosh", math.Cosh}, {"tanh", math.Tanh},
		{"exp", math.Exp}, {"expm1", math.Expm1},
		{"log", math.Log}, {"log10", math.Log10}, {"log1p", math.Log1p},
		{"sqrt", math.Sqrt}, {"cbrt", math.Cbrt},
		{"signum", func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			default:
				return 0
			}
		}},
	}
	for _, fn := range fns {
		r.register(fn.name, 1, unaryMath(fn.name, fn.f))
	}
}

func builtinPow(args []scalar.Scalar, pos int) (Value, error) {
	base, exponent := args[0], args[1]
	if !base.Dimensionless() || !exponent.Dimensionless() {
		return Value{}, everrors.New(everrors.KindDimensionMismatch, pos, "pow() requires dimensionless arguments")
	}
	return ScalarValue(scalar.NewRelative(math.Pow(base.Si, exponent.Si), units.Dimensionless)), nil
}

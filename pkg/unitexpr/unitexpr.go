// Package unitexpr is the public facade over the unit-aware expression
// evaluator. Parsing and evaluation logic lives in internal/evalengine;
// this package re-exports only the names a library consumer needs,
// mirroring the teacher's internal-heavy / thin-pkg-facade split.
package unitexpr

import (
	"github.com/unitexpr/unitexpr/internal/evalengine"
	"github.com/unitexpr/unitexpr/internal/registry"
	"github.com/unitexpr/unitexpr/internal/scalar"
	"github.com/unitexpr/unitexpr/internal/units"
)

// Value is the tagged Scalar|Boolean result of evaluating an expression.
type Value = evalengine.Value

// Scalar is a dimensioned value: an SI-coherent magnitude, a dimensional
// Quantity signature, and a Relative/Absolute Kind.
type Scalar = scalar.Scalar

// Quantity is a 7-dimensional SI exponent signature.
type Quantity = units.Quantity

// Boolean constructs a boolean Value.
func Boolean(b bool) Value { return evalengine.BooleanValue(b) }

// ScalarValue constructs a scalar Value.
func ScalarValue(s Scalar) Value { return evalengine.ScalarValue(s) }

// Resolver looks up a free variable referenced by name in an expression.
// A returned value must be a Scalar or a plain bool; anything else is a
// TypeError at evaluation time.
type Resolver interface {
	Lookup(name string) (any, bool)
}

// UnitParser is a caller-supplied fallback invoked when the bracketed unit
// accompanying a numeric literal isn't recognized by the built-in SI
// table. It receives the literal's numeric value and the full unit body
// and must build the complete resulting Scalar itself.
type UnitParser interface {
	Parse(value float64, unit string) (Scalar, bool)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithResolver installs the Resolver consulted for free variable names.
func WithResolver(r Resolver) Option {
	return func(e *Evaluator) { e.resolver = r }
}

// WithUnitParser installs the fallback UnitParser for unrecognized unit
// symbols inside a numeric literal's bracket.
func WithUnitParser(p UnitParser) Option {
	return func(e *Evaluator) { e.userUnits = p }
}

// WithRegistry overrides the function & constant registry, primarily for
// tests that need a registry shaped differently from the default.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Evaluator) { e.registry = r }
}

var defaultRegistry = registry.New()

// Evaluator evaluates expressions with a fixed configuration. It holds no
// per-expression state itself; each call to Evaluate builds a fresh
// internal evaluation frame, so an Evaluator is safe for concurrent reuse
// across goroutines (the registry it wraps is immutable, per spec.md §5).
type Evaluator struct {
	resolver  Resolver
	userUnits UnitParser
	registry  *registry.Registry
}

// New builds an Evaluator from the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{registry: defaultRegistry}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate parses and evaluates expr using e's configured Resolver,
// UnitParser, and registry.
func (e *Evaluator) Evaluate(expr string) (Value, error) {
	return evalengine.Evaluate(expr, adaptResolver(e.resolver), adaptUnitParser(e.userUnits), e.registry)
}

// Evaluate parses and evaluates expr with the given options, for one-shot
// callers that don't need to reuse an Evaluator.
func Evaluate(expr string, opts ...Option) (Value, error) {
	return New(opts...).Evaluate(expr)
}

// adaptResolver/adaptUnitParser bridge the public interfaces to the
// internal ones. The method sets are identical; this indirection exists
// only so pkg/unitexpr's Resolver/UnitParser stay the stable public names
// while internal/evalengine's stay free to evolve independently.

type resolverAdapter struct{ r Resolver }

func (a resolverAdapter) Lookup(name string) (any, bool) { return a.r.Lookup(name) }

func adaptResolver(r Resolver) evalengine.Resolver {
	if r == nil {
		return nil
	}
	return resolverAdapter{r}
}

type unitParserAdapter struct{ p UnitParser }

func (a unitParserAdapter) Parse(value float64, unit string) (scalar.Scalar, bool) {
	return a.p.Parse(value, unit)
}

func adaptUnitParser(p UnitParser) evalengine.UnitParser {
	if p == nil {
		return nil
	}
	return unitParserAdapter{p}
}

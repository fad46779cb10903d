package evalengine

import (
	"strconv"
	"strings"

	everrors "github.com/unitexpr/unitexpr/internal/errors"
	"github.com/unitexpr/unitexpr/internal/scalar"
	"github.com/unitexpr/unitexpr/internal/units"
)

// parseNumber implements the `number` production: an unsigned decimal
// literal (digits, optional '.', optional exponent) optionally followed,
// after whitespace, by a bracketed unit body. A number with no unit
// bracket is dimensionless and Relative.
func (e *Evaluator) parseNumber() error {
	start := e.cur.pos
	e.scanDigits()
	if e.cur.peek() == '.' && isDigit(e.cur.peekAt(1)) {
		e.cur.advance()
		e.scanDigits()
	}
	if e.cur.peek() == 'e' || e.cur.peek() == 'E' {
		save := e.cur.pos
		e.cur.advance()
		if e.cur.peek() == '+' || e.cur.peek() == '-' {
			e.cur.advance()
		}
		if !isDigit(e.cur.peek()) {
			e.cur.pos = save // not actually an exponent; leave it for the caller
		} else {
			e.scanDigits()
		}
	}

	lit := e.cur.input[start:e.cur.pos]
	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return everrors.New(everrors.KindBadNumber, start, "malformed number %q", lit)
	}

	// A second decimal point or exponent marker directly glued onto an
	// already-complete literal ("5.5.5", "5e5e5") is a malformed number,
	// not a separate token: report it here rather than letting the scan
	// stop short and surface as TrailingGarbage.
	if e.cur.peek() == '.' && isDigit(e.cur.peekAt(1)) {
		extraStart := e.cur.pos
		e.cur.advance()
		e.scanDigits()
		return everrors.New(everrors.KindBadNumber, start, "malformed number %q",
			lit+e.cur.input[extraStart:e.cur.pos])
	}
	if ch := e.cur.peek(); ch == 'e' || ch == 'E' {
		n := 1
		if s := e.cur.peekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDigit(e.cur.peekAt(n)) {
			extraStart := e.cur.pos
			e.cur.advance()
			if s := e.cur.peek(); s == '+' || s == '-' {
				e.cur.advance()
			}
			e.scanDigits()
			return everrors.New(everrors.KindBadNumber, start, "malformed number %q",
				lit+e.cur.input[extraStart:e.cur.pos])
		}
	}

	unitStart := e.cur.pos
	e.cur.skipSpace()
	if e.cur.peek() != '[' {
		e.cur.pos = unitStart
		e.push(ScalarValue(scalar.NewRelative(value, units.Dimensionless)))
		return nil
	}

	bracketPos := e.cur.pos
	e.cur.advance()
	bodyStart := e.cur.pos
	for !e.cur.eof() && e.cur.peek() != ']' {
		e.cur.advance()
	}
	if e.cur.eof() {
		return everrors.New(everrors.KindMissingCloseBracket, bracketPos, "missing closing ']'")
	}
	body := e.cur.input[bodyStart:e.cur.pos]
	e.cur.advance() // consume ']'

	reg := units.Registry{}
	scale, q, parseErr := reg.Parse(body, bodyStart)
	if parseErr != nil {
		if everrors.Is(parseErr, everrors.KindUnknownUnit) && e.userUnits != nil {
			if sc, ok := e.userUnits.Parse(value, strings.TrimSpace(body)); ok {
				e.push(ScalarValue(sc))
				return nil
			}
		}
		return parseErr
	}

	si := scale.Apply(value)
	kind := scalar.Relative
	if scale.Offset != 0 {
		kind = scalar.Absolute
	}
	e.push(Value{Scalar: scalar.Scalar{Si: si, Quantity: q, Kind: kind}})
	return nil
}

func (e *Evaluator) scanDigits() {
	for isDigit(e.cur.peek()) {
		e.cur.advance()
	}
}

// parseIdentifierOrCall implements the `identifier` and `call` productions:
// a bare name resolves through the Resolver; a name immediately followed
// by '(' is a function/constant call through the registry, with a
// whitespace-separated argument list.
func (e *Evaluator) parseIdentifierOrCall() error {
	start := e.cur.pos
	for isIdentChar(e.cur.peek()) {
		e.cur.advance()
	}
	name := e.cur.input[start:e.cur.pos]

	if e.cur.peek() == '(' {
		return e.parseCall(name, start)
	}

	return e.resolveName(name, start)
}

func (e *Evaluator) resolveName(name string, pos int) error {
	if e.resolver == nil {
		return everrors.New(everrors.KindUnresolvedName, pos, "unresolved name %q", name)
	}
	v, ok := e.resolver.Lookup(name)
	if !ok {
		return everrors.New(everrors.KindUnresolvedName, pos, "unresolved name %q", name)
	}
	switch val := v.(type) {
	case scalar.Scalar:
		e.push(ScalarValue(val))
	case bool:
		e.push(BooleanValue(val))
	default:
		return everrors.New(everrors.KindTypeError, pos, "variable %q resolved to an unsupported type %T", name, v)
	}
	return nil
}

// parseCall parses and evaluates a `name(arg arg ...)` call. Arguments are
// full conditional expressions separated by whitespace; the registry is
// consulted only after every argument has been evaluated, since arity is
// unknown in advance.
func (e *Evaluator) parseCall(name string, namePos int) error {
	e.cur.advance() // consume '('

	var args []scalar.Scalar
	e.cur.skipSpace()
	for e.cur.peek() != ')' {
		if e.cur.eof() {
			return everrors.New(everrors.KindMissingCloseParen, e.cur.pos, "missing closing ')' in call to %q", name)
		}
		if err := e.parseCond(); err != nil {
			return err
		}
		v, err := e.pop()
		if err != nil {
			return err
		}
		if v.IsBoolean {
			return everrors.New(everrors.KindTypeError, e.cur.pos,
				"argument %d to %q must be a scalar", len(args)+1, name)
		}
		args = append(args, v.Scalar)
		e.cur.skipSpace()
	}
	e.cur.advance() // consume ')'

	h, arities, ok := e.reg.Lookup(name, len(args))
	if !ok {
		if len(arities) == 0 {
			return everrors.New(everrors.KindUnknownFunction, namePos, "unknown function or constant %q", name)
		}
		return everrors.New(everrors.KindWrongArity, namePos,
			"%q takes %v argument(s), got %d", name, arities, len(args))
	}

	v, err := h(args, namePos)
	if err != nil {
		return err
	}
	e.push(v)
	return nil
}

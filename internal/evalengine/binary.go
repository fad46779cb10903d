package evalengine

import (
	everrors "github.com/unitexpr/unitexpr/internal/errors"
)

// parseOr implements precedence level 2 ('||'). Left-associative: every
// binary level except '^' recurses into the next-higher level on its
// right-hand side, so the loop form here enforces left-to-right grouping.
func (e *Evaluator) parseOr() error {
	if err := e.parseAnd(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		if !(e.cur.peek() == '|' && e.cur.peekAt(1) == '|') {
			return nil
		}
		opPos := e.cur.pos
		e.cur.pos += 2

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parseAnd(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}
		if !left.IsBoolean || !right.IsBoolean {
			return everrors.New(everrors.KindTypeError, opPos, "'||' requires boolean operands")
		}
		e.push(BooleanValue(left.Boolean || right.Boolean))
	}
}

// parseAnd implements precedence level 3 ('&&').
func (e *Evaluator) parseAnd() error {
	if err := e.parseEq(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		if !(e.cur.peek() == '&' && e.cur.peekAt(1) == '&') {
			return nil
		}
		opPos := e.cur.pos
		e.cur.pos += 2

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parseEq(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}
		if !left.IsBoolean || !right.IsBoolean {
			return everrors.New(everrors.KindTypeError, opPos, "'&&' requires boolean operands")
		}
		e.push(BooleanValue(left.Boolean && right.Boolean))
	}
}

// parseEq implements precedence level 4 ('==', '!='). A lone '=' is a
// syntax error (BadOperator); a lone '!' is left alone here (after an
// operand it is reported as BadOperator by ambiguousOperatorError).
func (e *Evaluator) parseEq() error {
	if err := e.parseRel(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		opPos := e.cur.pos

		var isEq bool
		switch {
		case e.cur.peek() == '=' && e.cur.peekAt(1) == '=':
			e.cur.pos += 2
			isEq = true
		case e.cur.peek() == '!' && e.cur.peekAt(1) == '=':
			e.cur.pos += 2
			isEq = false
		case e.cur.peek() == '=':
			return everrors.New(everrors.KindBadOperator, opPos, "'=' is not a valid operator; did you mean '=='?")
		default:
			return nil
		}

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parseRel(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}

		result, err := combineEquality(left, right, isEq, opPos)
		if err != nil {
			return err
		}
		e.push(result)
	}
}

// combineEquality implements spec.md §4.2's '=='/'!=' truth table: mixed
// runtime kinds compare non-equal without error; same-kind Scalars require
// equal quantity.
func combineEquality(l, r Value, isEq bool, pos int) (Value, error) {
	if l.IsBoolean != r.IsBoolean {
		return BooleanValue(!isEq), nil
	}
	if l.IsBoolean {
		eq := l.Boolean == r.Boolean
		if !isEq {
			eq = !eq
		}
		return BooleanValue(eq), nil
	}
	eq, err := l.Scalar.Equal(r.Scalar, pos)
	if err != nil {
		return Value{}, err
	}
	if !isEq {
		eq = !eq
	}
	return BooleanValue(eq), nil
}

// parseRel implements precedence level 5 ('<', '<=', '>', '>=').
func (e *Evaluator) parseRel() error {
	if err := e.parseAdd(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		opPos := e.cur.pos

		op, ok := e.matchRelOp()
		if !ok {
			return nil
		}

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parseAdd(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}
		if left.IsBoolean || right.IsBoolean {
			return everrors.New(everrors.KindTypeError, opPos, "relational operators require scalar operands")
		}

		cmp, err := left.Scalar.Cmp(right.Scalar, opPos)
		if err != nil {
			return err
		}
		var result bool
		switch op {
		case "<":
			result = cmp < 0
		case "<=":
			result = cmp <= 0
		case ">":
			result = cmp > 0
		case ">=":
			result = cmp >= 0
		}
		e.push(BooleanValue(result))
	}
}

func (e *Evaluator) matchRelOp() (string, bool) {
	switch e.cur.peek() {
	case '<':
		if e.cur.peekAt(1) == '=' {
			e.cur.pos += 2
			return "<=", true
		}
		e.cur.pos++
		return "<", true
	case '>':
		if e.cur.peekAt(1) == '=' {
			e.cur.pos += 2
			return ">=", true
		}
		e.cur.pos++
		return ">", true
	default:
		return "", false
	}
}

// parseAdd implements precedence level 6 ('+', binary '-').
func (e *Evaluator) parseAdd() error {
	if err := e.parseMul(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		opPos := e.cur.pos
		ch := e.cur.peek()
		if ch != '+' && ch != '-' {
			return nil
		}
		e.cur.advance()

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parseMul(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}
		if left.IsBoolean || right.IsBoolean {
			return everrors.New(everrors.KindTypeError, opPos, "'+'/'-' require scalar operands")
		}

		var result, cErr = left.Scalar, error(nil)
		if ch == '+' {
			result, cErr = left.Scalar.Add(right.Scalar, opPos)
		} else {
			result, cErr = left.Scalar.Sub(right.Scalar, opPos)
		}
		if cErr != nil {
			return cErr
		}
		e.push(ScalarValue(result))
	}
}

// parseMul implements precedence level 7 ('*', '/').
func (e *Evaluator) parseMul() error {
	if err := e.parsePow(); err != nil {
		return err
	}
	for {
		e.cur.skipSpace()
		opPos := e.cur.pos
		ch := e.cur.peek()
		if ch != '*' && ch != '/' {
			return nil
		}
		e.cur.advance()

		left, err := e.pop()
		if err != nil {
			return err
		}
		if err := e.parsePow(); err != nil {
			return err
		}
		right, err := e.pop()
		if err != nil {
			return err
		}
		if left.IsBoolean || right.IsBoolean {
			return everrors.New(everrors.KindTypeError, opPos, "'*'/'/' require scalar operands")
		}

		var result, cErr = left.Scalar, error(nil)
		if ch == '*' {
			result, cErr = left.Scalar.Mul(right.Scalar, opPos)
		} else {
			result, cErr = left.Scalar.Div(right.Scalar, opPos)
		}
		if cErr != nil {
			return cErr
		}
		e.push(ScalarValue(result))
	}
}

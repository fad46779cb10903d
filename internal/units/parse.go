package units

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	everrors "github.com/unitexpr/unitexpr/internal/errors"
)

// Parser is the fallback hook a caller may install as Registry.Fallback;
// it resolves a symbol the fixed table does not know about. It mirrors the
// caller-supplied UnitParser described in spec.md §6, but operates at the
// per-symbol granularity the registry needs (one Scale+Quantity per
// factor, not a whole bracket body).
type Parser interface {
	ParseSymbol(symbol string) (Scale, Quantity, bool)
}

// Registry resolves unit strings. The zero value is ready to use; Fallback
// is optional and consulted only once the fixed table and prefix
// decomposition both fail.
type Registry struct {
	Fallback Parser
}

// Lookup resolves a single bare symbol (no exponent, no '.' or '/') against
// the fixed table, trying a direct match first and then prefix
// decomposition, and finally the optional fallback parser.
func (r Registry) Lookup(symbol string) (Scale, Quantity, bool) {
	if e, ok := baseUnits[symbol]; ok {
		return e.scale, e.quantity, true
	}

	if scale, q, ok := decomposePrefix(symbol); ok {
		return scale, q, true
	}

	if r.Fallback != nil {
		if scale, q, ok := r.Fallback.ParseSymbol(symbol); ok {
			return scale, q, true
		}
	}

	return Scale{}, Quantity{}, false
}

// decomposePrefix tries every known SI prefix (longest first, so "da"
// is tried before "d") against symbol, accepting a match only when the
// remainder is both a known base unit and marked prefixable.
func decomposePrefix(symbol string) (Scale, Quantity, bool) {
	// Try the two-letter prefix ("da") before any one-letter prefix so
	// "dam" resolves to decametre, not deci + "am".
	if len(symbol) > 2 && symbol[:2] == "da" {
		rest := symbol[2:]
		if e, ok := baseUnits[rest]; ok && prefixable[rest] {
			return Scale{Factor: 1e1 * e.scale.Factor, Offset: e.scale.Offset}, e.quantity, true
		}
	}

	for prefix, factor := range prefixes {
		if prefix == "da" || !strings.HasPrefix(symbol, prefix) {
			continue
		}
		rest := symbol[len(prefix):]
		if rest == "" {
			continue
		}
		if e, ok := baseUnits[rest]; ok && prefixable[rest] {
			return Scale{Factor: factor * e.scale.Factor, Offset: e.scale.Offset}, e.quantity, true
		}
	}

	return Scale{}, Quantity{}, false
}

// Parse parses a full bracket body per spec.md §4.1/§6:
//
//	unit        = unit_factor ( '.' unit_factor )* ( '/' unit_factor ( '.' unit_factor )* )?
//	unit_factor = symbol (( '^' int ) | signed_int)?
//
// At most one '/' is permitted. pos is the byte offset of the start of the
// unit body within the original expression, used only to annotate errors.
func (r Registry) Parse(body string, pos int) (Scale, Quantity, error) {
	// Normalize to NFC first, so a symbol typed with a canonically
	// equivalent code point resolves to the form the table is keyed on: the
	// ohm sign (U+2126) becomes "Ω" (U+03A9), the kelvin sign (U+212A)
	// becomes "K".
	body = norm.NFC.String(strings.TrimSpace(body))
	if body == "" {
		return Scale{}, Quantity{}, everrors.New(everrors.KindBadUnitSymbol, pos, "empty unit")
	}

	numer, denom, found := strings.Cut(body, "/")
	if strings.Contains(denom, "/") {
		return Scale{}, Quantity{}, everrors.New(everrors.KindBadUnitSymbol, pos, "multiple '/' in unit %q", body)
	}

	// An empty numerator ("/s" meaning 1/s) is a bare reciprocal, not an
	// error: there is simply no numerator factor to multiply in.
	scale, q := Scale{Factor: 1}, Dimensionless
	if numer != "" {
		var err error
		scale, q, err = r.parseFactorList(numer, pos)
		if err != nil {
			return Scale{}, Quantity{}, err
		}
	} else if !found {
		return Scale{}, Quantity{}, everrors.New(everrors.KindBadUnitSymbol, pos, "empty unit")
	}

	if found {
		dScale, dQ, err := r.parseFactorList(denom, pos)
		if err != nil {
			return Scale{}, Quantity{}, err
		}
		if dScale.Factor == 0 {
			return Scale{}, Quantity{}, everrors.New(everrors.KindBadUnitSymbol, pos, "zero-factor unit in denominator of %q", body)
		}
		scale = Scale{Factor: scale.Factor / dScale.Factor, Offset: scale.Offset}
		q = q.Div(dQ)
	}

	return scale, q, nil
}

// parseFactorList parses a '.'-separated sequence of unit_factor tokens and
// composes their scales (multiplied) and quantities (summed). Each token
// may itself expand to more than one unit_factor concatenated without a
// separator, per nextFactor.
func (r Registry) parseFactorList(list string, pos int) (Scale, Quantity, error) {
	scale := Scale{Factor: 1}
	q := Dimensionless

	for _, tok := range strings.Split(list, ".") {
		if tok == "" {
			return Scale{}, Quantity{}, everrors.New(everrors.KindBadUnitSymbol, pos, "empty unit factor in %q", list)
		}
		for tok != "" {
			symbol, exp, rest, err := nextFactor(tok, pos)
			if err != nil {
				return Scale{}, Quantity{}, err
			}
			fScale, fQ, ok := r.Lookup(symbol)
			if !ok {
				return Scale{}, Quantity{}, everrors.New(everrors.KindUnknownUnit, pos, "unknown unit symbol %q", symbol)
			}
			scale = combineFactor(scale, Scale{Factor: pow(fScale.Factor, exp), Offset: fScale.Offset})
			q = q.Mul(fQ.Pow(exp))
			tok = rest
		}
	}

	return scale, q, nil
}

// nextFactor peels one unit_factor off the front of tok. A letter run is
// normally tried whole, with any trailing exponent applied to the entire
// run, so "kg2", "km2", "mol", and a prefix+base compound like "km" all
// resolve as a single symbol raised to a power.
//
// The sole exception is "ms" immediately followed by an exponent: spec.md
// §4.1's own worked example calls out "ms-1" as meaning "m·s⁻¹" (metre
// per second), not "millisecond⁻¹", even though "ms" also legitimately
// decomposes as the milli- prefix on base unit "s". That is a named
// ambiguity in the spec's own example, not a general rule, so it is
// special-cased here rather than generalized to every multi-letter run
// with a trailing exponent — doing the latter would wrongly split an
// ordinary prefixed-or-base symbol like "kg2" into "k" + "g2", and
// Lookup("k") has no bare entry to resolve against.
func nextFactor(tok string, pos int) (symbol string, exp int, rest string, err error) {
	i := 0
	for i < len(tok) && isUnitLetter(tok[i]) {
		i++
	}
	letters, after := tok[:i], tok[i:]
	if letters == "" {
		return "", 0, "", everrors.New(everrors.KindBadUnitSymbol, pos, "missing unit symbol in %q", tok)
	}

	if letters == "ms" && after != "" {
		return "m", 1, "s" + after, nil
	}

	exp = 1
	if after != "" {
		suffix := strings.TrimPrefix(after, "^")
		n, convErr := strconv.Atoi(suffix)
		if convErr != nil {
			return "", 0, "", everrors.New(everrors.KindBadUnitSymbol, pos, "bad exponent %q in %q", after, tok)
		}
		exp = n
	}
	return letters, exp, "", nil
}

// isUnitLetter reports whether b is part of a unit symbol's name: an ASCII
// letter, or any byte of a multi-byte UTF-8 sequence (°, µ, Ω all encode to
// bytes ≥ 0x80), so symbols like "°C" scan as one run.
func isUnitLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func pow(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	r := 1.0
	for ; exp > 0; exp-- {
		r *= base
	}
	if neg {
		r = 1 / r
	}
	return r
}

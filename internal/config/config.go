// Package config loads the CLI's `--vars` file (spec.md §6's Resolver,
// backed by a YAML or JSON document mapping variable names to
// "value[unit]" strings) and adapts it into the evaluator's Resolver
// interface.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/unitexpr/unitexpr/internal/scalar"
	"github.com/unitexpr/unitexpr/internal/units"
)

// Variables is the raw name -> "value[unit]" map decoded from a vars file.
type Variables map[string]string

// Load reads a variables file, selecting the decoder by extension: ".json"
// decodes as JSON, anything else as YAML (a superset of JSON, and the
// format the teacher's own config-adjacent fixtures favor).
func Load(path string) (Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vars file %s: %w", path, err)
	}

	vars := make(Variables)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("parsing vars file %s as JSON: %w", path, err)
		}
		return vars, nil
	}
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("parsing vars file %s as YAML: %w", path, err)
	}
	return vars, nil
}

// MapResolver implements the evaluator's Resolver interface over a decoded
// Variables map. Each entry is parsed on first Lookup and cached, so a
// malformed entry only ever errors if the expression actually references
// it; Err reports that error afterward for callers that want to surface it.
type MapResolver struct {
	vars  Variables
	units units.Registry

	cache map[string]any
	errs  map[string]error
}

// NewMapResolver wraps vars as a Resolver. The zero units.Registry (no
// Fallback) is used for unit lookups; callers needing a custom fallback
// parser should call SetUnitFallback after construction.
func NewMapResolver(vars Variables) *MapResolver {
	return &MapResolver{
		vars:  vars,
		cache: make(map[string]any),
		errs:  make(map[string]error),
	}
}

// SetUnitFallback installs a per-symbol fallback parser consulted when the
// fixed unit table doesn't recognize a symbol inside a variable's value.
func (m *MapResolver) SetUnitFallback(p units.Parser) {
	m.units.Fallback = p
}

// Lookup implements evalengine.Resolver / pkg/unitexpr.Resolver.
func (m *MapResolver) Lookup(name string) (any, bool) {
	if v, ok := m.cache[name]; ok {
		return v, true
	}
	if _, failed := m.errs[name]; failed {
		return nil, false
	}

	raw, ok := m.vars[name]
	if !ok {
		return nil, false
	}

	v, err := parseVarValue(raw, m.units)
	if err != nil {
		m.errs[name] = fmt.Errorf("variable %q: %w", name, err)
		return nil, false
	}
	m.cache[name] = v
	return v, true
}

// Err reports the parse error recorded for name once Lookup has resolved
// (successfully or not) an entry by that name. It returns nil for names
// that parsed cleanly or were never looked up.
func (m *MapResolver) Err(name string) error {
	return m.errs[name]
}

// Names returns every declared variable name in sorted order, for the
// CLI's diagnostic output.
func (m *MapResolver) Names() []string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseVarValue parses a single vars-file entry: "true"/"false" (any case)
// for a boolean, otherwise a decimal number optionally followed by a
// bracketed unit body, reusing the same unit grammar as the evaluator
// itself so "12.3[km/h]" means exactly what it would inside an expression.
func parseVarValue(raw string, ureg units.Registry) (any, error) {
	raw = strings.TrimSpace(raw)

	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	body, unitPart := raw, ""
	if i := strings.IndexByte(raw, '['); i >= 0 {
		if !strings.HasSuffix(raw, "]") {
			return nil, fmt.Errorf("missing closing ']' in %q", raw)
		}
		body = strings.TrimSpace(raw[:i])
		unitPart = raw[i+1 : len(raw)-1]
	}

	value, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed number %q", body)
	}

	if unitPart == "" {
		return scalar.NewRelative(value, units.Dimensionless), nil
	}

	sc, q, err := ureg.Parse(unitPart, 0)
	if err != nil {
		return nil, err
	}

	si := sc.Apply(value)
	kind := scalar.Relative
	if sc.Offset != 0 {
		kind = scalar.Absolute
	}
	return scalar.Scalar{Si: si, Quantity: q, Kind: kind}, nil
}

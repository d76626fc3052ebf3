package compare

import (
	"bytes"
	"cmp"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Suite is a file of comparison cases over one built-in value kind.
//
//	name: strings
//	kind: string
//	normalize: nfc
//	pairs:
//	  - {a: "A", b: "B", assert: less}
//	triples:
//	  - ["a", "b", "c"]
type Suite struct {
	// Name identifies the suite in results.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description,omitempty"`

	// Kind selects the value type: int, float or string.
	Kind Kind `yaml:"kind"`

	// Normalize applies a Unicode normalization form to string values.
	// Only "nfc" is supported.
	Normalize string `yaml:"normalize,omitempty"`

	// Pairs are checked with Test.
	Pairs []PairCase `yaml:"pairs,omitempty"`

	// Triples are checked with TriCompare and must be in non-decreasing order.
	Triples [][]any `yaml:"triples,omitempty"`
}

// PairCase asserts a relation between A and B.
type PairCase struct {
	A      any        `yaml:"a"`
	B      any        `yaml:"b"`
	Assert *Assertion `yaml:"assert"`
}

// Kind names the value type of a suite.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// Result is the outcome of running a suite.
type Result struct {
	// Name is the suite name.
	Name string `json:"name"`

	// Pass is true when every case passed.
	Pass bool `json:"pass"`

	// Checked counts the cases run.
	Checked int `json:"checked"`

	// Errors holds one message per failed case.
	Errors []string `json:"errors,omitempty"`
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// LoadSuite reads and parses a suite YAML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses suite YAML. Unknown fields are rejected.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &s, nil
}

func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	switch s.Kind {
	case KindInt, KindFloat, KindString:
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q: must be int, float or string", s.Kind)
	}

	if s.Normalize != "" {
		if s.Normalize != "nfc" {
			return fmt.Errorf("unknown normalize form %q: only nfc is supported", s.Normalize)
		}
		if s.Kind != KindString {
			return fmt.Errorf("normalize applies to string suites only")
		}
	}

	if len(s.Pairs) == 0 && len(s.Triples) == 0 {
		return fmt.Errorf("at least one pair or triple is required")
	}

	for i, pc := range s.Pairs {
		if pc.A == nil || pc.B == nil {
			return fmt.Errorf("pairs[%d]: a and b are required", i)
		}
		if pc.Assert == nil {
			return fmt.Errorf("pairs[%d]: assert is required", i)
		}
	}

	for i, tr := range s.Triples {
		if len(tr) != 3 {
			return fmt.Errorf("triples[%d]: expected 3 values, got %d", i, len(tr))
		}
	}

	return nil
}

// RunSuite checks every case in s. Diagnostics go wherever opts send them;
// the returned result lists one error per failed case.
func RunSuite(s *Suite, opts ...Option) (*Result, error) {
	switch s.Kind {
	case KindInt:
		return runSuite(s, toInt, opts)
	case KindFloat:
		return runSuite(s, toFloat, opts)
	case KindString:
		conv := toString
		if s.Normalize == "nfc" {
			conv = func(v any) (string, error) {
				str, err := toString(v)
				return norm.NFC.String(str), err
			}
		}
		return runSuite(s, conv, opts)
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

func runSuite[T cmp.Ordered](s *Suite, conv func(any) (T, error), opts []Option) (*Result, error) {
	rep := newReporter(opts)
	tester := NewOrderedTester[T](WithReporter(rep))
	result := &Result{Name: s.Name, Pass: true}

	for i, pc := range s.Pairs {
		a, err := conv(pc.A)
		if err != nil {
			return nil, fmt.Errorf("pairs[%d].a: %w", i, err)
		}
		b, err := conv(pc.B)
		if err != nil {
			return nil, fmt.Errorf("pairs[%d].b: %w", i, err)
		}

		result.Checked++
		if !tester.Test(a, b, *pc.Assert) {
			result.AddError(fmt.Sprintf("pairs[%d]: %s", i, lastFailure(rep)))
		}
	}

	for i, tr := range s.Triples {
		var vals [3]T
		for j, v := range tr {
			val, err := conv(v)
			if err != nil {
				return nil, fmt.Errorf("triples[%d][%d]: %w", i, j, err)
			}
			vals[j] = val
		}

		result.Checked++
		if !TriCompareOrdered(vals[0], vals[1], vals[2], WithReporter(rep)) {
			result.AddError(fmt.Sprintf("triples[%d]: %s", i, lastFailure(rep)))
		}
	}

	return result, nil
}

func lastFailure(rep *Reporter) string {
	failures := rep.Failures()
	if len(failures) == 0 {
		return "failed"
	}
	return failures[len(failures)-1].Error()
}

func toInt(v any) (int, error) {
	if i, ok := v.(int); ok {
		return i, nil
	}
	return 0, fmt.Errorf("expected int, got %T", v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func toString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

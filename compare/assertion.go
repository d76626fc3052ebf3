package compare

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Assertion is the relation a check declares between obj1 and obj2.
type Assertion int

const (
	Equal Assertion = iota
	Less
	Greater
)

// String returns the assertion name.
func (a Assertion) String() string {
	switch a {
	case Equal:
		return "Equal"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Assertion(%d)", int(a))
	}
}

// Flip returns the assertion that holds when the operands are swapped.
// Less and Greater trade places; Equal is unchanged.
func (a Assertion) Flip() Assertion {
	switch a {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return a
	}
}

// ParseAssertion parses an assertion name. Matching is case-insensitive and
// accepts the operator spellings ==, < and >.
func ParseAssertion(s string) (Assertion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equal", "eq", "==":
		return Equal, nil
	case "less", "lt", "<":
		return Less, nil
	case "greater", "gt", ">":
		return Greater, nil
	default:
		return 0, fmt.Errorf("unknown assertion %q: must be one of equal, less, greater", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Assertion) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAssertion(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = parsed
	return nil
}

// Operator identifies one of the six relational operators.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
)

// allOperators is the order in which checks are evaluated.
var allOperators = [...]Operator{OpEqual, OpNotEqual, OpLess, OpGreater, OpLessEqual, OpGreaterEqual}

// Symbol returns the Go spelling of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

func (op Operator) String() string {
	return op.Symbol()
}

// Expected returns the value op must produce for obj1 op obj2 when the
// assertion holds.
func (op Operator) Expected(a Assertion) bool {
	switch op {
	case OpEqual:
		return a == Equal
	case OpNotEqual:
		return a != Equal
	case OpLess:
		return a == Less
	case OpGreater:
		return a == Greater
	case OpLessEqual:
		return a != Greater
	case OpGreaterEqual:
		return a != Less
	default:
		return false
	}
}

// checkExpr renders the literal form of a check: (obj1 op obj2) when the
// operator must hold, !(obj1 op obj2) when it must not.
func checkExpr(op Operator, want bool) string {
	expr := fmt.Sprintf("(obj1 %s obj2)", op.Symbol())
	if !want {
		return "!" + expr
	}
	return expr
}

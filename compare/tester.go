package compare

import "cmp"

// Tester checks values of T1 against values of T2.
//
// The forward set holds the operators of obj1 OP obj2; the backward set
// those of obj2 OP obj1. They are detected independently because a type
// pair may define operators in one order only.
type Tester[T1, T2 any] struct {
	fwd Operators[T1, T2]
	bwd Operators[T2, T1]
	rep *Reporter
}

// NewTester creates a tester using the operators Detect finds for both
// operand orders.
func NewTester[T1, T2 any](opts ...Option) *Tester[T1, T2] {
	return NewTesterWith(Detect[T1, T2](), Detect[T2, T1](), opts...)
}

// NewTesterWith creates a tester from explicit operator sets.
func NewTesterWith[T1, T2 any](fwd Operators[T1, T2], bwd Operators[T2, T1], opts ...Option) *Tester[T1, T2] {
	return &Tester[T1, T2]{fwd: fwd, bwd: bwd, rep: newReporter(opts)}
}

// NewOrderedTester creates a tester for the language operators of T.
func NewOrderedTester[T cmp.Ordered](opts ...Option) *Tester[T, T] {
	return NewTesterWith(Builtin[T](), Builtin[T](), opts...)
}

// NewEqualityTester creates a tester for == and != only.
func NewEqualityTester[T comparable](opts ...Option) *Tester[T, T] {
	return NewTesterWith(Equality[T](), Equality[T](), opts...)
}

// Forward returns the operators of obj1 OP obj2.
func (t *Tester[T1, T2]) Forward() Operators[T1, T2] { return t.fwd }

// Backward returns the operators of obj2 OP obj1.
func (t *Tester[T1, T2]) Backward() Operators[T2, T1] { return t.bwd }

// TestForward reports whether every defined operator of obj1 OP obj2 agrees
// with assert. It stops at the first disagreement.
func (t *Tester[T1, T2]) TestForward(obj1 T1, obj2 T2, assert Assertion) bool {
	return testForward(t.rep, t.fwd, obj1, obj2, assert)
}

// TestBackward checks the flipped assertion with the operands swapped: for
// Less it verifies that obj2 is Greater than obj1.
func (t *Tester[T1, T2]) TestBackward(obj1 T1, obj2 T2, assert Assertion) bool {
	return testForward(t.rep, t.bwd, obj2, obj1, assert.Flip())
}

// Test checks the assertion forwards and backwards.
func (t *Tester[T1, T2]) Test(obj1 T1, obj2 T2, assert Assertion) bool {
	return t.TestForward(obj1, obj2, assert) && t.TestBackward(obj1, obj2, assert)
}

// Failures returns every failure recorded by this tester's reporter.
func (t *Tester[T1, T2]) Failures() []*CheckError {
	return t.rep.Failures()
}

// Reset forgets recorded failures.
func (t *Tester[T1, T2]) Reset() {
	t.rep.Reset()
}

func testForward[A, B any](rep *Reporter, ops Operators[A, B], a A, b B, assert Assertion) bool {
	for _, op := range allOperators {
		got, defined := ops.Eval(op, a, b)
		if !defined {
			continue
		}
		if want := op.Expected(assert); got != want {
			rep.fail(&CheckError{
				Code:      CodeMismatch,
				Expr:      checkExpr(op, want),
				Assertion: assert,
				Left:      a,
				Right:     b,
			})
			return false
		}
	}
	return true
}

func test[A, B any](rep *Reporter, fwd Operators[A, B], bwd Operators[B, A], a A, b B, assert Assertion) bool {
	return testForward(rep, fwd, a, b, assert) && testForward(rep, bwd, b, a, assert.Flip())
}

package compare

import (
	"cmp"
	"fmt"
	"io"
)

// LogicalValidity reports whether exactly one of o1 == o2 and o1 != o2
// holds, in both operand orders. It uses the operators Detect finds.
func LogicalValidity[T1, T2 any](o1 T1, o2 T2, opts ...Option) bool {
	return LogicalValidityWith(Detect[T1, T2](), Detect[T2, T1](), o1, o2, opts...)
}

// LogicalValidityWith is LogicalValidity over explicit operator sets.
//
// == must be defined in both orders. When != is missing in an order only
// == is known there and that half of the check passes.
func LogicalValidityWith[T1, T2 any](fwd Operators[T1, T2], bwd Operators[T2, T1], o1 T1, o2 T2, opts ...Option) bool {
	return logicalValidity(newReporter(opts), fwd, bwd, o1, o2, "o1", "o2")
}

func logicalValidity[A, B any](rep *Reporter, fwd Operators[A, B], bwd Operators[B, A], a A, b B, na, nb string) bool {
	if fwd.Eq == nil || bwd.Eq == nil {
		rep.fail(&CheckError{
			Code:  CodeEqualityUndefined,
			Expr:  fmt.Sprintf("%s == %s", na, nb),
			Left:  a,
			Right: b,
		})
		return false
	}
	if !exclusive(fwd, a, b) || !exclusive(bwd, b, a) {
		rep.fail(&CheckError{
			Code:  CodeLogicallyInvalid,
			Expr:  fmt.Sprintf("LogicalValidity(%s, %s)", na, nb),
			Left:  a,
			Right: b,
		})
		return false
	}
	return true
}

// exclusive reports whether == and != disagree for a and b.
func exclusive[A, B any](ops Operators[A, B], a A, b B) bool {
	if ops.Ne == nil {
		return true
	}
	return ops.Eq(a, b) != ops.Ne(a, b)
}

// Triple holds the operator sets TriCompare uses for each pair, in both
// operand orders.
type Triple[T1, T2, T3 any] struct {
	Ops12 Operators[T1, T2]
	Ops21 Operators[T2, T1]
	Ops23 Operators[T2, T3]
	Ops32 Operators[T3, T2]
	Ops13 Operators[T1, T3]
	Ops31 Operators[T3, T1]
}

// DetectTriple detects the operator sets of every pair.
func DetectTriple[T1, T2, T3 any]() Triple[T1, T2, T3] {
	return Triple[T1, T2, T3]{
		Ops12: Detect[T1, T2](),
		Ops21: Detect[T2, T1](),
		Ops23: Detect[T2, T3](),
		Ops32: Detect[T3, T2](),
		Ops13: Detect[T1, T3](),
		Ops31: Detect[T3, T1](),
	}
}

// TriCompare checks three values supplied in non-decreasing order:
// o1 <= o2 <= o3. Pairs are checked in the order (o1, o2), (o2, o3),
// (o1, o3), stopping at the first failure.
//
// For each pair == must be logically valid, then the relation is inferred
// from ==: Equal when it holds, Less otherwise, and Test must pass for it.
// A pair whose operators prove it descending is reported with CodeUnordered.
func TriCompare[T1, T2, T3 any](o1 T1, o2 T2, o3 T3, opts ...Option) bool {
	return TriCompareWith(DetectTriple[T1, T2, T3](), o1, o2, o3, opts...)
}

// TriCompareOrdered is TriCompare over the language operators of T.
func TriCompareOrdered[T cmp.Ordered](o1, o2, o3 T, opts ...Option) bool {
	ops := Builtin[T]()
	return TriCompareWith(Triple[T, T, T]{ops, ops, ops, ops, ops, ops}, o1, o2, o3, opts...)
}

// TriCompareWith is TriCompare over explicit operator sets.
func TriCompareWith[T1, T2, T3 any](tr Triple[T1, T2, T3], o1 T1, o2 T2, o3 T3, opts ...Option) bool {
	rep := newReporter(opts)
	return comparePair(rep, tr.Ops12, tr.Ops21, o1, o2, "o1", "o2") &&
		comparePair(rep, tr.Ops23, tr.Ops32, o2, o3, "o2", "o3") &&
		comparePair(rep, tr.Ops13, tr.Ops31, o1, o3, "o1", "o3")
}

func comparePair[A, B any](rep *Reporter, fwd Operators[A, B], bwd Operators[B, A], a A, b B, na, nb string) bool {
	if !logicalValidity(rep, fwd, bwd, a, b, na, nb) {
		return false
	}
	if fwd.Eq(a, b) {
		return test(rep, fwd, bwd, a, b, Equal)
	}
	if descending(fwd, bwd, a, b) {
		rep.fail(&CheckError{
			Code:  CodeUnordered,
			Expr:  fmt.Sprintf("%s <= %s", na, nb),
			Left:  a,
			Right: b,
		})
		return false
	}
	return test(rep, fwd, bwd, a, b, Less)
}

// descending reports whether a pair with ordering operators consistently
// proves a > b.
func descending[A, B any](fwd Operators[A, B], bwd Operators[B, A], a A, b B) bool {
	if !fwd.hasOrdering() && !bwd.hasOrdering() {
		return false
	}
	quiet := &Reporter{w: io.Discard, logger: discardLogger}
	return test(quiet, fwd, bwd, a, b, Greater)
}

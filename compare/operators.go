package compare

import (
	"cmp"
	"reflect"
)

// Operators is the capability set of an ordered type pair: the operators
// that are defined when written as obj1 OP obj2 with obj1 of type T1 and
// obj2 of type T2. A nil function means the operator is not defined.
type Operators[T1, T2 any] struct {
	Eq func(T1, T2) bool
	Ne func(T1, T2) bool
	Lt func(T1, T2) bool
	Gt func(T1, T2) bool
	Le func(T1, T2) bool
	Ge func(T1, T2) bool
}

func (o Operators[T1, T2]) fn(op Operator) func(T1, T2) bool {
	switch op {
	case OpEqual:
		return o.Eq
	case OpNotEqual:
		return o.Ne
	case OpLess:
		return o.Lt
	case OpGreater:
		return o.Gt
	case OpLessEqual:
		return o.Le
	case OpGreaterEqual:
		return o.Ge
	default:
		return nil
	}
}

// Has reports whether op is defined.
func (o Operators[T1, T2]) Has(op Operator) bool {
	return o.fn(op) != nil
}

// Defined returns the defined operators in evaluation order.
func (o Operators[T1, T2]) Defined() []Operator {
	var ops []Operator
	for _, op := range allOperators {
		if o.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// Eval evaluates a op b. defined is false, and nothing is called, when op
// is not part of the set.
func (o Operators[T1, T2]) Eval(op Operator, a T1, b T2) (result, defined bool) {
	f := o.fn(op)
	if f == nil {
		return false, false
	}
	return f(a, b), true
}

// With returns a copy of the set with op defined by f.
func (o Operators[T1, T2]) With(op Operator, f func(T1, T2) bool) Operators[T1, T2] {
	switch op {
	case OpEqual:
		o.Eq = f
	case OpNotEqual:
		o.Ne = f
	case OpLess:
		o.Lt = f
	case OpGreater:
		o.Gt = f
	case OpLessEqual:
		o.Le = f
	case OpGreaterEqual:
		o.Ge = f
	}
	return o
}

// Without returns a copy of the set with op undefined.
func (o Operators[T1, T2]) Without(op Operator) Operators[T1, T2] {
	return o.With(op, nil)
}

func (o Operators[T1, T2]) hasOrdering() bool {
	return o.Lt != nil || o.Gt != nil || o.Le != nil || o.Ge != nil
}

// Builtin returns the language operators of an ordered type.
func Builtin[T cmp.Ordered]() Operators[T, T] {
	return Operators[T, T]{
		Eq: func(a, b T) bool { return a == b },
		Ne: func(a, b T) bool { return a != b },
		Lt: func(a, b T) bool { return a < b },
		Gt: func(a, b T) bool { return a > b },
		Le: func(a, b T) bool { return a <= b },
		Ge: func(a, b T) bool { return a >= b },
	}
}

// Equality returns the language == and != of a comparable type. No
// ordering operators are defined.
func Equality[T comparable]() Operators[T, T] {
	return Operators[T, T]{
		Eq: func(a, b T) bool { return a == b },
		Ne: func(a, b T) bool { return a != b },
	}
}

type equaler[T any] interface{ Equal(T) bool }
type notEqualer[T any] interface{ NotEqual(T) bool }
type lesser[T any] interface{ Less(T) bool }
type greaterer[T any] interface{ Greater(T) bool }
type lessEqualer[T any] interface{ LessOrEqual(T) bool }
type greaterEqualer[T any] interface{ GreaterOrEqual(T) bool }

// Probe returns the operators T1 defines as methods taking a T2. Detection
// uses only the types; each method is probed independently. Methods declared
// on *T1 count too and are called on a copy of the operand.
func Probe[T1, T2 any]() Operators[T1, T2] {
	var ops Operators[T1, T2]

	if as, ok := receiver[T1, equaler[T2]](); ok {
		ops.Eq = func(a T1, b T2) bool { return as(a).Equal(b) }
	}
	if as, ok := receiver[T1, notEqualer[T2]](); ok {
		ops.Ne = func(a T1, b T2) bool { return as(a).NotEqual(b) }
	}
	if as, ok := receiver[T1, lesser[T2]](); ok {
		ops.Lt = func(a T1, b T2) bool { return as(a).Less(b) }
	}
	if as, ok := receiver[T1, greaterer[T2]](); ok {
		ops.Gt = func(a T1, b T2) bool { return as(a).Greater(b) }
	}
	if as, ok := receiver[T1, lessEqualer[T2]](); ok {
		ops.Le = func(a T1, b T2) bool { return as(a).LessOrEqual(b) }
	}
	if as, ok := receiver[T1, greaterEqualer[T2]](); ok {
		ops.Ge = func(a T1, b T2) bool { return as(a).GreaterOrEqual(b) }
	}
	return ops
}

// receiver returns a conversion from a T1 operand to I when T1 or *T1
// implements I.
func receiver[T1, I any]() (func(T1) I, bool) {
	t := reflect.TypeFor[T1]()
	if implements[I](t) {
		return func(a T1) I { return any(a).(I) }, true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && implements[I](reflect.PointerTo(t)) {
		return func(a T1) I { return any(&a).(I) }, true
	}
	return nil, false
}

func implements[I any](t reflect.Type) bool {
	return t.Implements(reflect.TypeFor[I]())
}

// Detect returns every operator defined for obj1 OP obj2.
//
// Methods found by Probe come first. When T1 and T2 are the same
// non-interface type the language operators fill the remaining slots:
// == and != when the type is comparable and declares neither Equal nor
// NotEqual, and the four ordering operators when the kind is ordered and the
// type declares none of the ordering methods.
func Detect[T1, T2 any]() Operators[T1, T2] {
	ops := Probe[T1, T2]()
	t1, t2 := reflect.TypeFor[T1](), reflect.TypeFor[T2]()
	if t1 != t2 || t1.Kind() == reflect.Interface {
		return ops
	}

	if ops.Eq == nil && ops.Ne == nil && t1.Comparable() {
		ops.Eq = func(a T1, b T2) bool { return any(a) == any(b) }
		ops.Ne = func(a T1, b T2) bool { return any(a) != any(b) }
	}
	if !ops.hasOrdering() && isOrderedKind(t1.Kind()) {
		ops.Lt = reflectOp[T1, T2](OpLess)
		ops.Gt = reflectOp[T1, T2](OpGreater)
		ops.Le = reflectOp[T1, T2](OpLessEqual)
		ops.Ge = reflectOp[T1, T2](OpGreaterEqual)
	}
	return ops
}

func isOrderedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

// reflectOp applies a language ordering operator to values of an ordered
// kind whose static type is only known through reflection.
func reflectOp[T1, T2 any](op Operator) func(T1, T2) bool {
	return func(a T1, b T2) bool {
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return apply(op, va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return apply(op, va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return apply(op, va.Float(), vb.Float())
		case reflect.String:
			return apply(op, va.String(), vb.String())
		default:
			return false
		}
	}
}

func apply[N cmp.Ordered](op Operator, a, b N) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpLess:
		return a < b
	case OpGreater:
		return a > b
	case OpLessEqual:
		return a <= b
	case OpGreaterEqual:
		return a >= b
	default:
		return false
	}
}

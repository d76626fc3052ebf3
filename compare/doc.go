// Package compare checks that the comparison operators defined between two
// (or three) values agree with each other and with an asserted ordering.
//
// Go has no operator overloading, so the "operators" of a type pair are
// described by an Operators value: one optional function per relational
// operator. Operators are discovered statically from the types involved:
//
//   - built-in language operators on ordered kinds (ints, uints, floats, strings)
//   - == and != on comparable kinds
//   - methods named Equal, NotEqual, Less, Greater, LessOrEqual and
//     GreaterOrEqual taking the other operand's type and returning bool
//
// An operator that a type pair does not define is skipped, never treated
// as a failure. Methods declared on *T are found for operands of type T.
//
// Operators behave exactly as the Go expressions they stand for. Comparing
// two comparable structs whose interface fields hold uncomparable values
// (a slice in an any, say) panics like == does, and a nil interface operand
// panics when its method is called.
//
// # Assertions
//
// A check declares one of three relations between obj1 and obj2:
//
//	Equal    ==  !=  <   >   <=  >=
//	         T   F   F   F   T   T
//	Less     F   T   T   F   T   F
//	Greater  F   T   F   T   F   T
//
// Every defined operator must produce the value in its column.
//
// # Usage
//
//	tester := compare.NewTester[string, string]()
//	if !tester.Test("A", "B", compare.Less) {
//	    t.Fail()
//	}
//
// Failed checks are written to stderr (red when colour is enabled) with the
// literal check expression and the file and line of the call site:
//
//	FAILED CHECK - (obj1 < obj2)
//	       FILE: /path/to/widget_test.go
//	       LINE: 42
//
// # TriCompare
//
// TriCompare checks three values that the caller supplies in non-decreasing
// order. It infers Equal or Less for each pair from ==, so a descending pair
// is reported as unordered input rather than guessed at.
package compare

package geom

import "golang.org/x/exp/constraints"

// Scalar is the set of component types the vector and point types accept.
// Every member supports ==, unary -, +, -, * and /, so the methods of the
// types below need nothing further. Overflow and division by zero behave
// exactly as they do for the bare scalar.
//
// Fixed-point types such as fixed.Int26_6 are members through their integer
// underlying type. Mul, Div and Dot then multiply raw values and the result
// is off by the fixed-point scale; see MulFixed26_6 and friends.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Float is the component set for averaging operations. Sums of integer
// components wrap and an int count may not fit in a narrow integer type, so
// those are left out.
type Float interface {
	constraints.Float
}

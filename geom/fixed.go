package geom

import "golang.org/x/image/math/fixed"

func Point2FromFixed26_6(p fixed.Point26_6) Point2[fixed.Int26_6] {
	return Point2[fixed.Int26_6]{X: p.X, Y: p.Y}
}

func FixedPoint26_6(p Point2[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: p.X, Y: p.Y}
}

func Vector2FromFixed26_6(p fixed.Point26_6) Vector2[fixed.Int26_6] {
	return Vector2[fixed.Int26_6]{X: p.X, Y: p.Y}
}

func FixedVector26_6(v Vector2[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: v.X, Y: v.Y}
}

// MulFixed26_6 scales v by k in 26.6 arithmetic, unlike v.Mul(k) which
// multiplies the raw values.
func MulFixed26_6(v Vector2[fixed.Int26_6], k fixed.Int26_6) Vector2[fixed.Int26_6] {
	return Vector2FromFixed26_6(FixedVector26_6(v).Mul(k))
}

// DivFixed26_6 divides v by k in 26.6 arithmetic. k must not be zero.
func DivFixed26_6(v Vector2[fixed.Int26_6], k fixed.Int26_6) Vector2[fixed.Int26_6] {
	return Vector2FromFixed26_6(FixedVector26_6(v).Div(k))
}

func DotFixed26_6(v, v2 Vector2[fixed.Int26_6]) fixed.Int26_6 {
	return v.X.Mul(v2.X) + v.Y.Mul(v2.Y)
}

func Point2FromFixed52_12(p fixed.Point52_12) Point2[fixed.Int52_12] {
	return Point2[fixed.Int52_12]{X: p.X, Y: p.Y}
}

func FixedPoint52_12(p Point2[fixed.Int52_12]) fixed.Point52_12 {
	return fixed.Point52_12{X: p.X, Y: p.Y}
}

func Vector2FromFixed52_12(p fixed.Point52_12) Vector2[fixed.Int52_12] {
	return Vector2[fixed.Int52_12]{X: p.X, Y: p.Y}
}

func FixedVector52_12(v Vector2[fixed.Int52_12]) fixed.Point52_12 {
	return fixed.Point52_12{X: v.X, Y: v.Y}
}

func MulFixed52_12(v Vector2[fixed.Int52_12], k fixed.Int52_12) Vector2[fixed.Int52_12] {
	return Vector2FromFixed52_12(FixedVector52_12(v).Mul(k))
}

func DivFixed52_12(v Vector2[fixed.Int52_12], k fixed.Int52_12) Vector2[fixed.Int52_12] {
	return Vector2FromFixed52_12(FixedVector52_12(v).Div(k))
}

func DotFixed52_12(v, v2 Vector2[fixed.Int52_12]) fixed.Int52_12 {
	return v.X.Mul(v2.X) + v.Y.Mul(v2.Y)
}

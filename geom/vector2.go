package geom

import "fmt"

// Vector2 is a displacement in the plane. The zero value is the zero vector.
type Vector2[T Scalar] struct {
	X T
	Y T
}

func NewVector2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func NewVector2FromArray[T Scalar](arr [2]T) Vector2[T] {
	return Vector2[T]{X: arr[0], Y: arr[1]}
}

func (v Vector2[T]) Eq(v2 Vector2[T]) bool {
	return v.X == v2.X && v.Y == v2.Y
}

// Ne reports whether any component differs.
func (v Vector2[T]) Ne(v2 Vector2[T]) bool {
	return !v.Eq(v2)
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

func (v Vector2[T]) Add(v2 Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector2[T]) Sub(v2 Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Mul scales every component by k. For fixed-point T the raw values are
// multiplied; use MulFixed26_6 or MulFixed52_12 to keep the scale.
func (v Vector2[T]) Mul(k T) Vector2[T] {
	return Vector2[T]{X: v.X * k, Y: v.Y * k}
}

// Div divides every component by k. For fixed-point T the raw values are
// divided; use DivFixed26_6 or DivFixed52_12 to keep the scale.
func (v Vector2[T]) Div(k T) Vector2[T] {
	return Vector2[T]{X: v.X / k, Y: v.Y / k}
}

// Dot returns the sum of componentwise products. For fixed-point T use
// DotFixed26_6 or DotFixed52_12.
func (v Vector2[T]) Dot(v2 Vector2[T]) T {
	return v.X*v2.X + v.Y*v2.Y
}

func (v *Vector2[T]) AddInPlace(v2 Vector2[T]) *Vector2[T] {
	*v = v.Add(v2)
	return v
}

func (v *Vector2[T]) SubInPlace(v2 Vector2[T]) *Vector2[T] {
	*v = v.Sub(v2)
	return v
}

func (v *Vector2[T]) MulInPlace(k T) *Vector2[T] {
	*v = v.Mul(k)
	return v
}

func (v *Vector2[T]) DivInPlace(k T) *Vector2[T] {
	*v = v.Div(k)
	return v
}

func (v Vector2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("Vector2(%v, %v)", v.X, v.Y)
}

package geom

import "fmt"

// Vector3 is a displacement in space. The zero value is the zero vector.
type Vector3[T Scalar] struct {
	X T
	Y T
	Z T
}

func NewVector3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func NewVector3FromArray[T Scalar](arr [3]T) Vector3[T] {
	return Vector3[T]{X: arr[0], Y: arr[1], Z: arr[2]}
}

// Eq reports whether all three components are equal.
func (v Vector3[T]) Eq(v2 Vector3[T]) bool {
	return v.X == v2.X && v.Y == v2.Y && v.Z == v2.Z
}

func (v Vector3[T]) Ne(v2 Vector3[T]) bool {
	return !v.Eq(v2)
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3[T]) Add(v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + v2.X, Y: v.Y + v2.Y, Z: v.Z + v2.Z}
}

func (v Vector3[T]) Sub(v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - v2.X, Y: v.Y - v2.Y, Z: v.Z - v2.Z}
}

// Mul scales every component by k. Fixed-point T is multiplied raw, see
// Scalar.
func (v Vector3[T]) Mul(k T) Vector3[T] {
	return Vector3[T]{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Div divides every component by k. A zero k behaves as it does for T:
// integer types panic, floats give Inf or NaN. Fixed-point T is divided
// raw, see Scalar.
func (v Vector3[T]) Div(k T) Vector3[T] {
	return Vector3[T]{X: v.X / k, Y: v.Y / k, Z: v.Z / k}
}

// Dot returns the sum of componentwise products. Fixed-point T is
// multiplied raw, see Scalar.
func (v Vector3[T]) Dot(v2 Vector3[T]) T {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z
}

func (v *Vector3[T]) AddInPlace(v2 Vector3[T]) *Vector3[T] {
	*v = v.Add(v2)
	return v
}

func (v *Vector3[T]) SubInPlace(v2 Vector3[T]) *Vector3[T] {
	*v = v.Sub(v2)
	return v
}

func (v *Vector3[T]) MulInPlace(k T) *Vector3[T] {
	*v = v.Mul(k)
	return v
}

func (v *Vector3[T]) DivInPlace(k T) *Vector3[T] {
	*v = v.Div(k)
	return v
}

func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("Vector3(%v, %v, %v)", v.X, v.Y, v.Z)
}

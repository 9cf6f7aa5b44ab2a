package geom

import "fmt"

// Point3 is a position in space. The zero value is the origin.
type Point3[T Scalar] struct {
	X T
	Y T
	Z T
}

func NewPoint3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

func NewPoint3FromArray[T Scalar](arr [3]T) Point3[T] {
	return Point3[T]{X: arr[0], Y: arr[1], Z: arr[2]}
}

func (p Point3[T]) Eq(p2 Point3[T]) bool {
	return p.X == p2.X && p.Y == p2.Y && p.Z == p2.Z
}

func (p Point3[T]) Ne(p2 Point3[T]) bool {
	return !p.Eq(p2)
}

func (p Point3[T]) Add(v Vector3[T]) Point3[T] {
	return Point3[T]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p Point3[T]) Sub(v Vector3[T]) Point3[T] {
	return Point3[T]{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

// SubPoint returns p - p2 as a vector.
func (p Point3[T]) SubPoint(p2 Point3[T]) Vector3[T] {
	return Vector3[T]{X: p.X - p2.X, Y: p.Y - p2.Y, Z: p.Z - p2.Z}
}

func (p *Point3[T]) AddInPlace(v Vector3[T]) *Point3[T] {
	*p = p.Add(v)
	return p
}

func (p *Point3[T]) SubInPlace(v Vector3[T]) *Point3[T] {
	*p = p.Sub(v)
	return p
}

func (p Point3[T]) Array() [3]T {
	return [3]T{p.X, p.Y, p.Z}
}

func (p Point3[T]) String() string {
	return fmt.Sprintf("Point3(%v, %v, %v)", p.X, p.Y, p.Z)
}

package geom

import "fmt"

// Point2 is a position in the plane. Points translate by vectors and
// subtract to vectors; two points are never added. The zero value is the
// origin.
type Point2[T Scalar] struct {
	X T
	Y T
}

func NewPoint2[T Scalar](x, y T) Point2[T] {
	return Point2[T]{X: x, Y: y}
}

func NewPoint2FromArray[T Scalar](arr [2]T) Point2[T] {
	return Point2[T]{X: arr[0], Y: arr[1]}
}

func (p Point2[T]) Eq(p2 Point2[T]) bool {
	return p.X == p2.X && p.Y == p2.Y
}

func (p Point2[T]) Ne(p2 Point2[T]) bool {
	return !p.Eq(p2)
}

// Add returns p translated by v.
func (p Point2[T]) Add(v Vector2[T]) Point2[T] {
	return Point2[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p translated by -v.
func (p Point2[T]) Sub(v Vector2[T]) Point2[T] {
	return Point2[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// SubPoint returns the displacement from p2 to p, i.e. p - p2.
func (p Point2[T]) SubPoint(p2 Point2[T]) Vector2[T] {
	return Vector2[T]{X: p.X - p2.X, Y: p.Y - p2.Y}
}

func (p *Point2[T]) AddInPlace(v Vector2[T]) *Point2[T] {
	*p = p.Add(v)
	return p
}

func (p *Point2[T]) SubInPlace(v Vector2[T]) *Point2[T] {
	*p = p.Sub(v)
	return p
}

func (p Point2[T]) Array() [2]T {
	return [2]T{p.X, p.Y}
}

func (p Point2[T]) String() string {
	return fmt.Sprintf("Point2(%v, %v)", p.X, p.Y)
}

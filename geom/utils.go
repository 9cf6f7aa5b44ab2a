package geom

func SumVector2[T Scalar](vs ...Vector2[T]) Vector2[T] {
	var sum Vector2[T]
	for _, v := range vs {
		sum.AddInPlace(v)
	}
	return sum
}

func SumVector3[T Scalar](vs ...Vector3[T]) Vector3[T] {
	var sum Vector3[T]
	for _, v := range vs {
		sum.AddInPlace(v)
	}
	return sum
}

// LerpPoint2 returns a + (b - a) * t.
func LerpPoint2[T Scalar](a, b Point2[T], t T) Point2[T] {
	return a.Add(b.SubPoint(a).Mul(t))
}

// LerpPoint3 returns a + (b - a) * t.
func LerpPoint3[T Scalar](a, b Point3[T], t T) Point3[T] {
	return a.Add(b.SubPoint(a).Mul(t))
}

// CentroidPoint2 returns the mean position of points, measured as
// displacements from the first one so that no two points are ever summed.
// ok is false for an empty slice.
func CentroidPoint2[T Float](points []Point2[T]) (c Point2[T], ok bool) {
	if len(points) == 0 {
		return c, false
	}
	var d Vector2[T]
	for _, p := range points[1:] {
		d.AddInPlace(p.SubPoint(points[0]))
	}
	return points[0].Add(d.Div(T(len(points)))), true
}

func CentroidPoint3[T Float](points []Point3[T]) (c Point3[T], ok bool) {
	if len(points) == 0 {
		return c, false
	}
	var d Vector3[T]
	for _, p := range points[1:] {
		d.AddInPlace(p.SubPoint(points[0]))
	}
	return points[0].Add(d.Div(T(len(points)))), true
}

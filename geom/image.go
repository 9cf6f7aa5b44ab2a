package geom

import "image"

func Point2FromImage(p image.Point) Point2[int] {
	return Point2[int]{X: p.X, Y: p.Y}
}

func Vector2FromImage(p image.Point) Vector2[int] {
	return Vector2[int]{X: p.X, Y: p.Y}
}

// ImagePoint converts p for use with the image and image/draw packages.
func ImagePoint(p Point2[int]) image.Point {
	return image.Pt(p.X, p.Y)
}

func ImageVector(v Vector2[int]) image.Point {
	return image.Pt(v.X, v.Y)
}

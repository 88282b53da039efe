package geom

// Point is a signed integer coordinate pair.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by a scalar.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Step returns p + n*dir.Unit(), the point n cells along dir from p.
func (p Point) Step(dir Direction, n int) Point {
	return p.Add(dir.Unit().Scale(n))
}

// InBounds reports whether p lies inside a grid of size (w, h).
func (p Point) InBounds(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

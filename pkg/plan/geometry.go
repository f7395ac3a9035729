package plan

import "math"

// Epsilon is the tolerance used for geometric comparisons throughout the
// engine. Two coordinates closer than Epsilon are considered equal.
const Epsilon = 1e-6

// Point is a 2D coordinate in meters.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
// The zero value is an empty rectangle at the origin.
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the minimum y coordinate.
func (r Rect) Bottom() float64 { return r.Y }

// Top returns the maximum y coordinate.
func (r Rect) Top() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point { return Point{r.CenterX(), r.CenterY()} }

// Area returns the rectangle's area. Degenerate rectangles have zero area.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Perimeter returns the rectangle's perimeter.
func (r Rect) Perimeter() float64 { return 2 * (r.Width + r.Height) }

// AspectRatio returns the long-side to short-side ratio (always >= 1).
// Degenerate rectangles report +Inf.
func (r Rect) AspectRatio() float64 {
	short := min(r.Width, r.Height)
	long := max(r.Width, r.Height)
	if short <= 0 {
		return math.Inf(1)
	}
	return long / short
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left()-Epsilon && p.X <= r.Right()+Epsilon &&
		p.Y >= r.Bottom()-Epsilon && p.Y <= r.Top()+Epsilon
}

// ContainsRect reports whether o lies entirely within r, up to tol.
func (r Rect) ContainsRect(o Rect, tol float64) bool {
	return o.Left() >= r.Left()-tol && o.Right() <= r.Right()+tol &&
		o.Bottom() >= r.Bottom()-tol && o.Top() <= r.Top()+tol
}

// IntersectionArea returns the area of overlap between r and o,
// zero if the rectangles are disjoint or merely touch along an edge.
func (r Rect) IntersectionArea(o Rect) float64 {
	w := Overlap1D(r.Left(), r.Right(), o.Left(), o.Right())
	h := Overlap1D(r.Bottom(), r.Top(), o.Bottom(), o.Top())
	return w * h
}

// OutsideArea returns the area of r that falls outside the bounds rectangle.
func (r Rect) OutsideArea(bounds Rect) float64 {
	return r.Area() - r.IntersectionArea(bounds)
}

// Overlap1D returns the length of the overlap of intervals [a1,a2] and [b1,b2],
// clamped to zero when they are disjoint.
func Overlap1D(a1, a2, b1, b2 float64) float64 {
	return max(0, min(a2, b2)-max(a1, b1))
}

// Overlap1DSpan returns the overlapping interval of [a1,a2] and [b1,b2].
// Disjoint intervals yield an empty span (lo >= hi).
func Overlap1DSpan(a1, a2, b1, b2 float64) (lo, hi float64) {
	return max(a1, b1), min(a2, b2)
}

// NearlyEqual reports whether a and b differ by less than Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

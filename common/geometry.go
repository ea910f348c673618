package common

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvertedBounds = errors.New("common: inverted bounds")

// AABB is an axis-aligned box in min/max form. Static tile bounds use it.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewAABB returns a box with the given bounds, rejecting min > max on either axis.
func NewAABB(minX, minY, maxX, maxY float64) (AABB, error) {
	if minX > maxX || minY > maxY {
		return AABB{}, fmt.Errorf("%w: (%g,%g)-(%g,%g)", ErrInvertedBounds, minX, minY, maxX, maxY)
	}
	return AABB{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// Span returns the smallest box containing both points.
func Span(a, b Vec2) AABB {
	return AABB{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

func (b AABB) Width() float64  { return b.MaxX - b.MinX }
func (b AABB) Height() float64 { return b.MaxY - b.MinY }

func (b AABB) Center() Vec2 {
	return Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// CollidesWith reports strictly positive overlap on both axes.
func (b AABB) CollidesWith(s Square) bool {
	return s.CollidesWith(b)
}

// Intersects is the strict box-box test: shared edges don't count.
func (b AABB) Intersects(o AABB) bool {
	return b.MinX < o.MaxX && b.MaxX > o.MinX && b.MinY < o.MaxY && b.MaxY > o.MinY
}

// Union returns the smallest box containing both.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// ContainsOnAxes reports, per axis, whether the square's extent lies within the box.
func (b AABB) ContainsOnAxes(s Square) (inX, inY bool) {
	inX = b.MinX <= s.X && b.MaxX >= s.X+s.Side
	inY = b.MinY <= s.Y && b.MaxY >= s.Y+s.Side
	return inX, inY
}

// BB converts to a chipmunk bounding box. Chipmunk's B/T are simply the
// min/max y, so the screen's y-down orientation carries over unchanged.
func (b AABB) BB() cp.BB {
	return cp.BB{L: b.MinX, B: b.MinY, R: b.MaxX, T: b.MaxY}
}

// Square is an entity body: top-left corner plus side length.
type Square struct {
	X, Y float64
	Side float64
}

// NewSquare returns a square with its top-left corner at (x, y).
func NewSquare(x, y, side float64) Square {
	return Square{X: x, Y: y, Side: side}
}

// At returns the same square moved to (x, y).
func (s Square) At(x, y float64) Square {
	return Square{X: x, Y: y, Side: s.Side}
}

func (s Square) Pos() Vec2 { return Vec2{X: s.X, Y: s.Y} }

func (s Square) Center() Vec2 {
	h := s.Side / 2
	return Vec2{X: s.X + h, Y: s.Y + h}
}

func (s Square) AABB() AABB {
	return AABB{MinX: s.X, MinY: s.Y, MaxX: s.X + s.Side, MaxY: s.Y + s.Side}
}

// CollidesWith reports strictly positive overlap with b; shared edges don't count.
func (s Square) CollidesWith(b AABB) bool {
	return b.MinX < s.X+s.Side &&
		b.MaxX > s.X &&
		b.MinY < s.Y+s.Side &&
		b.MaxY > s.Y
}

// Overlaps is the inclusive square-square test: touching squares overlap.
func (s Square) Overlaps(o Square) bool {
	return s.X <= o.X+o.Side &&
		s.X+s.Side >= o.X &&
		s.Y <= o.Y+o.Side &&
		s.Y+s.Side >= o.Y
}

package common

import "github.com/jakecoffman/cp"

// Vec2 is a 2D vector. Operations never mutate the receiver.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// CP converts to a chipmunk vector.
func (v Vec2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

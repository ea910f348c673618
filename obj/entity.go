package obj

import (
	"image/color"
	"math"

	"github.com/milk9111/laserjump/common"
)

// Entity is anything that moves through level geometry.
type Entity interface {
	Body() common.Square
	Velocity() common.Vec2
	Color() color.Color
	IsAlive() bool
	Kill()

	SetPosition(p common.Vec2)
	SetVX(vx float64)
	SetVY(vy float64)
	SetGrounded(grounded bool)

	// OnCollisionX and OnCollisionY fire once per blocking contact on that axis.
	OnCollisionX()
	OnCollisionY()

	Draw(c Canvas)
}

// ResolveAgainstGeometry moves e by its velocity, stopping it at the field
// edge and at every tile in geometry. Axes are resolved x first, then y,
// and each probe covers the whole distance travelled this tick. A diagonal
// move that slips past both probes is stopped at its time of impact.
func ResolveAgainstGeometry(e Entity, geometry []Placement, field common.AABB) {
	body := e.Body()
	v := e.Velocity()
	side := body.Side

	tx := body.X + v.X
	ty := body.Y + v.Y

	inX, inY := field.ContainsOnAxes(body.At(tx, ty))
	if !inX {
		tx = common.Clamp(tx, field.MinX, field.MaxX-side)
		e.OnCollisionX()
	}
	if !inY {
		ty = common.Clamp(ty, field.MinY, field.MaxY-side)
		e.OnCollisionY()
	}

	e.SetGrounded(false)

	for _, p := range geometry {
		hitX, hitY, landed := false, false, false

		xProbe := body.AABB().Union(body.At(tx, body.Y).AABB())
		if xProbe.Intersects(p.Bound) && (v.X != 0 || shallowerOnX(body, p.Bound)) {
			switch {
			case v.X > 0:
				tx = p.Bound.MinX - side
			case v.X < 0:
				tx = p.Bound.MaxX
			default:
				tx, _ = shallowestSide(body.X, side, p.Bound.MinX, p.Bound.MaxX)
			}
			hitX = true
		}

		yProbe := body.At(tx, body.Y).AABB().Union(body.At(tx, ty).AABB())
		if yProbe.Intersects(p.Bound) {
			switch {
			case v.Y > 0:
				ty = p.Bound.MinY - side
				landed = true
			case v.Y < 0:
				ty = p.Bound.MaxY
			default:
				ty, landed = shallowestSide(body.Y, side, p.Bound.MinY, p.Bound.MaxY)
			}
			hitY = true
		}

		if !hitX && !hitY {
			d := common.V(tx-body.X, ty-body.Y)
			if xFace, ok := impactFace(body, d, p.Bound); ok {
				if xFace {
					tx = p.Bound.MinX - side
					if d.X < 0 {
						tx = p.Bound.MaxX
					}
					hitX = true
				} else {
					ty = p.Bound.MinY - side
					landed = d.Y > 0
					if !landed {
						ty = p.Bound.MaxY
					}
					hitY = true
				}
			}
		}

		if hitX {
			e.OnCollisionX()
		}
		if hitY {
			if landed {
				e.SetGrounded(true)
			}
			e.OnCollisionY()
		}
		if hitX || hitY {
			p.Tile.React(p.Bound, e)
		}
	}

	e.SetPosition(common.V(tx, ty))
}

// impactFace finds the face of b that s, moving by d, enters first. xFace
// reports a vertical face; ties go to x. A body already inside b has no
// impact.
func impactFace(s common.Square, d common.Vec2, b common.AABB) (xFace, ok bool) {
	if s.CollidesWith(b) {
		return false, false
	}
	enterX, exitX, okX := slab(s.X, s.Side, d.X, b.MinX, b.MaxX)
	enterY, exitY, okY := slab(s.Y, s.Side, d.Y, b.MinY, b.MaxY)
	if !okX || !okY {
		return false, false
	}
	enter := max(enterX, enterY)
	if enter < 0 || enter >= 1 || enter >= min(exitX, exitY) {
		return false, false
	}
	return enterX >= enterY, true
}

// slab returns the fraction of d at which [pos, pos+side] enters and leaves
// the open interval (lo, hi).
func slab(pos, side, d, lo, hi float64) (enter, exit float64, ok bool) {
	switch {
	case d > 0:
		return (lo - pos - side) / d, (hi - pos) / d, true
	case d < 0:
		return (hi - pos) / d, (lo - pos - side) / d, true
	}
	if spanOverlaps(pos, side, lo, hi) {
		return math.Inf(-1), math.Inf(1), true
	}
	return 0, 0, false
}

func spanOverlaps(pos, side, lo, hi float64) bool {
	return pos < hi && pos+side > lo
}

// shallowestSide pushes a span [pos, pos+side] out of [lo, hi] by the
// smaller of the two possible moves. low reports a push toward lo.
func shallowestSide(pos, side, lo, hi float64) (resolved float64, low bool) {
	before := pos + side - lo
	after := hi - pos
	if before <= after {
		return lo - side, true
	}
	return hi, false
}

// shallowerOnX reports whether a body sunk into b is nearer to leaving it
// horizontally than vertically.
func shallowerOnX(s common.Square, b common.AABB) bool {
	if !s.CollidesWith(b) {
		return false
	}
	dx := min(s.X+s.Side-b.MinX, b.MaxX-s.X)
	dy := min(s.Y+s.Side-b.MinY, b.MaxY-s.Y)
	return dx <= dy
}

func drawBody(c Canvas, e Entity) {
	c.FillRect(e.Body().AABB(), e.Color())
}

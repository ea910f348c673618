package obj

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/laserjump/common"
)

// Direction is a cardinal laser heading.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Laser is a timed hit-scan ray. It is inactive once life reaches zero.
type Laser struct {
	origin common.Vec2
	end    common.Vec2
	dir    Direction
	life   uint8

	full uint8
	step uint8
}

// NewLaser returns an inactive laser that fires at fullLife and loses
// decayStep each tick. A zero step is treated as 1.
func NewLaser(fullLife, decayStep uint8) Laser {
	if decayStep == 0 {
		decayStep = 1
	}
	return Laser{full: fullLife, step: decayStep}
}

func (l *Laser) Active() bool { return l.life > 0 }

func (l *Laser) Life() uint8 { return l.life }

func (l *Laser) Origin() common.Vec2 { return l.origin }

func (l *Laser) End() common.Vec2 { return l.end }

func (l *Laser) Direction() Direction { return l.dir }

// Ticks is how many updates a freshly fired laser stays active.
func (l *Laser) Ticks() int {
	return int(math.Ceil(float64(l.full) / float64(l.step)))
}

// Fire starts a ray from origin. It reports false if a ray is already active.
func (l *Laser) Fire(origin common.Vec2, dir Direction, geometry []Placement, field common.AABB) bool {
	if l.Active() {
		return false
	}
	l.origin = origin
	l.dir = dir
	l.end = CastRay(origin, dir, geometry, field)
	l.life = l.full
	return true
}

// Update decays the ray, flooring at zero.
func (l *Laser) Update() {
	if l.life <= l.step {
		l.life = 0
		return
	}
	l.life -= l.step
}

// Bounds is the box spanned by the ray.
func (l *Laser) Bounds() common.AABB {
	return common.Span(l.origin, l.end)
}

// Hits reports whether the active ray touches body. Edges count.
func (l *Laser) Hits(body common.Square) bool {
	if !l.Active() {
		return false
	}
	return l.Bounds().BB().Intersects(body.AABB().BB())
}

func (l *Laser) Draw(c Canvas, clr color.Color) {
	if !l.Active() {
		return
	}
	r, g, b, _ := clr.RGBA()
	c.StrokeLine(l.origin, l.end, color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: l.life})
}

// CastRay returns where a ray from origin stops: the field edge, or the
// facing edge of the nearest tile in its path. Every tile blocks.
func CastRay(origin common.Vec2, dir Direction, geometry []Placement, field common.AABB) common.Vec2 {
	end := fieldEdge(origin, dir, field)
	a, b := origin.CP(), end.CP()

	best := cp.INFINITY
	for _, p := range geometry {
		t := p.Bound.BB().SegmentQuery(a, b)
		if t > 1 || t >= best {
			continue
		}
		best = t
		if t == 0 {
			end = origin
			continue
		}
		end = facingEdge(origin, dir, p.Bound)
	}
	return end
}

func fieldEdge(origin common.Vec2, dir Direction, field common.AABB) common.Vec2 {
	switch dir {
	case Left:
		return common.V(field.MinX, origin.Y)
	case Right:
		return common.V(field.MaxX, origin.Y)
	case Up:
		return common.V(origin.X, field.MinY)
	default:
		return common.V(origin.X, field.MaxY)
	}
}

func facingEdge(origin common.Vec2, dir Direction, b common.AABB) common.Vec2 {
	switch dir {
	case Left:
		return common.V(b.MaxX, origin.Y)
	case Right:
		return common.V(b.MinX, origin.Y)
	case Up:
		return common.V(origin.X, b.MaxY)
	default:
		return common.V(origin.X, b.MinY)
	}
}

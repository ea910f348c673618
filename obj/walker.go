package obj

import (
	"image/color"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
)

var walkerColor = color.RGBA{R: 225, G: 50, B: 150, A: 255}

// Walker patrols at a constant speed and turns around at walls.
type Walker struct {
	body    common.Square
	v       common.Vec2
	heading float64
	speed   float64
	gravity float64
	color   color.Color
	alive   bool
}

// NewWalker starts a walker at pos heading in dir (-1 left, 1 right).
func NewWalker(pos common.Vec2, dir float64, spec prefabs.WalkerSpec) *Walker {
	return &Walker{
		body:    common.NewSquare(pos.X, pos.Y, spec.Size),
		v:       common.V(dir*spec.Speed, 0),
		heading: common.Sign(dir),
		speed:   spec.Speed,
		gravity: spec.Gravity,
		color:   spec.Color.Or(walkerColor),
		alive:   true,
	}
}

func (w *Walker) Body() common.Square   { return w.body }
func (w *Walker) Velocity() common.Vec2 { return w.v }
func (w *Walker) Color() color.Color    { return w.color }
func (w *Walker) IsAlive() bool         { return w.alive }
func (w *Walker) Kill()                 { w.alive = false }

func (w *Walker) SetPosition(p common.Vec2) { w.body = w.body.At(p.X, p.Y) }
func (w *Walker) SetVX(vx float64)          { w.v.X = vx }
func (w *Walker) SetVY(vy float64)          { w.v.Y = vy }
func (w *Walker) SetGrounded(bool)          {}

// OnCollisionX turns back against the heading held at the start of the
// tick, so several walls hit at once still make a single turn.
func (w *Walker) OnCollisionX() { w.v.X = -w.heading * w.speed }
func (w *Walker) OnCollisionY() { w.v.Y = 0 }

func (w *Walker) Update(geometry []Placement, field common.AABB) {
	w.heading = common.Sign(w.v.X)
	w.v.Y += w.gravity
	ResolveAgainstGeometry(w, geometry, field)
}

func (w *Walker) Draw(c Canvas) { drawBody(c, w) }

package obj

import (
	"image/color"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
)

var jumperColor = color.RGBA{R: 255, G: 100, B: 50, A: 255}

// Jumper patrols like a Walker and jumps again as soon as it lands.
type Jumper struct {
	body     common.Square
	v        common.Vec2
	heading  float64
	speed    float64
	gravity  float64
	jump     float64
	rebound  float64
	color    color.Color
	grounded bool
	alive    bool
}

// NewJumper starts a jumper at pos heading in dir, already mid-jump.
func NewJumper(pos common.Vec2, dir float64, spec prefabs.JumperSpec) *Jumper {
	return &Jumper{
		body:    common.NewSquare(pos.X, pos.Y, spec.Size),
		v:       common.V(dir*spec.Speed, spec.JumpSpeed),
		heading: common.Sign(dir),
		speed:   spec.Speed,
		gravity: spec.Gravity,
		jump:    spec.JumpSpeed,
		rebound: spec.Rebound,
		color:   spec.Color.Or(jumperColor),
		alive:   true,
	}
}

func (j *Jumper) Body() common.Square   { return j.body }
func (j *Jumper) Velocity() common.Vec2 { return j.v }
func (j *Jumper) Color() color.Color    { return j.color }
func (j *Jumper) IsAlive() bool         { return j.alive }
func (j *Jumper) Kill()                 { j.alive = false }
func (j *Jumper) Grounded() bool        { return j.grounded }

func (j *Jumper) SetPosition(p common.Vec2) { j.body = j.body.At(p.X, p.Y) }
func (j *Jumper) SetVX(vx float64)          { j.v.X = vx }
func (j *Jumper) SetVY(vy float64)          { j.v.Y = vy }
func (j *Jumper) SetGrounded(g bool)        { j.grounded = g }

// OnCollisionX turns back against the heading held at the start of the
// tick, so several walls hit at once still make a single turn.
func (j *Jumper) OnCollisionX() { j.v.X = -j.heading * j.speed }

func (j *Jumper) OnCollisionY() {
	if j.v.Y >= 0 {
		j.v.Y = 0
		return
	}
	j.v.Y = j.rebound
}

func (j *Jumper) Update(geometry []Placement, field common.AABB) {
	j.heading = common.Sign(j.v.X)
	if j.grounded {
		j.v.Y = j.jump
	} else {
		j.v.Y += j.gravity
	}
	ResolveAgainstGeometry(j, geometry, field)
}

func (j *Jumper) Draw(c Canvas) { drawBody(c, j) }

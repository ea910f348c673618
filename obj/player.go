package obj

import (
	"image/color"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
)

var playerColor = color.RGBA{R: 50, G: 150, B: 255, A: 255}

// aimOrder is the priority used when several aim controls are held.
var aimOrder = [...]struct {
	control Control
	dir     Direction
}{
	{AimLeft, Left},
	{AimRight, Right},
	{AimUp, Up},
	{AimDown, Down},
}

// Player is the controllable avatar.
type Player struct {
	body     common.Square
	v        common.Vec2
	laser    Laser
	grounded bool
	alive    bool

	spec  prefabs.PlayerSpec
	color color.Color
}

// NewPlayer places a live, airborne player with its top-left corner at pos.
func NewPlayer(pos common.Vec2, spec prefabs.PlayerSpec, laser prefabs.LaserSpec) *Player {
	return &Player{
		body:  common.NewSquare(pos.X, pos.Y, spec.Size),
		laser: NewLaser(laser.FullLife, laser.DecayStep),
		alive: true,
		spec:  spec,
		color: spec.Color.Or(playerColor),
	}
}

func (p *Player) Body() common.Square   { return p.body }
func (p *Player) Velocity() common.Vec2 { return p.v }
func (p *Player) Color() color.Color    { return p.color }
func (p *Player) IsAlive() bool         { return p.alive }
func (p *Player) Kill()                 { p.alive = false }
func (p *Player) Grounded() bool        { return p.grounded }

// Laser returns the player's laser; it is inactive between shots.
func (p *Player) Laser() *Laser { return &p.laser }

func (p *Player) SetPosition(pos common.Vec2) { p.body = p.body.At(pos.X, pos.Y) }
func (p *Player) SetVX(vx float64)            { p.v.X = vx }
func (p *Player) SetVY(vy float64)            { p.v.Y = vy }
func (p *Player) SetGrounded(g bool)          { p.grounded = g }

func (p *Player) OnCollisionX() { p.v.X = 0 }
func (p *Player) OnCollisionY() { p.v.Y = 0 }

// Update runs one tick: laser decay, movement, firing, then the sweep.
func (p *Player) Update(in Controls, geometry []Placement, field common.AABB) {
	p.laser.Update()
	p.move(in)
	p.shoot(in, geometry, field)
	ResolveAgainstGeometry(p, geometry, field)
}

func (p *Player) move(in Controls) {
	left, right := in.Held(MoveLeft), in.Held(MoveRight)
	switch {
	case left && !right:
		p.v.X -= p.spec.Accel
	case right && !left:
		p.v.X += p.spec.Accel
	default:
		p.v.X = common.Approach(p.v.X, p.spec.Decel)
	}
	p.v.X = common.Clamp(p.v.X, -p.spec.MaxSpeed, p.spec.MaxSpeed)

	p.v.Y += p.spec.Gravity
	if p.grounded && in.Held(Jump) {
		p.v.Y = p.spec.JumpSpeed
	}
}

func (p *Player) shoot(in Controls, geometry []Placement, field common.AABB) {
	if p.laser.Active() {
		return
	}
	for _, aim := range aimOrder {
		if in.Held(aim.control) {
			p.laser.Fire(p.body.Center(), aim.dir, geometry, field)
			return
		}
	}
}

// CheckHostiles kills the player if any hostile touches it.
func (p *Player) CheckHostiles(hostiles []Hostile) {
	if p.alive && AnyTouches(hostiles, p.body) {
		p.Kill()
	}
}

func (p *Player) Draw(c Canvas) {
	drawBody(c, p)
	p.laser.Draw(c, p.color)
}

package obj

import (
	"image/color"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
)

var sitterColor = color.RGBA{R: 225, G: 150, B: 50, A: 255}

// Sitter never moves. Its motion hooks panic with ErrUnsupportedHook.
type Sitter struct {
	body  common.Square
	color color.Color
	alive bool
}

// NewSitter places a stationary target at pos.
func NewSitter(pos common.Vec2, spec prefabs.SitterSpec) *Sitter {
	return &Sitter{
		body:  common.NewSquare(pos.X, pos.Y, spec.Size),
		color: spec.Color.Or(sitterColor),
		alive: true,
	}
}

func (s *Sitter) Body() common.Square { return s.body }
func (s *Sitter) Color() color.Color  { return s.color }
func (s *Sitter) IsAlive() bool       { return s.alive }
func (s *Sitter) Kill()               { s.alive = false }

func (s *Sitter) SetPosition(p common.Vec2) { s.body = s.body.At(p.X, p.Y) }
func (s *Sitter) SetGrounded(bool)          {}

func (s *Sitter) Velocity() common.Vec2 {
	unsupported("sitter", "Velocity")
	return common.Vec2{}
}

func (s *Sitter) SetVX(float64) { unsupported("sitter", "SetVX") }
func (s *Sitter) SetVY(float64) { unsupported("sitter", "SetVY") }
func (s *Sitter) OnCollisionX() { unsupported("sitter", "OnCollisionX") }
func (s *Sitter) OnCollisionY() { unsupported("sitter", "OnCollisionY") }

func (s *Sitter) Update([]Placement, common.AABB) {}

func (s *Sitter) Draw(c Canvas) { drawBody(c, s) }

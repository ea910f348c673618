package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/laserjump/common"
)

// Canvas receives the draw calls issued each frame.
type Canvas interface {
	FillRect(b common.AABB, clr color.Color)
	StrokeLine(a, b common.Vec2, clr color.Color)
}

// ScreenCanvas draws onto an ebiten image.
type ScreenCanvas struct {
	Dst       *ebiten.Image
	LineWidth float32
	AntiAlias bool
}

// NewScreenCanvas draws lines lineWidth wide; non-positive widths become 1.
func NewScreenCanvas(dst *ebiten.Image, lineWidth float32) *ScreenCanvas {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &ScreenCanvas{Dst: dst, LineWidth: lineWidth}
}

func (c *ScreenCanvas) FillRect(b common.AABB, clr color.Color) {
	if c == nil || c.Dst == nil {
		return
	}
	vector.FillRect(c.Dst, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), clr, c.AntiAlias)
}

func (c *ScreenCanvas) StrokeLine(a, b common.Vec2, clr color.Color) {
	if c == nil || c.Dst == nil {
		return
	}
	vector.StrokeLine(c.Dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), c.LineWidth, clr, c.AntiAlias)
}

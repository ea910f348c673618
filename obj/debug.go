package obj

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/laserjump/common"
)

var (
	debugTileColor     = color.RGBA{R: 255, G: 255, B: 255, A: 96}
	debugBodyColor     = color.RGBA{R: 0, G: 255, B: 255, A: 200}
	debugVelocityColor = color.RGBA{R: 255, G: 255, B: 0, A: 220}
	debugLaserColor    = color.RGBA{R: 255, G: 0, B: 0, A: 160}
)

// velocityScale stretches velocity arrows so they are visible at 1 px/tick.
const velocityScale = 4

// DebugDraw outlines collision boxes and velocity vectors.
func DebugDraw(c Canvas, geometry []Placement, entities ...Entity) {
	for _, p := range geometry {
		strokeBB(c, p.Bound.BB(), debugTileColor)
	}
	for _, e := range entities {
		if e == nil || !e.IsAlive() {
			continue
		}
		body := e.Body()
		strokeBB(c, body.AABB().BB(), debugBodyColor)
		if _, ok := e.(*Sitter); ok {
			continue
		}
		center := body.Center()
		c.StrokeLine(center, center.Add(e.Velocity().Scale(velocityScale)), debugVelocityColor)
	}
}

// DebugDrawLaser outlines the box used for laser hit tests.
func DebugDrawLaser(c Canvas, l *Laser) {
	if l == nil || !l.Active() {
		return
	}
	strokeBB(c, l.Bounds().BB(), debugLaserColor)
}

func strokeBB(c Canvas, bb cp.BB, clr color.Color) {
	tl := common.V(bb.L, bb.B)
	tr := common.V(bb.R, bb.B)
	br := common.V(bb.R, bb.T)
	bl := common.V(bb.L, bb.T)
	c.StrokeLine(tl, tr, clr)
	c.StrokeLine(tr, br, clr)
	c.StrokeLine(br, bl, clr)
	c.StrokeLine(bl, tl, clr)
}

package obj

import (
	"testing"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
	"github.com/stretchr/testify/assert"
)

func TestDebugDraw(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	geometry := []Placement{solid(0, 700, 800, 800), solid(100, 100, 200, 200)}
	walker := NewWalker(common.V(300, 300), 1, tun.Walker)
	sitter := NewSitter(common.V(400, 300), tun.Sitter)
	dead := NewWalker(common.V(500, 300), 1, tun.Walker)
	dead.Kill()

	c := &recordingCanvas{}
	DebugDraw(c, geometry, sitter, dead, walker)

	// four edges per box, plus one velocity line for the walker only
	assert.Len(t, c.lines, 4*2+4*2+1)
	assert.Empty(t, c.rects)

	last := c.lines[len(c.lines)-1]
	assert.Equal(t, walker.Body().Center(), last.a)
	assert.Equal(t, walker.Body().Center().Add(walker.Velocity().Scale(velocityScale)), last.b)
}

func TestDebugDrawLaser(t *testing.T) {
	c := &recordingCanvas{}
	l := NewLaser(255, 15)

	DebugDrawLaser(c, &l)
	DebugDrawLaser(c, nil)
	assert.Empty(t, c.lines)

	l.Fire(common.V(0, 50), Right, nil, common.Field)
	DebugDrawLaser(c, &l)
	assert.Len(t, c.lines, 4)
}

package obj

import (
	"image/color"
	"testing"

	"github.com/milk9111/laserjump/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawnRect struct {
	b   common.AABB
	clr color.Color
}

type drawnLine struct {
	a, b common.Vec2
	clr  color.Color
}

type recordingCanvas struct {
	rects []drawnRect
	lines []drawnLine
}

func (c *recordingCanvas) FillRect(b common.AABB, clr color.Color) {
	c.rects = append(c.rects, drawnRect{b, clr})
}

func (c *recordingCanvas) StrokeLine(a, b common.Vec2, clr color.Color) {
	c.lines = append(c.lines, drawnLine{a, b, clr})
}

func TestLaserLifeDecay(t *testing.T) {
	tests := []struct {
		full, step uint8
		wantTicks  int
	}{
		{255, 15, 17},
		{255, 16, 16},
		{10, 3, 4},
		{1, 255, 1},
	}

	for _, tc := range tests {
		l := NewLaser(tc.full, tc.step)
		require.Equal(t, tc.wantTicks, l.Ticks())
		require.True(t, l.Fire(common.V(10, 10), Right, nil, common.Field))

		ticks := 0
		prev := l.Life()
		for l.Active() {
			l.Update()
			ticks++
			require.LessOrEqual(t, l.Life(), prev, "life must never wrap")
			prev = l.Life()
			require.LessOrEqual(t, ticks, 256)
		}
		assert.Equal(t, tc.wantTicks, ticks, "full=%d step=%d", tc.full, tc.step)
		assert.Equal(t, uint8(0), l.Life())

		l.Update()
		assert.Equal(t, uint8(0), l.Life())
	}
}

func TestLaserClipping(t *testing.T) {
	block := solid(100, 40, 200, 60)

	tests := []struct {
		name     string
		origin   common.Vec2
		dir      Direction
		geometry []Placement
		want     common.Vec2
	}{
		{"right_blocked", common.V(0, 50), Right, []Placement{block}, common.V(100, 50)},
		{"right_open_field", common.V(0, 50), Right, nil, common.V(common.FieldWidth, 50)},
		{"left_blocked", common.V(400, 50), Left, []Placement{block}, common.V(200, 50)},
		{"misses_below", common.V(0, 61), Right, []Placement{block}, common.V(common.FieldWidth, 61)},
		{"grazes_edge", common.V(0, 60), Right, []Placement{block}, common.V(100, 60)},
		{"behind_origin", common.V(300, 50), Right, []Placement{block}, common.V(common.FieldWidth, 50)},
		{"up_blocked", common.V(150, 300), Up, []Placement{block}, common.V(150, 60)},
		{"down_blocked", common.V(150, 0), Down, []Placement{block}, common.V(150, 40)},
		{"nearest_wins", common.V(0, 50), Right, []Placement{solid(500, 0, 600, 100), block}, common.V(100, 50)},
		{"any_tile_blocks", common.V(0, 50), Right, []Placement{{Bound: block.Bound, Tile: Ladder}}, common.V(100, 50)},
		{"origin_inside", common.V(150, 50), Right, []Placement{block}, common.V(150, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CastRay(tc.origin, tc.dir, tc.geometry, common.Field)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestLaserFireWhileActiveIsIgnored(t *testing.T) {
	l := NewLaser(255, 15)
	require.True(t, l.Fire(common.V(0, 50), Right, nil, common.Field))
	l.Update()

	assert.False(t, l.Fire(common.V(300, 300), Up, nil, common.Field))
	assert.Equal(t, common.V(0, 50), l.Origin())
	assert.Equal(t, Right, l.Direction())
	assert.Equal(t, uint8(240), l.Life())
}

func TestLaserHits(t *testing.T) {
	l := NewLaser(255, 15)
	assert.False(t, l.Hits(common.NewSquare(0, 0, 800)), "inactive laser hits nothing")

	l.Fire(common.V(0, 50), Right, []Placement{solid(400, 0, 500, 100)}, common.Field)

	assert.True(t, l.Hits(common.NewSquare(200, 40, 20)))
	assert.True(t, l.Hits(common.NewSquare(200, 30, 20)), "touching the ray counts")
	assert.False(t, l.Hits(common.NewSquare(200, 51, 20)))
	assert.False(t, l.Hits(common.NewSquare(450, 40, 20)), "behind the blocking tile")
}

func TestLaserDrawFadesWithLife(t *testing.T) {
	l := NewLaser(255, 15)
	c := &recordingCanvas{}

	l.Draw(c, color.White)
	assert.Empty(t, c.lines)

	l.Fire(common.V(0, 50), Right, nil, common.Field)
	l.Update()
	l.Draw(c, color.RGBA{R: 50, G: 150, B: 255, A: 255})

	require.Len(t, c.lines, 1)
	_, _, _, a := c.lines[0].clr.RGBA()
	assert.Equal(t, uint32(240)*0x101, a)
	assert.Equal(t, common.V(0, 50), c.lines[0].a)
	assert.Equal(t, common.V(common.FieldWidth, 50), c.lines[0].b)
}

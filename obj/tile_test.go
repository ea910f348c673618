package obj

import (
	"encoding/json"
	"testing"

	"github.com/milk9111/laserjump/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchPadSignRule(t *testing.T) {
	pad := common.AABB{MinX: 100, MinY: 500, MaxX: 300, MaxY: 520} // center (200, 510)

	tests := []struct {
		name   string
		tile   TileID
		pos    common.Vec2
		wantVX float64
		wantVY float64
	}{
		{"vertical_above", LaunchPadVertical, common.V(150, 470), 3, -LaunchSpeed},
		{"vertical_below", LaunchPadVertical, common.V(150, 521), 3, LaunchSpeed},
		{"vertical_level_goes_down", LaunchPadVertical, common.V(150, 500), 3, LaunchSpeed},
		{"horizontal_left", LaunchPadHorizontal, common.V(50, 500), -LaunchSpeed, 4},
		{"horizontal_right", LaunchPadHorizontal, common.V(300, 500), LaunchSpeed, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTracker(tc.pos.X, tc.pos.Y, 20, common.V(3, 4))
			e.grounded = true
			tc.tile.React(pad, e)

			assert.Equal(t, tc.wantVX, e.v.X)
			assert.Equal(t, tc.wantVY, e.v.Y)
			if tc.tile == LaunchPadVertical {
				assert.False(t, e.grounded)
			}
		})
	}
}

func TestLaunchPadThroughSweep(t *testing.T) {
	pad := Placement{Bound: common.AABB{MinX: 100, MinY: 500, MaxX: 300, MaxY: 520}, Tile: LaunchPadVertical}

	from := newTracker(150, 470, 20, common.V(0, 15))
	ResolveAgainstGeometry(from, []Placement{pad}, common.Field)
	assert.Equal(t, -LaunchSpeed, from.v.Y)
	assert.False(t, from.grounded, "a pad is never a normal stand")

	under := newTracker(150, 530, 20, common.V(0, -15))
	ResolveAgainstGeometry(under, []Placement{pad}, common.Field)
	assert.Equal(t, LaunchSpeed, under.v.Y)
	assert.Equal(t, 520.0, under.Body().Y)
}

func TestLadderAndHazardReactions(t *testing.T) {
	e := newTracker(0, 0, 10, common.V(1, 2))
	Ladder.React(common.AABB{}, e)
	assert.True(t, e.grounded)
	assert.Equal(t, common.V(1, 2), e.v, "ladder leaves velocity alone")

	Solid.React(common.AABB{}, e)
	assert.True(t, e.IsAlive())

	Hazard.React(common.AABB{}, e)
	assert.False(t, e.IsAlive())

	assert.NotPanics(t, func() { TileID(200).React(common.AABB{}, e) })
}

func TestTileIDText(t *testing.T) {
	for id := Solid; id < tileCount; id++ {
		text, err := id.MarshalText()
		require.NoError(t, err)

		var back TileID
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, id, back)
		assert.Equal(t, string(text), id.String())
	}

	_, err := ParseTileID("lava")
	assert.ErrorIs(t, err, ErrUnknownTile)

	_, err = TileID(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownTile)
	assert.Equal(t, "TileID(99)", TileID(99).String())
}

func TestTileIDFromJSON(t *testing.T) {
	var row struct {
		Tile TileID `json:"tile"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tile":"launch_pad_horizontal"}`), &row))
	assert.Equal(t, LaunchPadHorizontal, row.Tile)

	err := json.Unmarshal([]byte(`{"tile":"teleporter"}`), &row)
	assert.ErrorIs(t, err, ErrUnknownTile)
}

func TestTileColors(t *testing.T) {
	assert.NotEqual(t, Solid.Color(), Hazard.Color())
	assert.NotNil(t, TileID(42).Color())

	c := &recordingCanvas{}
	Placement{Bound: common.AABB{MaxX: 10, MaxY: 10}, Tile: Ladder}.Draw(c)
	require.Len(t, c.rects, 1)
	assert.Equal(t, Ladder.Color(), c.rects[0].clr)
}

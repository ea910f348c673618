package obj

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/laserjump/common"
	"golang.org/x/image/colornames"
)

// LaunchSpeed is the velocity magnitude a launch pad imparts.
const LaunchSpeed = 25.0

var ErrUnknownTile = errors.New("obj: unknown tile")

// TileID identifies how a piece of level geometry looks and reacts.
type TileID uint8

const (
	Solid TileID = iota
	LaunchPadVertical
	LaunchPadHorizontal
	Ladder
	Hazard

	tileCount
)

// Reaction is applied to an entity that touched a tile during its sweep.
type Reaction func(bound common.AABB, e Entity)

type tile struct {
	name     string
	color    color.Color
	reaction Reaction
}

var tiles = [tileCount]tile{
	Solid: {
		name:     "solid",
		color:    color.RGBA{R: 100, G: 105, B: 125, A: 255},
		reaction: func(common.AABB, Entity) {},
	},
	LaunchPadVertical: {
		name:  "launch_pad_vertical",
		color: color.RGBA{R: 25, G: 255, B: 100, A: 255},
		reaction: func(bound common.AABB, e Entity) {
			if e.Body().Center().Y < bound.Center().Y {
				e.SetVY(-LaunchSpeed)
			} else {
				e.SetVY(LaunchSpeed)
			}
			e.SetGrounded(false)
		},
	},
	LaunchPadHorizontal: {
		name:  "launch_pad_horizontal",
		color: color.RGBA{R: 25, G: 255, B: 100, A: 255},
		reaction: func(bound common.AABB, e Entity) {
			if e.Body().Center().X < bound.Center().X {
				e.SetVX(-LaunchSpeed)
			} else {
				e.SetVX(LaunchSpeed)
			}
		},
	},
	Ladder: {
		name:  "ladder",
		color: color.RGBA{R: 255, G: 225, B: 125, A: 255},
		reaction: func(_ common.AABB, e Entity) {
			e.SetGrounded(true)
		},
	},
	Hazard: {
		name:  "hazard",
		color: colornames.Magenta,
		reaction: func(_ common.AABB, e Entity) {
			e.Kill()
		},
	},
}

func (t TileID) valid() bool { return t < tileCount }

func (t TileID) Color() color.Color {
	if !t.valid() {
		return colornames.White
	}
	return tiles[t].color
}

// React dispatches the tile's reaction. Unknown tiles do nothing.
func (t TileID) React(bound common.AABB, e Entity) {
	if !t.valid() {
		return
	}
	tiles[t].reaction(bound, e)
}

func (t TileID) String() string {
	if !t.valid() {
		return fmt.Sprintf("TileID(%d)", uint8(t))
	}
	return tiles[t].name
}

// ParseTileID maps a level file name such as "ladder" to its TileID.
// Unknown names wrap ErrUnknownTile.
func ParseTileID(s string) (TileID, error) {
	for i, tl := range tiles {
		if tl.name == s {
			return TileID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, s)
}

func (t TileID) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTile, uint8(t))
	}
	return []byte(tiles[t].name), nil
}

func (t *TileID) UnmarshalText(text []byte) error {
	id, err := ParseTileID(string(text))
	if err != nil {
		return err
	}
	*t = id
	return nil
}

// Placement is one piece of static level geometry.
type Placement struct {
	Bound common.AABB
	Tile  TileID
}

func (p Placement) Draw(c Canvas) {
	c.FillRect(p.Bound, p.Tile.Color())
}

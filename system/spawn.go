package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/levels"
	"github.com/milk9111/laserjump/obj"
	"github.com/milk9111/laserjump/prefabs"
)

var ErrNoHostiles = errors.New("system: level has no hostiles")

// HostileSpawn places one hostile when a level starts.
type HostileSpawn struct {
	Kind obj.HostileKind
	Pos  common.Vec2
	Dir  float64
}

// Template is a validated level, ready to be spawned any number of times.
type Template struct {
	Name     string
	Spawn    common.Vec2
	Geometry []obj.Placement
	Hostiles []HostileSpawn
}

// BuildTemplate converts level data, rejecting inverted bounds and unknown
// tile or hostile names.
func BuildTemplate(l *levels.Level) (Template, error) {
	if l == nil {
		return Template{}, fmt.Errorf("system: build template: nil level")
	}

	t := Template{
		Name:     l.Name,
		Spawn:    common.V(l.Spawn.X, l.Spawn.Y),
		Geometry: make([]obj.Placement, 0, len(l.Tiles)),
	}

	for i, tl := range l.Tiles {
		bound, err := common.NewAABB(tl.MinX, tl.MinY, tl.MaxX, tl.MaxY)
		if err != nil {
			return Template{}, fmt.Errorf("system: level %s tile %d: %w", l.Name, i, err)
		}
		id, err := obj.ParseTileID(tl.Tile)
		if err != nil {
			return Template{}, fmt.Errorf("system: level %s tile %d: %w", l.Name, i, err)
		}
		t.Geometry = append(t.Geometry, obj.Placement{Bound: bound, Tile: id})
	}

	for i, e := range l.Entities {
		kind, err := obj.ParseHostileKind(e.Type)
		if err != nil {
			return Template{}, fmt.Errorf("system: level %s entity %d: %w", l.Name, i, err)
		}
		t.Hostiles = append(t.Hostiles, HostileSpawn{
			Kind: kind,
			Pos:  common.V(e.X, e.Y),
			Dir:  e.Float("dir", 1),
		})
	}
	if len(t.Hostiles) == 0 {
		return Template{}, fmt.Errorf("%w: %s", ErrNoHostiles, l.Name)
	}

	return t, nil
}

// BuildTemplates builds a template per level, keeping their order. The
// first invalid level aborts the build.
func BuildTemplates(ls []*levels.Level) ([]Template, error) {
	out := make([]Template, 0, len(ls))
	for _, l := range ls {
		t, err := BuildTemplate(l)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// LoadTemplates builds every embedded level.
func LoadTemplates() ([]Template, error) {
	ls, err := levels.LoadAll()
	if err != nil {
		return nil, err
	}
	return BuildTemplates(ls)
}

func (t Template) spawnPlayer(tun prefabs.Tuning) *obj.Player {
	return obj.NewPlayer(t.Spawn, tun.Player, tun.Laser)
}

func (t Template) spawnHostiles(tun prefabs.Tuning) []obj.Hostile {
	hostiles := make([]obj.Hostile, 0, len(t.Hostiles))
	for _, hs := range t.Hostiles {
		h, err := obj.NewHostile(hs.Kind, hs.Pos, hs.Dir, tun)
		if err != nil {
			log.Error("spawn hostile", "level", t.Name, "kind", hs.Kind, "err", err)
			continue
		}
		hostiles = append(hostiles, h)
	}
	return hostiles
}

package system

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/obj"
	"github.com/milk9111/laserjump/prefabs"
)

var ErrNoTemplates = errors.New("system: no level templates")

// Transition says what a tick did to the arena as a whole.
type Transition uint8

const (
	Continue Transition = iota
	Restarted
	Advanced
)

func (t Transition) String() string {
	switch t {
	case Restarted:
		return "restarted"
	case Advanced:
		return "advanced"
	}
	return "continue"
}

// World owns the current level: its geometry, the player and the live
// hostiles. Resets and level changes replace the whole value.
type World struct {
	templates []Template
	tuning    prefabs.Tuning
	field     common.AABB

	index    int
	geometry []obj.Placement
	player   *obj.Player
	hostiles []obj.Hostile
	ticks    int
}

// NewWorld starts at templates[index].
func NewWorld(templates []Template, index int, tuning prefabs.Tuning) (*World, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	if index < 0 || index >= len(templates) {
		return nil, fmt.Errorf("system: level index %d out of range [0,%d)", index, len(templates))
	}
	w := build(templates, index, tuning)
	log.Info("level loaded", "index", index, "name", templates[index].Name)
	return &w, nil
}

// LoadWorld builds a world from the embedded levels.
func LoadWorld(index int, tuning prefabs.Tuning) (*World, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	return NewWorld(templates, index, tuning)
}

func build(templates []Template, index int, tuning prefabs.Tuning) World {
	t := templates[index]
	return World{
		templates: templates,
		tuning:    tuning,
		field:     common.Field,
		index:     index,
		geometry:  t.Geometry,
		player:    t.spawnPlayer(tuning),
		hostiles:  t.spawnHostiles(tuning),
	}
}

// Tick runs one frame: player, hostiles, combat, then the reset decision.
func (w *World) Tick(in obj.Controls) Transition {
	w.player.Update(in, w.geometry, w.field)
	obj.UpdateHostiles(w.hostiles, w.geometry, w.field)
	w.hostiles = ResolveCombat(w.player, w.hostiles)
	w.ticks++

	switch {
	case !w.player.IsAlive():
		log.Info("player died", "level", w.Name(), "ticks", w.ticks)
		w.restart()
		return Restarted
	case in.Held(obj.Reset):
		log.Info("level reset", "level", w.Name())
		w.restart()
		return Restarted
	case len(w.hostiles) == 0:
		next := (w.index + 1) % len(w.templates)
		log.Info("level cleared", "level", w.Name(), "ticks", w.ticks, "next", w.templates[next].Name)
		*w = build(w.templates, next, w.tuning)
		return Advanced
	}
	return Continue
}

func (w *World) restart() {
	*w = build(w.templates, w.index, w.tuning)
}

// SetTuning takes effect the next time the level is rebuilt.
func (w *World) SetTuning(t prefabs.Tuning) {
	w.tuning = t
}

// Geometry yields the level's placements in reaction order.
func (w *World) Geometry() iter.Seq[obj.Placement] {
	return slices.Values(w.geometry)
}

func (w *World) Placements() []obj.Placement { return w.geometry }
func (w *World) Player() *obj.Player         { return w.player }
func (w *World) Hostiles() []obj.Hostile     { return w.hostiles }
func (w *World) Index() int                  { return w.index }
func (w *World) Name() string                { return w.templates[w.index].Name }
func (w *World) Ticks() int                  { return w.ticks }

func (w *World) Draw(c obj.Canvas) {
	for p := range w.Geometry() {
		p.Draw(c)
	}
	for _, h := range w.hostiles {
		h.Draw(c)
	}
	w.player.Draw(c)
}

// DrawDebug overlays collision boxes, velocities and the laser's hit box.
func (w *World) DrawDebug(c obj.Canvas) {
	entities := make([]obj.Entity, 0, len(w.hostiles)+1)
	for _, h := range w.hostiles {
		entities = append(entities, h)
	}
	entities = append(entities, w.player)
	obj.DebugDraw(c, w.geometry, entities...)
	obj.DebugDrawLaser(c, w.player.Laser())
}

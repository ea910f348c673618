package main

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/obj"
	"github.com/milk9111/laserjump/prefabs"
	"github.com/milk9111/laserjump/system"
)

type Game struct {
	world     *system.World
	watcher   *prefabs.Watcher
	canvas    *obj.ScreenCanvas
	debug     bool
	tuningMod time.Time
}

// NewGame wraps world for ebiten. watcher may be nil.
func NewGame(world *system.World, watcher *prefabs.Watcher, tuning prefabs.Tuning, debug bool) *Game {
	mod, _ := prefabs.ModTime(prefabs.TuningFile)
	return &Game{
		world:     world,
		watcher:   watcher,
		canvas:    obj.NewScreenCanvas(nil, tuning.Laser.Width),
		debug:     debug,
		tuningMod: mod,
	}
}

func (g *Game) Update() error {
	g.reloadTuning()

	switch g.world.Tick(obj.PollInput()) {
	case system.Restarted:
		log.Debug("restarted", "level", g.world.Name())
	case system.Advanced:
		log.Debug("advanced", "level", g.world.Name(), "index", g.world.Index())
	}
	return nil
}

// reloadTuning applies tuning edits picked up by the watcher. Events that
// leave the file's modification time unchanged are skipped, and a bad file
// keeps the previous tuning.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		if filepath.Base(name) != prefabs.TuningFile {
			continue
		}
		mod, ok := prefabs.ModTime(prefabs.TuningFile)
		if ok && !mod.After(g.tuningMod) {
			continue
		}
		t, err := prefabs.LoadTuning()
		if err != nil {
			log.Warn("tuning reload failed", "file", name, "err", err)
			continue
		}
		g.tuningMod = mod
		g.world.SetTuning(t)
		g.canvas.LineWidth = t.Laser.Width
		log.Info("tuning reloaded", "file", name)
	}
	for {
		select {
		case err := <-g.watcher.Errors:
			log.Warn("watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.canvas.Dst = screen
	g.world.Draw(g.canvas)
	if g.debug {
		g.world.DrawDebug(g.canvas)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(common.FieldWidth), int(common.FieldHeight)
}

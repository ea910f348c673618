// laserjump is a small arena platformer: clear each level of hostiles with a
// short-lived laser, using launch pads and ladders to get around.
//
// Usage:
//
//	laserjump                - Play from the first level
//	laserjump --level 2      - Start on a given level
//	laserjump levels         - List the embedded levels
//
// Controls: A/D move, Space jumps, arrow keys fire the laser, Tab resets.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
	"github.com/milk9111/laserjump/system"
)

var (
	flagLevel int
	flagDebug bool
	flagWatch bool
	flagTPS   int
	flagScale float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("laserjump", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "laserjump",
	Short:         "Arena platformer with a hit-scan laser",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagDebug)
	},
	RunE: runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels in play order",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := system.LoadTemplates()
		if err != nil {
			return err
		}
		for i, t := range templates {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-16s tiles=%-3d hostiles=%d\n", i, t.Name, len(t.Geometry), len(t.Hostiles))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Level index to start on")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs/ tuning from disk when it changes")
	rootCmd.Flags().IntVar(&flagTPS, "tps", common.TicksPerSecond, "Simulation ticks per second")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")

	rootCmd.AddCommand(levelsCmd)
}

func setupLogging(debug bool) {
	log.SetPrefix("laserjump")
	log.SetReportTimestamp(true)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagTPS <= 0 {
		return fmt.Errorf("--tps must be positive, got %d", flagTPS)
	}
	if flagScale <= 0 {
		return fmt.Errorf("--scale must be positive, got %g", flagScale)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	world, err := system.LoadWorld(flagLevel, tuning)
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if flagWatch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", prefabs.Dir, err)
		}
		defer watcher.Close()
		log.Info("watching tuning", "dir", prefabs.Dir)
	}

	ebiten.SetTPS(flagTPS)
	ebiten.SetWindowSize(int(common.FieldWidth*flagScale), int(common.FieldHeight*flagScale))
	ebiten.SetWindowTitle("laserjump")

	game := NewGame(world, watcher, tuning, flagDebug)
	return ebiten.RunGame(game)
}

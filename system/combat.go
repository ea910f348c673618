package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/laserjump/obj"
)

// ResolveCombat removes hostiles the laser hit or that died this tick, then
// checks whether a surviving hostile touches the player.
func ResolveCombat(player *obj.Player, hostiles []obj.Hostile) []obj.Hostile {
	hostiles, removed := obj.PruneHostiles(hostiles, player.Laser())
	if removed > 0 {
		log.Debug("hostiles removed", "count", removed, "left", len(hostiles))
	}
	player.CheckHostiles(hostiles)
	return hostiles
}

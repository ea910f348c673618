package obj

import (
	"errors"
	"fmt"
	"slices"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
)

var (
	ErrUnsupportedHook = errors.New("obj: unsupported hook")
	ErrUnknownHostile  = errors.New("obj: unknown hostile")
)

// Hostile is an entity that moves on its own and kills the player on touch.
type Hostile interface {
	Entity
	Update(geometry []Placement, field common.AABB)
}

type HostileKind uint8

const (
	KindWalker HostileKind = iota
	KindJumper
	KindSitter
)

var hostileNames = map[string]HostileKind{
	"walker": KindWalker,
	"jumper": KindJumper,
	"sitter": KindSitter,
}

// ParseHostileKind maps a level entity type to its kind. Unknown types
// wrap ErrUnknownHostile.
func ParseHostileKind(s string) (HostileKind, error) {
	k, ok := hostileNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHostile, s)
	}
	return k, nil
}

func (k HostileKind) String() string {
	for name, kind := range hostileNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("HostileKind(%d)", uint8(k))
}

// NewHostile builds a hostile of kind at pos. dir picks the initial
// horizontal heading; anything but a negative value heads right.
func NewHostile(kind HostileKind, pos common.Vec2, dir float64, t prefabs.Tuning) (Hostile, error) {
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	switch kind {
	case KindWalker:
		return NewWalker(pos, dir, t.Walker), nil
	case KindJumper:
		return NewJumper(pos, dir, t.Jumper), nil
	case KindSitter:
		return NewSitter(pos, t.Sitter), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownHostile, kind)
}

// UpdateHostiles advances every hostile by one tick.
func UpdateHostiles(hostiles []Hostile, geometry []Placement, field common.AABB) {
	for _, h := range hostiles {
		h.Update(geometry, field)
	}
}

// PruneHostiles kills hostiles touched by an active laser and drops every
// dead hostile. It returns the shortened slice and how many were removed.
func PruneHostiles(hostiles []Hostile, laser *Laser) ([]Hostile, int) {
	if laser != nil && laser.Active() {
		for _, h := range hostiles {
			if h.IsAlive() && laser.Hits(h.Body()) {
				h.Kill()
			}
		}
	}
	before := len(hostiles)
	hostiles = slices.DeleteFunc(hostiles, func(h Hostile) bool { return !h.IsAlive() })
	return hostiles, before - len(hostiles)
}

// AnyTouches reports whether a live hostile overlaps body, edges included.
func AnyTouches(hostiles []Hostile, body common.Square) bool {
	for _, h := range hostiles {
		if h.IsAlive() && h.Body().Overlaps(body) {
			return true
		}
	}
	return false
}

func unsupported(kind, hook string) {
	panic(fmt.Errorf("%w: %s.%s", ErrUnsupportedHook, kind, hook))
}

package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Control is one of the held-state inputs the simulation reads.
type Control uint8

const (
	MoveLeft Control = iota
	MoveRight
	Jump
	AimLeft
	AimRight
	AimUp
	AimDown
	Reset

	controlCount
)

// Controls answers whether a control is held this tick.
type Controls interface {
	Held(c Control) bool
}

// Snapshot is a fixed set of held controls. The zero value holds nothing.
type Snapshot [controlCount]bool

func (s Snapshot) Held(c Control) bool {
	if c >= controlCount {
		return false
	}
	return s[c]
}

// Press returns a copy of s with the given controls held.
func (s Snapshot) Press(cs ...Control) Snapshot {
	for _, c := range cs {
		if c < controlCount {
			s[c] = true
		}
	}
	return s
}

const stickDeadzone = 0.3

var keyBindings = [controlCount][]ebiten.Key{
	MoveLeft:  {ebiten.KeyA},
	MoveRight: {ebiten.KeyD},
	Jump:      {ebiten.KeySpace},
	AimLeft:   {ebiten.KeyArrowLeft},
	AimRight:  {ebiten.KeyArrowRight},
	AimUp:     {ebiten.KeyArrowUp},
	AimDown:   {ebiten.KeyArrowDown},
	Reset:     {ebiten.KeyTab},
}

var padBindings = [controlCount]ebiten.StandardGamepadButton{
	MoveLeft:  -1,
	MoveRight: -1,
	Jump:      ebiten.StandardGamepadButtonRightBottom,
	AimLeft:   ebiten.StandardGamepadButtonLeftLeft,
	AimRight:  ebiten.StandardGamepadButtonLeftRight,
	AimUp:     ebiten.StandardGamepadButtonLeftTop,
	AimDown:   ebiten.StandardGamepadButtonLeftBottom,
	Reset:     ebiten.StandardGamepadButtonCenterRight,
}

// PollInput reads the keyboard and the first connected gamepad.
func PollInput() Snapshot {
	var s Snapshot
	for c, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				s[c] = true
			}
		}
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return s
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return s
	}

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -stickDeadzone {
		s[MoveLeft] = true
	} else if leftX > stickDeadzone {
		s[MoveRight] = true
	}

	for c, btn := range padBindings {
		if btn < 0 {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, btn) {
			s[c] = true
		}
	}
	return s
}

package obj

import (
	"errors"
	"testing"

	"github.com/milk9111/laserjump/common"
	"github.com/milk9111/laserjump/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireUnsupported(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, ErrUnsupportedHook), "got %v", err)
	}()
	fn()
}

func TestSitterHooksPanic(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	s := NewSitter(common.V(100, 100), tun.Sitter)

	hooks := map[string]func(){
		"Velocity":     func() { s.Velocity() },
		"SetVX":        func() { s.SetVX(1) },
		"SetVY":        func() { s.SetVY(1) },
		"OnCollisionX": s.OnCollisionX,
		"OnCollisionY": s.OnCollisionY,
	}
	for name, fn := range hooks {
		t.Run(name, func(t *testing.T) {
			requireUnsupported(t, fn)
		})
	}

	assert.NotPanics(t, func() {
		s.SetGrounded(true)
		s.Update([]Placement{solid(0, 0, 800, 800)}, common.Field)
		s.Kill()
	})
	assert.Equal(t, common.V(100, 100), s.Body().Pos())
	assert.False(t, s.IsAlive())
}

func TestWalkerTurnsAtWalls(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	geometry := []Placement{
		solid(0, 500, 800, 600),
		solid(300, 400, 320, 500),
	}
	w := NewWalker(common.V(250, 472), 1, tun.Walker)

	// 250 + 28 reaches the wall at 300 within a few ticks
	for range 5 {
		w.Update(geometry, common.Field)
	}

	assert.Equal(t, -tun.Walker.Speed, w.Velocity().X)
	assert.Less(t, w.Body().X, 300.0-28)
	assert.Equal(t, 472.0, w.Body().Y, "stays on the floor")
	assert.Zero(t, w.Velocity().Y)
}

func TestPatrollersTurnOnceAtOverlappingWalls(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	geometry := []Placement{
		solid(0, 500, 800, 600),
		solid(135, 400, 200, 500),
		solid(130, 400, 140, 500),
	}

	tests := []struct {
		kind  HostileKind
		start common.Vec2
		speed float64
		wantX float64
	}{
		{KindWalker, common.V(100, 500-tun.Walker.Size), tun.Walker.Speed, 102},
		{KindJumper, common.V(110, 500-tun.Jumper.Size), tun.Jumper.Speed, 106},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			h, err := NewHostile(tc.kind, tc.start, 1, tun)
			require.NoError(t, err)

			h.Update(geometry, common.Field)
			assert.Equal(t, tc.wantX, h.Body().X, "stopped by the nearer wall")
			assert.Equal(t, -tc.speed, h.Velocity().X, "both walls turn it the same way")

			for range 3 {
				h.Update(geometry, common.Field)
			}
			assert.Less(t, h.Body().X, tc.wantX, "walks away from the walls")
		})
	}
}

func TestWalkerTurnsAtFieldEdge(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	w := NewWalker(common.V(5, 100), -1, tun.Walker)

	w.Update(nil, common.Field)

	assert.Equal(t, 0.0, w.Body().X)
	assert.Equal(t, tun.Walker.Speed, w.Velocity().X)
}

func TestJumperBounces(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	floor := []Placement{solid(0, 500, 800, 600)}
	j := NewJumper(common.V(100, 476), 1, tun.Jumper)
	j.SetVY(1)

	j.Update(floor, common.Field)
	require.True(t, j.Grounded(), "lands on the floor")
	require.Zero(t, j.Velocity().Y)

	j.Update(floor, common.Field)
	assert.False(t, j.Grounded())
	assert.Equal(t, tun.Jumper.JumpSpeed, j.Velocity().Y, "relaunches from the ground")
	assert.Less(t, j.Body().Y, 476.0)
}

func TestJumperReboundsOffCeiling(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	ceiling := []Placement{solid(0, 0, 800, 100)}
	j := NewJumper(common.V(100, 105), 1, tun.Jumper)
	j.SetVY(-10)

	j.Update(ceiling, common.Field)

	assert.Equal(t, 100.0, j.Body().Y)
	assert.Equal(t, tun.Jumper.Rebound, j.Velocity().Y)
}

func TestNewHostile(t *testing.T) {
	tun := prefabs.MustLoadTuning()

	tests := []struct {
		name string
		dir  float64
		want any
	}{
		{"walker", -1, &Walker{}},
		{"jumper", 0, &Jumper{}},
		{"sitter", 1, &Sitter{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := ParseHostileKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.name, kind.String())

			h, err := NewHostile(kind, common.V(10, 20), tc.dir, tun)
			require.NoError(t, err)
			assert.IsType(t, tc.want, h)
			assert.Equal(t, common.V(10, 20), h.Body().Pos())
			assert.True(t, h.IsAlive())
		})
	}

	w, _ := NewHostile(KindWalker, common.Vec2{}, -1, tun)
	assert.Equal(t, -tun.Walker.Speed, w.Velocity().X)

	_, err := ParseHostileKind("dragon")
	assert.ErrorIs(t, err, ErrUnknownHostile)

	_, err = NewHostile(HostileKind(9), common.Vec2{}, 1, tun)
	assert.ErrorIs(t, err, ErrUnknownHostile)
}

func TestPruneHostiles(t *testing.T) {
	tun := prefabs.MustLoadTuning()

	inLine := NewWalker(common.V(300, 40), 1, tun.Walker)
	offLine := NewSitter(common.V(300, 200), tun.Sitter)
	dead := NewJumper(common.V(600, 600), 1, tun.Jumper)
	dead.Kill()

	hostiles := []Hostile{inLine, offLine, dead}

	laser := NewLaser(255, 15)
	laser.Fire(common.V(0, 50), Right, nil, common.Field)

	hostiles, removed := PruneHostiles(hostiles, &laser)
	assert.Equal(t, 2, removed)
	require.Len(t, hostiles, 1)
	assert.Same(t, offLine, hostiles[0])
	assert.False(t, inLine.IsAlive())

	hostiles, removed = PruneHostiles(hostiles, nil)
	assert.Zero(t, removed)
	assert.Len(t, hostiles, 1)
}

func TestAnyTouchesIsInclusive(t *testing.T) {
	tun := prefabs.MustLoadTuning()
	s := NewSitter(common.V(100, 100), tun.Sitter) // side 30

	assert.True(t, AnyTouches([]Hostile{s}, common.NewSquare(130, 100, 40)))
	assert.False(t, AnyTouches([]Hostile{s}, common.NewSquare(131, 100, 40)))
	assert.False(t, AnyTouches(nil, common.NewSquare(100, 100, 40)))
}

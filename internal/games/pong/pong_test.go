package pong

import (
	"testing"

	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
)

// fixedRand always returns the same value.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return 0 }

func TestMovementClamp(t *testing.T) {
	const screenH = 600

	tests := []struct {
		name     string
		startY   float64
		up, down bool
		expected float64
	}{
		{"up", 300, true, false, 290},
		{"down", 300, false, true, 310},
		{"up wins over down", 300, true, true, 290},
		{"idle", 300, false, false, 300},
		{"clamped at top", 5, true, false, 0},
		{"clamped at bottom", 515, false, true, 520},
		{"already at top", 0, true, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(20, tc.startY, 20, 80)
			Movement(&p, tc.up, tc.down, 10, screenH)
			if p.Rect.Y != tc.expected {
				t.Errorf("y = %v, expected %v", p.Rect.Y, tc.expected)
			}
		})
	}
}

func TestMovementStaysInRange(t *testing.T) {
	p := NewPaddle(20, 300, 20, 80)
	for i := 0; i < 200; i++ {
		up := (i/30)%2 == 0
		Movement(&p, up, !up, 10, 600)
		if p.Rect.Y < 0 || p.Rect.Y > 520 {
			t.Fatalf("tick %d: paddle left the field at y=%v", i, p.Rect.Y)
		}
	}
}

func TestMoveBallWallBounce(t *testing.T) {
	tests := []struct {
		name      string
		y, dirY   float64
		expectDir float64
	}{
		{"past bottom", 580, 0.5, -0.5},
		{"past top", 3, -0.5, 0.5},
		{"mid field", 300, 0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Circle: core.NewCircle(400, tc.y, 15), Dir: core.NewVec2(0, tc.dirY)}
			MoveBall(&b, 12, 600)
			if b.Dir.Y != tc.expectDir {
				t.Errorf("dir.y = %v, expected %v", b.Dir.Y, tc.expectDir)
			}
		})
	}
}

func TestMoveBallIntegrates(t *testing.T) {
	b := Ball{Circle: core.NewCircle(400, 300, 15), Dir: core.NewVec2(0.5, -0.25)}
	MoveBall(&b, 12, 600)
	if b.Circle.X != 406 || b.Circle.Y != 297 {
		t.Errorf("ball at (%v, %v), expected (406, 297)", b.Circle.X, b.Circle.Y)
	}
}

func TestCollisionWithPaddle(t *testing.T) {
	left := core.NewRect(20, 300, 20, 80)
	right := core.NewRect(760, 300, 20, 80)

	tests := []struct {
		name     string
		x, y     float64
		hit      bool
		expectDX float64
	}{
		{"overlaps left", 30, 320, true, 0.5},
		{"overlaps right", 750, 320, true, 0.5},
		{"touches left edge", 40, 320, true, 0.5},
		{"misses", 400, 320, false, -0.5},
		{"above paddle", 30, 270, false, -0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Circle: core.NewCircle(tc.x, tc.y, 15), Dir: core.NewVec2(-0.5, 0)}
			hit := CollisionWithPaddle(&b, left, right)
			if hit != tc.hit {
				t.Errorf("hit = %v, expected %v", hit, tc.hit)
			}
			if b.Dir.X != tc.expectDX {
				t.Errorf("dir.x = %v, expected %v", b.Dir.X, tc.expectDX)
			}
			// No positional correction
			if b.Circle.X != tc.x {
				t.Errorf("ball moved from %v to %v", tc.x, b.Circle.X)
			}
		})
	}
}

func TestNewBallDirectionRange(t *testing.T) {
	rng := core.NewRand(3)
	for i := 0; i < 1000; i++ {
		b := NewBall(core.NewVec2(400, 300), 15, rng)
		if b.Dir.X < -1 || b.Dir.X >= 1 || b.Dir.Y < -1 || b.Dir.Y >= 1 {
			t.Fatalf("direction out of range: %+v", b.Dir)
		}
	}

	b := NewBall(core.NewVec2(400, 300), 15, fixedRand{f: 0})
	if b.Dir != core.NewVec2(-1, -1) {
		t.Errorf("lowest draw should give (-1, -1), got %+v", b.Dir)
	}
}

func TestGameInitialLayout(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(core.DefaultConfig())

	left, right := g.Paddles()
	if left.Rect.X != 20 || left.Rect.Y != 300 {
		t.Errorf("left paddle at (%v, %v), expected (20, 300)", left.Rect.X, left.Rect.Y)
	}
	if right.Rect.X != 760 || right.Rect.Y != 300 {
		t.Errorf("right paddle at (%v, %v), expected (760, 300)", right.Rect.X, right.Rect.Y)
	}
	if c := g.Ball().Circle; c.X != 400 || c.Y != 300 {
		t.Errorf("ball at (%v, %v), expected center", c.X, c.Y)
	}
}

// Ball served straight left with dir (-1, 0): it misses the left paddle
// (which sits below it once moved up) and exits through x < 0.
func TestGameEndToEndScoring(t *testing.T) {
	g := New(config.DefaultPongConfig())
	// 0.0 maps to -1 on both axes; 0.5 maps to 0.
	g.ResetWithRand(&sequenceRand{values: []float64{0.0, 0.5}})

	// Move the left paddle out of the way
	in := core.NewMultiInputFrame()
	in.Set(core.Player1, core.ActionDown)

	var events []core.Event
	for i := 0; i < 40; i++ {
		res := g.Step(in)
		events = append(events, res.Events...)
		if s1, s2 := g.Scores(); s1+s2 > 0 {
			break
		}
	}

	s1, s2 := g.Scores()
	if s1 != 0 || s2 != 1 {
		t.Fatalf("scores = %d-%d, expected 0-1", s1, s2)
	}
	if len(events) != 1 || events[0] != (core.SoundEvent{Name: SoundScore}) {
		t.Errorf("events = %v, expected one score sound", events)
	}

	// Respawned at center
	if c := g.Ball().Circle; c.X != 400 || c.Y != 300 {
		t.Errorf("ball should respawn at center, got (%v, %v)", c.X, c.Y)
	}
}

func TestGameWinScore(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Gameplay.WinScore = 1
	g := New(cfg)
	// Serve straight right every time: x draw 0.999 ~ +1, y draw 0.5 = 0
	g.ResetWithRand(&sequenceRand{values: []float64{0.9999, 0.5}})

	in := core.NewMultiInputFrame()
	in.Set(core.Player2, core.ActionDown)

	for i := 0; i < 60 && !g.State().GameOver; i++ {
		g.Step(in)
	}

	if !g.State().GameOver {
		t.Fatal("match should end at the win score")
	}
	if s1, _ := g.Scores(); s1 != 1 {
		t.Errorf("left score = %d, expected 1", s1)
	}

	// Steps after game over are no-ops
	before := g.Snapshot()
	g.Step(in)
	if g.Snapshot() != before {
		t.Error("game over should freeze the simulation")
	}
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: 9})

	pause := core.NewMultiInputFrame()
	pause.Set(core.Player1, core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}

	before := g.Ball()
	g.Step(core.NewMultiInputFrame())
	if g.Ball() != before {
		t.Error("paused game should not move the ball")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(config.DefaultPongConfig())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 12345})
		for i := 0; i < 600; i++ {
			in := core.NewMultiInputFrame()
			if i%20 < 10 {
				in.Set(core.Player1, core.ActionUp)
				in.Set(core.Player2, core.ActionDown)
			}
			g.Step(in)
		}
		return core.Digest(g.Snapshot())
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed: digests differ %x != %x", a, b)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := New(config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(40, 1) != NetChar {
		t.Error("net should be drawn in the middle column")
	}
}

// sequenceRand replays values in a loop.
type sequenceRand struct {
	values []float64
	i      int
}

func (r *sequenceRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func (r *sequenceRand) Intn(n int) int { return 0 }

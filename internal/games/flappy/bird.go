package flappy

import (
	"math"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

// Bird is the player. Rotation is derived from velocity on every gravity
// tick, never integrated.
type Bird struct {
	Y        float64
	Velocity float64
	Rotation float64
	Frame    int // animation frame 0..2
	Anim     core.RepeatingTimer
}

// NewBird returns a bird at rest on the middle frame.
func NewBird(frameDuration float64) Bird {
	return Bird{
		Frame: 1,
		Anim:  core.NewRepeatingTimer(frameDuration),
	}
}

// Gravity pulls the bird down for one tick. Velocity is updated first and
// the new velocity moves the bird. Touching the ground ends the run.
func Gravity(w *World, dt float64) {
	p := w.Cfg.Physics
	b := &w.Bird

	b.Velocity -= p.Gravity * p.GravityScale * dt
	b.Y = math.Min(b.Y+b.Velocity*dt, p.Ceiling)
	b.Rotation = core.ClampF(b.Velocity/p.RotationDiv, -p.MaxRotation, p.MaxRotation)

	if floor := GroundThreshold(w.Cfg); b.Y < floor {
		b.Y = floor
		b.Velocity = 0
		w.gameOver()
	}
}

// Jump sets the bird's velocity to the jump impulse on a jump edge,
// whatever its previous value.
func Jump(w *World, pressed bool) {
	if !pressed {
		return
	}
	w.Events.Sound(SoundWing)
	w.Bird.Velocity = w.Cfg.Physics.JumpVelocity
}

// AnimateBird advances the flap animation 0 -> 1 -> 2 -> 0.
func AnimateBird(w *World, dt float64) {
	if w.Bird.Anim.Tick(dt) {
		w.Bird.Frame = (w.Bird.Frame + 1) % 3
	}
}

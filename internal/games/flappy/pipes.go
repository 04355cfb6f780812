package flappy

import (
	"errors"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

// ErrNoPipes is returned when the pipe system runs without any pipes.
var ErrNoPipes = errors.New("flappy: no pipes")

// PipePair is an upper and lower pipe sharing an x. Ys are pipe centres.
// Passed belongs to the upper pipe and guards scoring.
type PipePair struct {
	X      float64
	LowerY float64
	UpperY float64
	Passed bool
}

// RandomPipePosition draws a lower pipe y in -[minOffset, maxOffset) and
// places the upper pipe gap above it.
func RandomPipePosition(rng core.Rand, minOffset, maxOffset, gap float64) (lower, upper float64) {
	lower = -core.FloatRange(rng, minOffset, maxOffset)
	return lower, lower + gap
}

// LowerRect returns the lower pipe's collision box.
func (p PipePair) LowerRect(width, height float64) core.Rect {
	return core.CenteredRect(p.X, p.LowerY, width, height)
}

// UpperRect returns the upper pipe's collision box.
func (p PipePair) UpperRect(width, height float64) core.Rect {
	return core.CenteredRect(p.X, p.UpperY, width, height)
}

// Pipes scrolls the pipes one tick, recycles those that left the screen and
// ends the run if the bird touches one.
//
// The recycle target is the rightmost x before this tick's shift, and one
// random height is drawn per tick whether or not anything recycles.
func Pipes(w *World, dt float64, rng core.Rand) error {
	if len(w.Pipes) == 0 {
		return ErrNoPipes
	}

	rightmost := w.Pipes[0].X
	for _, p := range w.Pipes[1:] {
		rightmost = max(rightmost, p.X)
	}
	newX := rightmost + w.PipeSpacing
	lower, upper := RandomPipePosition(rng, w.Cfg.Pipes.MinOffset, w.Cfg.Pipes.MaxOffset, w.PipeGap)
	outOfScreen := -w.Cfg.Screen.Width/2 - w.Cfg.Pipes.ScreenSlop

	shift := w.PipeSpeed * dt
	for i := range w.Pipes {
		p := &w.Pipes[i]
		p.X -= shift
		if p.X < outOfScreen {
			p.X = newX
			p.LowerY = lower
			p.UpperY = upper
			p.Passed = false
		}
	}

	pw, ph := w.Cfg.Pipes.Width, w.Cfg.Pipes.Height
	bird := core.CenteredRect(w.Cfg.Bird.X, w.Bird.Y, w.Cfg.Bird.Width, w.Cfg.Bird.Height)
	for _, p := range w.Pipes {
		if bird.Intersects(p.UpperRect(pw, ph)) || bird.Intersects(p.LowerRect(pw, ph)) {
			w.gameOver()
		}
	}
	return nil
}

// Score counts each pipe pair once, as soon as it is left of the bird.
func Score(w *World) {
	for i := range w.Pipes {
		p := &w.Pipes[i]
		if !p.Passed && p.X < w.Cfg.Bird.X {
			p.Passed = true
			w.Score++
			w.Events.Sound(SoundPoint)
		}
	}
}

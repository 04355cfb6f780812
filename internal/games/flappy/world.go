package flappy

import (
	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
)

// Sound effect names emitted as core.SoundEvent.
const (
	SoundWing  = "wing"
	SoundHit   = "hit"
	SoundPoint = "point"
)

// State is the run state of a flappy world.
type State int

const (
	NotStarted State = iota
	Active
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Active:
		return "Active"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// World holds everything the update systems read and write.
// Coordinates are centre-origin with y pointing up.
type World struct {
	Cfg config.FlappyConfig

	State State
	Bird  Bird
	Pipes []PipePair
	Score int

	BackgroundX float64
	GroundX     float64

	Blink           core.RepeatingTimer
	PromptVisible   bool // "press space" text
	GameOverVisible bool

	// Current pipe parameters, refreshed from the difficulty manager
	PipeSpeed   float64
	PipeSpacing float64
	PipeGap     float64

	Events core.EventQueue
}

// NewWorld builds a world in the NotStarted state with the initial pipe
// layout. Each pair gets its own random height.
func NewWorld(cfg config.FlappyConfig, rng core.Rand) *World {
	w := &World{
		Cfg:           cfg,
		State:         NotStarted,
		Bird:          NewBird(cfg.Bird.FrameDuration),
		Blink:         core.NewRepeatingTimer(cfg.Scenery.BlinkInterval),
		PromptVisible: true,
		PipeSpeed:     cfg.Pipes.Speed,
		PipeSpacing:   cfg.Pipes.Spacing,
		PipeGap:       cfg.Pipes.Gap,
	}

	w.Pipes = make([]PipePair, cfg.Pipes.Count)
	for i := range w.Pipes {
		lower, upper := RandomPipePosition(rng, cfg.Pipes.MinOffset, cfg.Pipes.MaxOffset, w.PipeGap)
		w.Pipes[i] = PipePair{
			X:      InitialPipeX(cfg, i),
			LowerY: lower,
			UpperY: upper,
		}
	}
	return w
}

// InitialPipeX is the x of the i-th pair in the starting layout.
func InitialPipeX(cfg config.FlappyConfig, i int) float64 {
	return cfg.Pipes.StartX + float64(i)*cfg.Pipes.Spacing
}

// GroundThreshold is the lowest y the bird's centre may reach.
func GroundThreshold(cfg config.FlappyConfig) float64 {
	return cfg.Physics.GroundLevel + cfg.Physics.GroundHeight/2 + cfg.Bird.Height/2
}

// gameOver ends the run. Only the transition plays the hit sound.
func (w *World) gameOver() {
	if w.State == GameOver {
		return
	}
	w.State = GameOver
	w.GameOverVisible = true
	w.Events.Sound(SoundHit)
}

// MoveBackground scrolls the backdrop, wrapping once it has moved a full
// image width.
func MoveBackground(w *World, dt float64) {
	w.BackgroundX -= w.Cfg.Scenery.BackgroundSpeed * dt
	if w.BackgroundX < w.Cfg.Scenery.WrapAt {
		w.BackgroundX = 0
	}
}

// MoveGround scrolls the ground strip.
func MoveGround(w *World, dt float64) {
	w.GroundX -= w.Cfg.Scenery.GroundSpeed * dt
	if w.GroundX < w.Cfg.Scenery.WrapAt {
		w.GroundX = 0
	}
}

// BlinkPrompt toggles the "press space" text on each timer period.
func BlinkPrompt(w *World, dt float64) {
	if w.Blink.Tick(dt) {
		w.PromptVisible = !w.PromptVisible
	}
}

// Start begins a run on a start edge. Coming from GameOver it also puts the
// pipes back in their starting layout. Pipe heights and the score are kept.
func Start(w *World, pressed bool) {
	if !pressed || w.State == Active {
		return
	}

	if w.State == GameOver {
		for i := range w.Pipes {
			w.Pipes[i].X = InitialPipeX(w.Cfg, i)
			w.Pipes[i].Passed = false
		}
	}

	w.State = Active
	w.Bird.Y = 0
	w.Bird.Velocity = 0
	w.Bird.Rotation = 0

	w.Blink.Reset()
	w.PromptVisible = false
	w.GameOverVisible = false
}

// ScoreDigits returns the score as at least three decimal digits.
func ScoreDigits(score int) []int {
	if score < 0 {
		score = 0
	}
	digits := []int{}
	for score > 0 {
		digits = append([]int{score % 10}, digits...)
		score /= 10
	}
	for len(digits) < 3 {
		digits = append([]int{0}, digits...)
	}
	return digits
}

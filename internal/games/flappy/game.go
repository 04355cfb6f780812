// Package flappy implements Flappy Bird as a set of per-tick update systems
// over a World. Space starts a run and flaps.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
	"github.com/vovakirdan/arcade-ports/internal/registry"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▓'
	GroundAltChar = '▒'
	CloudChar     = '~'
)

// birdFrames are the flap animation glyphs, indexed by Bird.Frame.
var birdFrames = [3]rune{'▾', '►', '▴'}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager

	world     *World
	rng       core.Rand
	dt        float64
	paused    bool
	tickCount int
}

// New creates a new Flappy Bird game instance.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithRand(runtime.Dt(), core.NewRand(runtime.Seed))
}

// ResetWithRand restarts the game with a fixed frame delta and rng.
func (g *Game) ResetWithRand(dt float64, rng core.Rand) {
	g.rng = rng
	g.dt = dt
	g.world = NewWorld(g.cfg, rng)
	g.paused = false
	g.tickCount = 0
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
// While a run is active the systems run in order: background, ground,
// animation, gravity, jump, pipes, score. Otherwise the prompt blinks and a
// flap starts a run. Systems stop as soon as the run ends.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	w := g.world

	// Handle pause toggle
	if in.Has(core.ActionPause) && w.State == Active {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	flap := in.Has(core.ActionJump) || in.Player1().Has(core.ActionUp)

	if w.State != Active {
		BlinkPrompt(w, g.dt)
		Start(w, flap)
		return core.StepResult{State: g.State(), Events: w.Events.Drain()}
	}

	w.PipeSpeed = g.difficulty.Speed(g.cfg.Pipes.Speed, w.Score, g.tickCount)
	w.PipeSpacing = g.difficulty.Spacing(g.cfg.Pipes.Spacing, w.Score, g.tickCount)
	w.PipeGap = g.difficulty.GapSize(g.cfg.Pipes.Gap, w.Score, g.tickCount)

	MoveBackground(w, g.dt)
	MoveGround(w, g.dt)
	AnimateBird(w, g.dt)
	Gravity(w, g.dt)

	if w.State == Active {
		Jump(w, flap)
	}

	if w.State == Active {
		if err := Pipes(w, g.dt, g.rng); err != nil {
			return core.StepResult{
				State:  g.State(),
				Events: w.Events.Drain(),
				Err:    fmt.Errorf("flappy: tick %d: %w", g.tickCount, err),
			}
		}
	}

	if w.State == Active {
		Score(w)
	}

	return core.StepResult{State: g.State(), Events: w.Events.Drain()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	ww, wh := g.cfg.Screen.Width, g.cfg.Screen.Height

	// project maps centre-origin, y-up world coordinates to cells
	project := func(x, y float64) (int, int) {
		return dst.Project(x+ww/2, wh/2-y, ww, wh)
	}

	// Clouds scroll with the background
	for i := 0; i < 4; i++ {
		x := -ww/2 + 50 + float64(i)*ww/4 + w.BackgroundX
		cx, cy := project(x, wh/4+float64(i%2)*40)
		dst.DrawText(cx, cy, string([]rune{CloudChar, CloudChar, CloudChar}))
	}

	// Pipes
	groundTop := g.cfg.Physics.GroundLevel + g.cfg.Physics.GroundHeight/2
	_, groundRow := project(0, groundTop)
	for _, p := range w.Pipes {
		upper := p.UpperRect(g.cfg.Pipes.Width, g.cfg.Pipes.Height)
		lower := p.LowerRect(g.cfg.Pipes.Width, g.cfg.Pipes.Height)

		x0, _ := project(upper.X, 0)
		x1, _ := project(upper.Right(), 0)
		width := max(1, x1-x0)

		_, upperBottom := project(0, upper.Y)
		dst.DrawRect(x0, 0, width, upperBottom, PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, upperBottom-1, width, PipeCapTop)

		_, lowerTop := project(0, lower.Bottom())
		dst.DrawRect(x0, lowerTop, width, groundRow-lowerTop, PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, lowerTop, width, PipeCapBottom)
	}

	// Ground, hatched so its scroll is visible
	offset := int(-w.GroundX / 8)
	for y := groundRow; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := GroundChar
			if (x+offset)%4 == 0 {
				ch = GroundAltChar
			}
			dst.SetColored(x, y, ch, core.ColorOrange)
		}
	}

	// Bird
	bx, by := project(g.cfg.Bird.X, w.Bird.Y)
	dst.SetColored(bx, by, birdFrames[w.Bird.Frame%3], core.ColorBrightYellow)

	// Score, one glyph per digit
	digits := ScoreDigits(w.Score)
	score := make([]rune, len(digits))
	for i, d := range digits {
		score[i] = rune('0' + d)
	}
	dst.DrawTextCentered(1, string(score))

	if w.PromptVisible && w.State != Active {
		dst.DrawTextCentered(dst.Height()/2+3, "PRESS SPACE")
	}

	if w.GameOverVisible {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Space to retry", w.Score))
	}

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.State == GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", "Flappy Bird", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyFlappyPreset(&cfg, preset)
		return New(cfg), nil
	})
}

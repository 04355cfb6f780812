// Package pong implements two-player Pong.
// Player 1 controls the left paddle with W/S, Player 2 the right paddle with
// the arrow keys. The match is endless unless a win score is configured.
package pong

import (
	"fmt"

	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
	"github.com/vovakirdan/arcade-ports/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// SoundScore is emitted when either side scores.
const SoundScore = "score"

// Game implements the Pong game logic.
type Game struct {
	cfg        config.PongConfig
	difficulty *config.DifficultyManager

	left  Paddle
	right Paddle
	ball  Ball

	score1 int // left side
	score2 int // right side

	gameOver bool
	paused   bool
	winner   int // 1 or 2

	rng       core.Rand
	tickCount int
	events    core.EventQueue
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithRand(core.NewRand(runtime.Seed))
}

// ResetWithRand restarts the game drawing serves from rng.
func (g *Game) ResetWithRand(rng core.Rand) {
	g.rng = rng

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	p := g.cfg.Paddles
	g.left = NewPaddle(p.LeftX, h/2, p.Width, p.Height)
	g.right = NewPaddle(w-p.RightMargin, h/2, p.Width, p.Height)

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.tickCount = 0
	g.events.Drain()

	g.serve()
}

// serve puts a fresh ball in the middle of the field.
func (g *Game) serve() {
	center := core.NewVec2(g.cfg.Screen.Width/2, g.cfg.Screen.Height/2)
	g.ball = NewBall(center, g.cfg.Ball.Radius, g.rng)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	h := g.cfg.Screen.Height
	speed := g.cfg.Paddles.Speed
	p1, p2 := in.Player1(), in.Player2()

	Movement(&g.left, p1.Has(core.ActionUp), p1.Has(core.ActionDown), speed, h)
	Movement(&g.right, p2.Has(core.ActionUp), p2.Has(core.ActionDown), speed, h)

	ballSpeed := g.difficulty.Speed(g.cfg.Ball.Speed, g.score1+g.score2, g.tickCount)
	MoveBall(&g.ball, ballSpeed, h)
	CollisionWithPaddle(&g.ball, g.left.Rect, g.right.Rect)

	g.checkScore()

	return core.StepResult{State: g.State(), Events: g.events.Drain()}
}

// checkScore awards a point when the ball leaves either side and serves again.
func (g *Game) checkScore() {
	switch {
	case g.ball.Circle.X < 0:
		g.score2++
	case g.ball.Circle.X > g.cfg.Screen.Width:
		g.score1++
	default:
		return
	}

	g.events.Sound(SoundScore)

	if win := g.cfg.Gameplay.WinScore; win > 0 {
		if g.score1 >= win {
			g.gameOver = true
			g.winner = 1
		} else if g.score2 >= win {
			g.gameOver = true
			g.winner = 2
		}
	}

	g.serve()
}

// Scores returns the left and right scores.
func (g *Game) Scores() (int, int) {
	return g.score1, g.score2
}

// Ball returns the current ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddles returns the left and right paddles.
func (g *Game) Paddles() (Paddle, Paddle) {
	return g.left, g.right
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, g.left.Rect)
	g.drawPaddle(dst, g.right.Rect)

	// Draw ball
	bx, by := dst.Project(g.ball.Circle.X, g.ball.Circle.Y, w, h)
	dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)

	// Draw scores
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.score1))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.score2))

	// Draw labels
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-3, 0, "P2")

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := fmt.Sprintf("PLAYER %d WINS!", g.winner)
		dst.DrawMessage(msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
	}
}

// drawPaddle projects a paddle rect onto the screen, at least one cell wide.
func (g *Game) drawPaddle(dst *core.Screen, r core.Rect) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	x0, y0 := dst.Project(r.X, r.Y, w, h)
	x1, y1 := dst.Project(r.Right(), r.Bottom(), w, h)
	dst.DrawRect(x0, y0, max(1, x1-x0), max(1, y1-y0), PaddleChar, core.ColorBrightBlue)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1, // Report left player's score
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", "Pong", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPongPreset(&cfg, preset)
		return New(cfg), nil
	})
}

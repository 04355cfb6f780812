// Package cavern implements a single-screen platformer: the player blows
// orbs that trap wandering robots, and popping a trapped robot scores.
// Robots shoot bolts at the player, and aggressive ones shoot orbs too.
package cavern

import (
	"fmt"

	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
	"github.com/vovakirdan/arcade-ports/internal/registry"
)

// Visual characters for rendering
const (
	BlockChar      = '█'
	PlayerChar     = '@'
	RobotChar      = 'r'
	AggressiveChar = 'R'
	OrbChar        = 'o'
	TrappedOrbChar = '◉'
	BoltChar       = '-'
)

// Robots drop in one at a time, this many ticks apart.
const spawnInterval = 100

// robotSpawnY puts new robots just above the screen.
const robotSpawnY = -30

// Game implements the Cavern game logic.
type Game struct {
	cfg        config.CavernConfig
	difficulty *config.DifficultyManager
	level      *Level

	player Player
	robots []Robot
	orbs   []Orb
	bolts  []Bolt

	score   int
	wave    int
	pending int // robots still to spawn this wave
	spawned int // robots spawned since reset

	gameOver bool
	paused   bool

	rng       core.Rand
	tickCount int
	events    core.EventQueue
}

// New creates a new Cavern game instance.
func New(cfg config.CavernConfig) (*Game, error) {
	level, err := NewLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		level:      level,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cavern"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cavern"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithRand(core.NewRand(runtime.Seed))
}

// ResetWithRand restarts the game drawing from rng.
func (g *Game) ResetWithRand(rng core.Rand) {
	g.rng = rng
	p := g.cfg.Player
	g.player = NewPlayer(p.StartX, p.StartY, p.Lives, p.Invulnerable)
	g.robots = nil
	g.orbs = nil
	g.bolts = nil
	g.score = 0
	g.wave = 1
	g.pending = g.cfg.Robots.Count
	g.spawned = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.events.Drain()
}

// Step advances the game by one tick. Bolts move first, then robots, the
// player and orbs. Bolts fired this tick start moving on the next one.
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

	if err := g.spawnRobot(); err != nil {
		return g.abort(err)
	}

	lives := g.player.Lives
	for i := range g.bolts {
		g.bolts[i].Update(g.cfg.Robots.BoltSpeed, g.cfg.Orbs.Lifetime, g.level, g.orbs, &g.player)
	}
	if g.player.Lives < lives {
		g.events.Sound(SoundOuch)
	}

	ctx := UpdateContext{
		Orbs:            g.orbs,
		Player:          &g.player,
		FireProbability: g.difficulty.Speed(g.cfg.Robots.BaseFireProbability, g.score, g.tickCount),
		Tick:            g.tickCount,
		Level:           g.level,
		Rand:            g.rng,
		Events:          &g.events,
	}
	for i := range g.robots {
		if err := g.robots[i].Update(ctx); err != nil {
			return g.abort(err)
		}
	}

	p1 := in.Player1()
	input := PlayerInput{
		Left:  p1.Has(core.ActionLeft),
		Right: p1.Has(core.ActionRight),
		Jump:  p1.Has(core.ActionJump) || p1.Has(core.ActionUp),
		Fire:  p1.Has(core.ActionFire),
	}
	if orb, blew := g.player.Update(input, g.cfg.Player, g.cfg.Orbs, len(g.orbs), g.level); blew {
		g.orbs = append(g.orbs, orb)
		g.events.Sound(SoundBlow)
	}

	for i := range g.orbs {
		orb := &g.orbs[i]
		orb.Update(g.cfg.Orbs.Speed, g.cfg.Orbs.Lifetime, g.level, g.rng)
		if orb.Popped {
			g.events.Sound(SoundPop)
			if orb.Trapped {
				g.score += g.cfg.Orbs.TrapPoints
			}
		}
	}

	g.sweep()

	if g.player.Lives <= 0 {
		g.gameOver = true
		g.events.Sound(SoundOver)
	} else if g.waveCleared() {
		g.wave++
		g.pending = g.cfg.Robots.Count
		g.events.Sound(SoundLevel)
	}

	events := g.events.Drain()
	for _, e := range events {
		if shot, ok := e.(core.SpawnProjectileEvent); ok {
			g.bolts = append(g.bolts, NewBolt(shot.X, shot.Y, shot.Direction))
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// abort ends a tick early on a failed precondition.
func (g *Game) abort(err error) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events.Drain(),
		Err:    fmt.Errorf("cavern: tick %d: %w", g.tickCount, err),
	}
}

// spawnRobot drops the next pending robot through a random gap in the top
// row. Every AggressiveEvery-th robot is aggressive.
func (g *Game) spawnRobot() error {
	if g.pending <= 0 || (g.tickCount-1)%spawnInterval != 0 {
		return nil
	}

	col, err := core.Choose(g.rng, g.level.OpenTopColumns())
	if err != nil {
		return fmt.Errorf("spawn column: %w", err)
	}
	x := core.Clamp(LevelXOffset+col*BlockSize+BlockSize/2, MinX, MaxX)

	g.spawned++
	kind := Normal
	if every := g.cfg.Robots.AggressiveEvery; every > 0 && g.spawned%every == 0 {
		kind = Aggressive
	}

	g.robots = append(g.robots, NewRobot(x, robotSpawnY, kind, g.rng))
	g.pending--
	return nil
}

// sweep drops spent bolts, trapped robots and popped orbs, keeping order.
func (g *Game) sweep() {
	bolts := g.bolts[:0]
	for _, b := range g.bolts {
		if b.Active {
			bolts = append(bolts, b)
		}
	}
	g.bolts = bolts

	robots := g.robots[:0]
	for _, r := range g.robots {
		if r.Alive {
			robots = append(robots, r)
		}
	}
	g.robots = robots

	orbs := g.orbs[:0]
	for _, o := range g.orbs {
		if !o.Popped {
			orbs = append(orbs, o)
		}
	}
	g.orbs = orbs
}

// waveCleared reports whether every robot of the wave has been spawned and
// popped.
func (g *Game) waveCleared() bool {
	if g.pending > 0 || len(g.robots) > 0 {
		return false
	}
	for _, o := range g.orbs {
		if o.Trapped {
			return false
		}
	}
	return true
}

// Player returns the player.
func (g *Game) Player() Player {
	return g.player
}

// Robots returns the live robots.
func (g *Game) Robots() []Robot {
	return g.robots
}

// Orbs returns the orbs in flight.
func (g *Game) Orbs() []Orb {
	return g.orbs
}

// Bolts returns the bolts in flight.
func (g *Game) Bolts() []Bolt {
	return g.bolts
}

// Wave returns the current wave number, starting at 1.
func (g *Game) Wave() int {
	return g.wave
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	project := func(x, y int) (int, int) {
		return dst.Project(float64(x), float64(y), Width, Height)
	}

	// Level blocks
	for row := 0; row < g.level.Rows(); row++ {
		for col := 0; col < NumCols; col++ {
			if !g.level.Solid(col, row) {
				continue
			}
			x0, y0 := project(LevelXOffset+col*BlockSize, row*BlockSize)
			x1, y1 := project(LevelXOffset+(col+1)*BlockSize, (row+1)*BlockSize)
			dst.DrawRect(x0, y0, max(1, x1-x0), max(1, y1-y0), BlockChar, core.ColorGray)
		}
	}

	for _, o := range g.orbs {
		x, y := project(o.X, o.Y)
		if o.Trapped {
			dst.SetColored(x, y, TrappedOrbChar, core.ColorBrightMagenta)
		} else {
			dst.SetColored(x, y, OrbChar, core.ColorBrightCyan)
		}
	}

	for _, r := range g.robots {
		c := r.Center()
		x, y := project(int(c.X), int(c.Y))
		if r.Type == Aggressive {
			dst.SetColored(x, y, AggressiveChar, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, RobotChar, core.ColorRed)
		}
	}

	for _, b := range g.bolts {
		x, y := project(b.X, b.Y)
		dst.SetColored(x, y, BoltChar, core.ColorBrightYellow)
	}

	// Player blinks while invulnerable
	if g.player.HurtTimer <= 0 || (g.player.HurtTimer/4)%2 == 0 {
		c := g.player.Center()
		x, y := project(int(c.X), int(c.Y))
		dst.SetColored(x, y, PlayerChar, core.ColorBrightGreen)
	}

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Lives: %d  Wave: %d ", g.score, g.player.Lives, g.wave))

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("cavern", "Cavern", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadCavern(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyCavernPreset(&cfg, preset)
		return New(cfg)
	})
}

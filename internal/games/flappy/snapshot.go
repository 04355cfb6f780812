package flappy

// Snapshot contains the complete simulation state of a Flappy Bird game.
type Snapshot struct {
	Tick        int
	State       State
	BirdY       float64
	Velocity    float64
	Rotation    float64
	Frame       int
	Score       int
	Pipes       []PipePair
	BackgroundX float64
	GroundX     float64
	Prompt      bool
	Paused      bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() any {
	w := g.world
	return Snapshot{
		Tick:        g.tickCount,
		State:       w.State,
		BirdY:       w.Bird.Y,
		Velocity:    w.Bird.Velocity,
		Rotation:    w.Bird.Rotation,
		Frame:       w.Bird.Frame,
		Score:       w.Score,
		Pipes:       append([]PipePair(nil), w.Pipes...),
		BackgroundX: w.BackgroundX,
		GroundX:     w.GroundX,
		Prompt:      w.PromptVisible,
		Paused:      g.paused,
	}
}

package pong

// Snapshot contains the complete simulation state of a Pong game.
// Primitive fields only so it digests stably.
type Snapshot struct {
	Tick     int
	BallX    float64
	BallY    float64
	DirX     float64
	DirY     float64
	LeftY    float64
	RightY   float64
	Score1   int
	Score2   int
	GameOver bool
	Winner   int // 0=none, 1=left, 2=right
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() any {
	return Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ball.Circle.X,
		BallY:    g.ball.Circle.Y,
		DirX:     g.ball.Dir.X,
		DirY:     g.ball.Dir.Y,
		LeftY:    g.left.Rect.Y,
		RightY:   g.right.Rect.Y,
		Score1:   g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Paused:   g.paused,
	}
}

package cavern

// Snapshot contains the complete simulation state of a Cavern game.
type Snapshot struct {
	Tick     int
	Score    int
	Wave     int
	Pending  int
	Spawned  int
	Player   Player
	Robots   []Robot
	Orbs     []Orb
	Bolts    []Bolt
	GameOver bool
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() any {
	return Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		Wave:     g.wave,
		Pending:  g.pending,
		Spawned:  g.spawned,
		Player:   g.player,
		Robots:   append([]Robot(nil), g.robots...),
		Orbs:     append([]Orb(nil), g.orbs...),
		Bolts:    append([]Bolt(nil), g.bolts...),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

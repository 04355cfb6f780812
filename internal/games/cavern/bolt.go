package cavern

// Bolt hitbox, anchored at its centre.
const (
	BoltWidth  = 14
	BoltHeight = 6
)

// Bolt is a robot's laser shot.
type Bolt struct {
	Body
	Direction int
	Active    bool
}

// NewBolt creates a bolt centred on (x, y).
func NewBolt(x, y, direction int) Bolt {
	return Bolt{
		Body: Body{
			X: x, Y: y,
			W: BoltWidth, H: BoltHeight,
			Anchor: AnchorCentre,
		},
		Direction: direction,
		Active:    true,
	}
}

// Update moves the bolt and resolves what it hits: a wall, then the first
// orb, then the player.
func (b *Bolt) Update(speed, orbLifetime int, level *Level, orbs []Orb, player *Player) {
	if b.Move(b.Direction, 0, speed, level) {
		b.Active = false
		return
	}

	for i := range orbs {
		if orbs[i].HitTest(b.X, b.Y, orbLifetime) {
			b.Active = false
			return
		}
	}

	if player != nil && player.HitTest(b.X, b.Y) {
		b.Active = false
	}
}

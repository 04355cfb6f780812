package cavern

import "github.com/vovakirdan/arcade-ports/internal/core"

// Orb is a bubble blown by the player. It travels sideways for a few ticks,
// then floats up until it pops. A robot whose centre it covers is trapped.
type Orb struct {
	Body
	Radius      int
	Direction   int
	Timer       int
	TravelTime  int // ticks of sideways travel
	Floating    bool
	Trapped     bool
	TrappedType RobotType
	Popped      bool
}

// NewOrb creates an orb centred on (x, y).
func NewOrb(x, y, direction, radius, travelTime int) Orb {
	return Orb{
		Body: Body{
			X: x, Y: y,
			W: radius * 2, H: radius * 2,
			Anchor: AnchorCentre,
		},
		Radius:     radius,
		Direction:  direction,
		Timer:      -1,
		TravelTime: travelTime,
	}
}

// Circle returns the orb's capture area.
func (o Orb) Circle() core.Circle {
	return core.NewCircle(float64(o.X), float64(o.Y), float64(o.Radius))
}

// Update moves the orb one tick and marks it popped once its lifetime runs
// out or it floats off the top.
func (o *Orb) Update(speed, lifetime int, level *Level, rng core.Rand) {
	o.Timer++

	if o.Floating {
		o.Move(0, -1, core.IntRange(rng, 1, 2), level)
	} else if o.Move(o.Direction, 0, speed, level) {
		o.Floating = true
	}

	if o.Timer == o.TravelTime {
		o.Floating = true
	} else if o.Timer >= lifetime || o.Y <= -40 {
		o.Popped = true
	}
}

// HitTest reports whether a bolt at (x, y) hits the orb. A hit orb pops on
// its next update.
func (o *Orb) HitTest(x, y, lifetime int) bool {
	if !o.CollidePoint(x, y) {
		return false
	}
	o.Timer = lifetime - 1
	return true
}

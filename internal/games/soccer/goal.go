// Package soccer holds the goal targets of the soccer pitch. A goal lights
// up while the ball is within reach along the pitch's long axis, and the
// owning team is credited by whoever keeps score.
package soccer

import "github.com/vovakirdan/arcade-ports/internal/core"

// Pitch size in world units. Goals sit on the centre line of the short axis.
const (
	LevelWidth  = 1000
	LevelHeight = 1400
)

// ActivationRange is the vertical distance within which a goal is active.
const ActivationRange = 500

// Target is anything the ball can be aimed at.
type Target interface {
	// Active reports whether the ball is close enough to the target.
	Active(ball core.Vec2) bool
	// Team is the side the target belongs to.
	Team() uint8
}

// Goal is a team's goal mouth.
type Goal struct {
	team uint8
	Pos  core.Vec2
}

// NewGoal places team 0's goal at the top edge and any other team's at the
// bottom edge.
func NewGoal(team uint8) Goal {
	y := 0.0
	if team != 0 {
		y = LevelHeight
	}
	return Goal{team: team, Pos: core.NewVec2(LevelWidth/2, y)}
}

// Active reports whether the ball is less than ActivationRange away
// vertically. Horizontal distance is ignored.
func (g Goal) Active(ball core.Vec2) bool {
	dy := ball.Y - g.Pos.Y
	if dy < 0 {
		dy = -dy
	}
	return dy < ActivationRange
}

// Team returns the goal's owning side.
func (g Goal) Team() uint8 {
	return g.team
}

// ActiveTargets returns the targets active for the ball, in input order.
func ActiveTargets(targets []Target, ball core.Vec2) []Target {
	var active []Target
	for _, t := range targets {
		if t.Active(ball) {
			active = append(active, t)
		}
	}
	return active
}

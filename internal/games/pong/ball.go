package pong

import "github.com/vovakirdan/arcade-ports/internal/core"

// Ball moves along Dir scaled by a per-tick speed. Dir is not normalized,
// so diagonal serves travel faster than flat ones.
type Ball struct {
	Circle core.Circle
	Dir    core.Vec2
}

// NewBall serves a ball from center with each direction component drawn
// uniformly from [-1, 1), x first.
func NewBall(center core.Vec2, radius float64, rng core.Rand) Ball {
	dx := core.FloatRange(rng, -1, 1)
	dy := core.FloatRange(rng, -1, 1)
	return Ball{
		Circle: core.NewCircle(center.X, center.Y, radius),
		Dir:    core.NewVec2(dx, dy),
	}
}

// MoveBall advances the ball one tick and reflects it off the top and bottom
// edges. The position is not corrected, so the ball may sit past an edge for
// a tick while it turns around.
func MoveBall(b *Ball, speed, screenH float64) {
	b.Circle.X += b.Dir.X * speed
	b.Circle.Y += b.Dir.Y * speed

	if b.Circle.Y > screenH-b.Circle.R || b.Circle.Y < 0 {
		b.Dir.Y = -b.Dir.Y
	}
}

// CollisionWithPaddle reverses the ball's horizontal direction when its box
// (x, y, r, r) overlaps either paddle, touching edges included. Returns true
// on a hit.
func CollisionWithPaddle(b *Ball, left, right core.Rect) bool {
	box := core.NewRect(b.Circle.X, b.Circle.Y, b.Circle.R, b.Circle.R)
	_, hitLeft := box.Intersection(left)
	_, hitRight := box.Intersection(right)
	if hitLeft || hitRight {
		b.Dir.X = -b.Dir.X
		return true
	}
	return false
}

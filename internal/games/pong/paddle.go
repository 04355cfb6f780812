package pong

import "github.com/vovakirdan/arcade-ports/internal/core"

// Paddle is a player-controlled bar. Its rect is in world pixels, y down.
type Paddle struct {
	Rect core.Rect
}

// NewPaddle places a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, w, h float64) Paddle {
	return Paddle{Rect: core.NewRect(x, y, w, h)}
}

// Movement moves the paddle by speed for one tick. Up wins when both keys
// are held. The paddle is kept within [0, screenH - height].
func Movement(p *Paddle, up, down bool, speed, screenH float64) {
	if up {
		p.Rect.Y -= speed
	} else if down {
		p.Rect.Y += speed
	}

	if p.Rect.Y > screenH-p.Rect.H {
		p.Rect.Y = screenH - p.Rect.H
	} else if p.Rect.Y < 0 {
		p.Rect.Y = 0
	}
}

package cavern

import "github.com/vovakirdan/arcade-ports/internal/core"

// Anchor says which point of the bounding box (X, Y) refers to.
type Anchor int

const (
	AnchorCentreBottom Anchor = iota
	AnchorCentre
)

// Body is a positioned box that moves through the level pixel by pixel.
// Positions are integers, as the level collision rules test exact grid
// boundaries.
type Body struct {
	X, Y   int
	W, H   int
	Anchor Anchor

	VelY   int
	Landed bool
}

// Left returns the x of the left edge.
func (b Body) Left() int { return b.X - b.W/2 }

// Top returns the y of the top edge.
func (b Body) Top() int {
	if b.Anchor == AnchorCentre {
		return b.Y - b.H/2
	}
	return b.Y - b.H
}

// Bottom returns the y of the bottom edge.
func (b Body) Bottom() int { return b.Top() + b.H }

// Rect returns the bounding box.
func (b Body) Rect() core.Rect {
	return core.NewRect(float64(b.Left()), float64(b.Top()), float64(b.W), float64(b.H))
}

// Center returns the middle of the bounding box.
func (b Body) Center() core.Vec2 {
	return b.Rect().Center()
}

// CollidePoint reports whether (x, y) lies inside the bounding box.
func (b Body) CollidePoint(x, y int) bool {
	return b.Rect().Contains(float64(x), float64(y))
}

// Move steps up to speed pixels along (dx, dy), one pixel at a time. It
// stops and returns true when the next pixel is outside [MinX, MaxX] or
// enters a block across a grid boundary. Moving up never hits blocks.
func (b *Body) Move(dx, dy, speed int, level *Level) bool {
	x, y := b.X, b.Y
	for i := 0; i < speed; i++ {
		x, y = x+dx, y+dy

		if x < MinX || x > MaxX {
			return true
		}

		crossing := (dy > 0 && core.FloorMod(y, BlockSize) == 0) ||
			(dx > 0 && core.FloorMod(x, BlockSize) == 0) ||
			(dx < 0 && core.FloorMod(x, BlockSize) == BlockSize-1)
		if crossing && level.Block(x, y) {
			return true
		}

		b.X, b.Y = x, y
	}
	return false
}

// ApplyGravity accelerates the body downwards, capped at MaxFallSpeed, and
// moves it. Landing on a block zeroes the velocity. A body that drops below
// the screen reappears at the top.
func (b *Body) ApplyGravity(level *Level) {
	b.VelY = min(b.VelY+1, MaxFallSpeed)

	if b.Move(0, core.Sign(b.VelY), core.Abs(b.VelY), level) {
		b.VelY = 0
		b.Landed = true
	}

	if b.Top() >= Height {
		b.Y = 1
	}
}

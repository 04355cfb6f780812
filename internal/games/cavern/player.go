package cavern

import (
	"github.com/vovakirdan/arcade-ports/internal/config"
	"github.com/vovakirdan/arcade-ports/internal/core"
)

// Player hitbox, anchored at its centre-bottom.
const (
	PlayerWidth  = 40
	PlayerHeight = 60
)

// Orbs are blown from this offset relative to the player's anchor.
const (
	blowOffsetX = 38
	blowOffsetY = 38
)

// PlayerInput is the held state of the player's controls for one tick.
type PlayerInput struct {
	Left, Right bool
	Jump        bool
	Fire        bool
}

// Player is the orb-blowing hero.
type Player struct {
	Body
	Direction    int
	Lives        int
	FireTimer    int
	HurtTimer    int // invulnerable while positive
	Invulnerable int // HurtTimer after a hit
}

// NewPlayer creates a player standing at (x, y).
func NewPlayer(x, y, lives, invulnerable int) Player {
	return Player{
		Body: Body{
			X: x, Y: y,
			W: PlayerWidth, H: PlayerHeight,
			Anchor: AnchorCentreBottom,
		},
		Direction:    1,
		Lives:        lives,
		Invulnerable: invulnerable,
	}
}

// Update moves the player for one tick. It returns the orb to add to the
// level when the player blows one.
func (p *Player) Update(in PlayerInput, tuning config.CavernPlayer, orbs config.CavernOrbs, orbCount int, level *Level) (Orb, bool) {
	p.ApplyGravity(level)

	p.FireTimer--
	if p.HurtTimer > 0 {
		p.HurtTimer--
	}

	dx := 0
	if in.Left {
		dx = -1
	} else if in.Right {
		dx = 1
	}
	if dx != 0 {
		p.Direction = dx
		// Blowing roots the player for the first half of the cooldown
		if p.FireTimer < tuning.FireCooldown/2 {
			p.Move(dx, 0, tuning.Speed, level)
		}
	}

	if in.Jump && p.VelY == 0 && p.Landed {
		p.VelY = tuning.JumpVelocity
		p.Landed = false
	}

	if in.Fire && p.FireTimer <= 0 && orbCount < tuning.MaxOrbs {
		p.FireTimer = tuning.FireCooldown
		x := core.Clamp(p.X+p.Direction*blowOffsetX, MinX, MaxX)
		return NewOrb(x, p.Y-blowOffsetY, p.Direction, orbs.Radius, orbs.TravelTime), true
	}
	return Orb{}, false
}

// HitTest reports whether a bolt at (x, y) hurts the player. Hits while
// invulnerable pass through.
func (p *Player) HitTest(x, y int) bool {
	if p.Lives <= 0 || p.HurtTimer > 0 || !p.CollidePoint(x, y) {
		return false
	}
	p.Lives--
	p.HurtTimer = p.Invulnerable
	return true
}

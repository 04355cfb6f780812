package cavern

import (
	"fmt"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

// Sound effect names emitted as core.SoundEvent.
const (
	SoundLaser = "laser"
	SoundTrap  = "trap"
	SoundPop   = "pop"
	SoundBlow  = "blow"
	SoundOuch  = "ouch"
	SoundLevel = "level"
	SoundOver  = "over"
)

// Robot hitbox, anchored at its centre-bottom.
const (
	RobotWidth  = 50
	RobotHeight = 60
)

// Robot AI tuning.
const (
	aggressiveFireDelay = 24  // fire timer before an aggressive robot may shoot at orbs
	fireReady           = 12  // fire timer before a robot may shoot at the player
	boltFrame           = 8   // fire timer value at which the bolt leaves the gun
	orbSightRange       = 200 // max horizontal distance to a targeted orb
	sameHeightFactor    = 10  // fire probability boost when level with the player
	initialFireTimer    = 100
	minChangeDirTime    = 100
	maxChangeDirTime    = 250
	boltOffsetX         = 20
	boltOffsetY         = 38
)

// RobotType selects behaviour and sprite bank.
type RobotType int

const (
	Aggressive RobotType = iota
	Normal
)

// Val is the sprite bank index of the type.
func (t RobotType) Val() int {
	return int(t)
}

func (t RobotType) String() string {
	if t == Aggressive {
		return "aggressive"
	}
	return "normal"
}

// Robot is an enemy that wanders, shoots at the player and, when aggressive,
// shoots the player's orbs.
type Robot struct {
	Body
	Type           RobotType
	Speed          int
	Direction      int
	Alive          bool
	ChangeDirTimer int
	FireTimer      int
	Sprite         int
}

// NewRobot creates a robot at (x, y) with a random walking speed of 1 to 3.
func NewRobot(x, y int, t RobotType, rng core.Rand) Robot {
	return Robot{
		Body: Body{
			X: x, Y: y,
			W: RobotWidth, H: RobotHeight,
			Anchor: AnchorCentreBottom,
		},
		Type:      t,
		Speed:     core.IntRange(rng, 1, 3),
		Direction: 1,
		Alive:     true,
		FireTimer: initialFireTimer,
	}
}

// UpdateContext is everything a robot reads or changes while updating.
type UpdateContext struct {
	Orbs            []Orb   // updated in place when the robot is trapped
	Player          *Player // nil when there is no player
	FireProbability float64
	Tick            int // global tick, non-negative
	Level           *Level
	Rand            core.Rand
	Events          *core.EventQueue
}

// Update runs one tick of robot behaviour.
func (r *Robot) Update(ctx UpdateContext) error {
	r.ApplyGravity(ctx.Level)

	r.ChangeDirTimer--
	r.FireTimer++

	// Turn around at walls
	if r.Move(r.Direction, 0, r.Speed, ctx.Level) {
		r.ChangeDirTimer = 0
	}

	if r.ChangeDirTimer <= 0 {
		// With a player around, two of three candidates lead towards them
		directions := []int{-1, 1}
		if ctx.Player != nil {
			directions = append(directions, core.Sign(ctx.Player.X-r.X))
		}
		dir, err := core.Choose(ctx.Rand, directions)
		if err != nil {
			return fmt.Errorf("cavern: robot direction: %w", err)
		}
		r.Direction = dir
		r.ChangeDirTimer = core.IntRange(ctx.Rand, minChangeDirTime, maxChangeDirTime)
	}

	if r.Type == Aggressive && r.FireTimer >= aggressiveFireDelay {
		for _, orb := range ctx.Orbs {
			if orb.Y >= r.Top() && orb.Y < r.Bottom() && core.Abs(orb.X-r.X) < orbSightRange {
				r.Direction = core.Sign(orb.X - r.X)
				r.FireTimer = 0
				break
			}
		}
	}

	if r.FireTimer >= fireReady {
		p := ctx.FireProbability
		if pl := ctx.Player; pl != nil && r.Top() < pl.Bottom() && r.Bottom() > pl.Top() {
			p *= sameHeightFactor
		}
		if ctx.Rand.Float64() < p {
			r.FireTimer = 0
			ctx.Events.Sound(SoundLaser)
		}
	} else if r.FireTimer == boltFrame {
		ctx.Events.Push(core.SpawnProjectileEvent{
			X:         r.X + r.Direction*boltOffsetX,
			Y:         r.Y - boltOffsetY,
			Direction: r.Direction,
		})
	}

	// First free orb holding our anchor (centre-bottom) traps us
	for i := range ctx.Orbs {
		orb := &ctx.Orbs[i]
		if !orb.Trapped && orb.Circle().Contains(float64(r.X), float64(r.Y)) {
			r.Alive = false
			orb.Floating = true
			orb.Trapped = true
			orb.TrappedType = r.Type
			ctx.Events.Sound(SoundTrap)
			break
		}
	}

	r.Sprite = SpriteIndex(r.Type, r.Direction, r.FireTimer, ctx.Tick)
	return nil
}

// SpriteIndex selects the robot animation frame: a 16-frame bank per type,
// the right-facing half of it, then either the firing frames or a 4-step
// walk cycle driven by the global tick.
func SpriteIndex(t RobotType, direction, fireTimer, tick int) int {
	idx := 16 * t.Val()
	if direction > 0 {
		idx += 8
	}
	if fireTimer < fireReady {
		idx += 5 + fireTimer/4
	} else {
		idx += 1 + (tick/4)%4
	}
	return idx
}

package cavern

import (
	"testing"

	"github.com/vovakirdan/arcade-ports/internal/config"
)

func TestOrbLifecycle(t *testing.T) {
	l := openLevel(t)
	o := NewOrb(400, 200, 1, 32, 6)

	for i := 0; i < 6; i++ {
		o.Update(4, 20, l, fixedRand{})
	}
	if o.Floating || o.X != 424 {
		t.Fatalf("after travel: X = %d, Floating = %v, expected 424 and still travelling", o.X, o.Floating)
	}

	o.Update(4, 20, l, fixedRand{})
	if !o.Floating || o.X != 428 || o.Y != 200 {
		t.Fatalf("orb = %+v, expected floating at (428, 200)", o)
	}

	o.Update(4, 20, l, fixedRand{})
	if o.X != 428 || o.Y != 199 {
		t.Errorf("floating orb at (%d, %d), expected (428, 199)", o.X, o.Y)
	}

	for o.Timer < 19 {
		o.Update(4, 20, l, fixedRand{})
	}
	if o.Popped {
		t.Fatal("orb popped before its lifetime")
	}
	o.Update(4, 20, l, fixedRand{})
	if !o.Popped {
		t.Error("orb should pop at the end of its lifetime")
	}
}

func TestOrbFloatsAtWall(t *testing.T) {
	o := NewOrb(MaxX-2, 200, 1, 32, 6)
	o.Update(4, 250, openLevel(t), fixedRand{})
	if !o.Floating || o.X != MaxX {
		t.Errorf("orb = %+v, expected floating at the wall", o)
	}
}

func TestOrbPopsOffTop(t *testing.T) {
	o := NewOrb(400, -39, 1, 32, 6)
	o.Floating = true
	o.Timer = 50
	o.Update(4, 250, openLevel(t), fixedRand{})
	if !o.Popped {
		t.Errorf("orb at y=%d should pop", o.Y)
	}
}

func TestOrbHitTest(t *testing.T) {
	o := NewOrb(400, 200, 1, 32, 6)
	if o.HitTest(500, 200, 20) {
		t.Error("HitTest() outside the orb should miss")
	}
	if !o.HitTest(410, 205, 20) {
		t.Fatal("HitTest() inside the orb should hit")
	}
	if o.Timer != 19 {
		t.Errorf("Timer = %d, expected 19", o.Timer)
	}
	o.Update(4, 20, openLevel(t), fixedRand{})
	if !o.Popped {
		t.Error("hit orb should pop on its next update")
	}
}

func TestBoltUpdate(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		b := NewBolt(MaxX-3, 200, 1)
		b.Update(7, 250, openLevel(t), nil, nil)
		if b.Active {
			t.Error("bolt should stop at the wall")
		}
	})

	t.Run("first orb before player", func(t *testing.T) {
		b := NewBolt(300, 200, 1)
		orbs := []Orb{NewOrb(310, 200, 1, 32, 6), NewOrb(315, 200, 1, 32, 6)}
		player := NewPlayer(310, 230, 3, 100)

		b.Update(7, 250, openLevel(t), orbs, &player)
		if b.Active {
			t.Error("bolt should stop on the orb")
		}
		if orbs[0].Timer != 249 {
			t.Errorf("first orb Timer = %d, expected 249", orbs[0].Timer)
		}
		if orbs[1].Timer != -1 {
			t.Errorf("second orb Timer = %d, expected untouched", orbs[1].Timer)
		}
		if player.Lives != 3 {
			t.Errorf("Lives = %d, orb should shield the player", player.Lives)
		}
	})

	t.Run("player", func(t *testing.T) {
		player := NewPlayer(310, 230, 3, 100)

		b := NewBolt(300, 200, 1)
		b.Update(7, 250, openLevel(t), nil, &player)
		if b.Active || player.Lives != 2 || player.HurtTimer != 100 {
			t.Errorf("bolt active = %v, lives = %d, hurt = %d", b.Active, player.Lives, player.HurtTimer)
		}

		// Invulnerable now, the next bolt passes through
		b = NewBolt(300, 200, 1)
		b.Update(7, 250, openLevel(t), nil, &player)
		if !b.Active || player.Lives != 2 {
			t.Errorf("bolt active = %v, lives = %d, expected a miss", b.Active, player.Lives)
		}
	})

	t.Run("miss", func(t *testing.T) {
		b := NewBolt(100, 200, 1)
		player := NewPlayer(400, 249, 3, 100)
		b.Update(7, 250, openLevel(t), nil, &player)
		if !b.Active || b.X != 107 {
			t.Errorf("bolt = %+v, expected active at x=107", b)
		}
	})
}

func TestPlayerJump(t *testing.T) {
	cfg := config.DefaultCavernConfig()
	l := floorLevel(t)
	p := NewPlayer(400, 249, 3, 100)

	p.Update(PlayerInput{}, cfg.Player, cfg.Orbs, 0, l)
	if !p.Landed || p.VelY != 0 {
		t.Fatalf("player = %+v, expected landed", p)
	}

	p.Update(PlayerInput{Jump: true}, cfg.Player, cfg.Orbs, 0, l)
	if p.VelY != cfg.Player.JumpVelocity || p.Landed {
		t.Fatalf("VelY = %d, Landed = %v, expected a jump", p.VelY, p.Landed)
	}

	// No double jump while airborne
	p.Update(PlayerInput{Jump: true}, cfg.Player, cfg.Orbs, 0, l)
	if p.VelY != cfg.Player.JumpVelocity+1 || p.Y != 249+cfg.Player.JumpVelocity+1 {
		t.Errorf("VelY = %d, Y = %d, expected free flight", p.VelY, p.Y)
	}
}

func TestPlayerWalk(t *testing.T) {
	cfg := config.DefaultCavernConfig()
	l := floorLevel(t)

	tests := []struct {
		name      string
		in        PlayerInput
		expectX   int
		expectDir int
	}{
		{"right", PlayerInput{Right: true}, 404, 1},
		{"left", PlayerInput{Left: true}, 396, -1},
		{"left wins", PlayerInput{Left: true, Right: true}, 396, -1},
		{"idle", PlayerInput{}, 400, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(400, 249, 3, 100)
			p.Update(tc.in, cfg.Player, cfg.Orbs, 0, l)
			if p.X != tc.expectX || p.Direction != tc.expectDir {
				t.Errorf("X = %d, Direction = %d, expected %d, %d", p.X, p.Direction, tc.expectX, tc.expectDir)
			}
		})
	}
}

func TestPlayerBlowOrb(t *testing.T) {
	cfg := config.DefaultCavernConfig()
	l := floorLevel(t)
	p := NewPlayer(400, 249, 3, 100)

	orb, ok := p.Update(PlayerInput{Fire: true}, cfg.Player, cfg.Orbs, 0, l)
	if !ok {
		t.Fatal("player should blow an orb")
	}
	if orb.X != 438 || orb.Y != 211 || orb.Direction != 1 || orb.Radius != cfg.Orbs.Radius {
		t.Errorf("orb = %+v, expected at (438, 211) heading right", orb)
	}
	if p.FireTimer != cfg.Player.FireCooldown {
		t.Errorf("FireTimer = %d, expected %d", p.FireTimer, cfg.Player.FireCooldown)
	}

	if _, ok := p.Update(PlayerInput{Fire: true}, cfg.Player, cfg.Orbs, 1, l); ok {
		t.Error("player should not blow during the cooldown")
	}

	// Rooted for the first half of the cooldown
	for i := 0; i < 9; i++ {
		p.Update(PlayerInput{Right: true}, cfg.Player, cfg.Orbs, 1, l)
	}
	if p.X != 400 {
		t.Fatalf("X = %d, player should not move while blowing", p.X)
	}
	p.Update(PlayerInput{Right: true}, cfg.Player, cfg.Orbs, 1, l)
	if p.X != 404 {
		t.Errorf("X = %d, expected the player to walk again", p.X)
	}
}

func TestPlayerMaxOrbs(t *testing.T) {
	cfg := config.DefaultCavernConfig()
	p := NewPlayer(400, 249, 3, 100)
	if _, ok := p.Update(PlayerInput{Fire: true}, cfg.Player, cfg.Orbs, cfg.Player.MaxOrbs, floorLevel(t)); ok {
		t.Error("player should not blow past the orb limit")
	}
}

func TestPlayerOrbClampedToWall(t *testing.T) {
	cfg := config.DefaultCavernConfig()
	p := NewPlayer(MaxX, 249, 3, 100)
	orb, ok := p.Update(PlayerInput{Fire: true}, cfg.Player, cfg.Orbs, 0, floorLevel(t))
	if !ok || orb.X != MaxX {
		t.Errorf("orb X = %d, expected clamped to %d", orb.X, MaxX)
	}
}

func TestPlayerHitTest(t *testing.T) {
	p := NewPlayer(400, 249, 3, 100)

	if p.HitTest(100, 100) {
		t.Error("HitTest() outside the player should miss")
	}
	if !p.HitTest(400, 220) || p.Lives != 2 || p.HurtTimer != 100 {
		t.Fatalf("lives = %d, hurt = %d, expected a hit", p.Lives, p.HurtTimer)
	}
	if p.HitTest(400, 220) {
		t.Error("invulnerable player should not be hit")
	}

	p.HurtTimer = 0
	p.Lives = 0
	if p.HitTest(400, 220) {
		t.Error("player without lives should not be hit")
	}
}

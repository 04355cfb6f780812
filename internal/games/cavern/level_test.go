package cavern

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-ports/internal/config"
)

func TestNewLevel(t *testing.T) {
	if _, err := NewLevel(nil); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("NewLevel(nil) error = %v, expected ErrEmptyLevel", err)
	}

	if _, err := NewLevel(make([]string, NumRows+1)); err == nil {
		t.Error("NewLevel() should reject a level taller than the grid")
	}

	l, err := NewLevel(config.DefaultCavernLevel)
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	if l.Rows() != NumRows {
		t.Fatalf("Rows() = %d, expected %d", l.Rows(), NumRows)
	}
	for col := 0; col < NumCols; col++ {
		if l.Solid(col, NumRows-1) != l.Solid(col, 0) {
			t.Errorf("col %d: bottom row should repeat the top row", col)
		}
	}
}

func TestLevelBlock(t *testing.T) {
	l, err := NewLevel(config.DefaultCavernLevel)
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside platform", 200, 230, true},
		{"platform edge", 125, 225, true},
		{"gap beside platform", 124, 230, false},
		{"open air", 400, 100, false},
		{"top row never blocks", 60, 10, false},
		{"above screen", 60, -10, false},
		{"left of grid", 10, 330, false},
		{"bottom row", 60, 440, true},
		{"below grid", 60, 460, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Block(tc.x, tc.y); got != tc.expected {
				t.Errorf("Block(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestOpenTopColumns(t *testing.T) {
	l, err := NewLevel(config.DefaultCavernLevel)
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}

	cols := l.OpenTopColumns()
	expected := []int{5, 6, 7, 8, 9, 18, 19, 20, 21, 22}
	if len(cols) != len(expected) {
		t.Fatalf("OpenTopColumns() = %v, expected %v", cols, expected)
	}
	for i := range expected {
		if cols[i] != expected[i] {
			t.Errorf("OpenTopColumns()[%d] = %d, expected %d", i, cols[i], expected[i])
		}
	}
}

func TestBodyMove(t *testing.T) {
	// One block at col 10, row 5: x 300..324, y 125..149
	l, err := NewLevel([]string{"", "", "", "", "", "          X"})
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}

	tests := []struct {
		name      string
		x, y      int
		dx, dy    int
		speed     int
		expectX   int
		expectY   int
		expectHit bool
	}{
		{"free walk", 200, 140, 1, 0, 4, 204, 140, false},
		{"right edge", MaxX - 2, 140, 1, 0, 5, MaxX, 140, true},
		{"left edge", MinX + 1, 140, -1, 0, 3, MinX, 140, true},
		{"block on the right", 290, 140, 1, 0, 20, 299, 140, true},
		{"block on the left", 335, 140, -1, 0, 20, 325, 140, true},
		{"land on block", 310, 120, 0, 1, 10, 310, 124, true},
		{"jump through block", 310, 160, 0, -1, 20, 310, 140, false},
		{"fall past block", 340, 120, 0, 1, 10, 340, 130, false},
		{"zero speed", 200, 140, 1, 0, 0, 200, 140, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{X: tc.x, Y: tc.y, W: 10, H: 10}
			hit := b.Move(tc.dx, tc.dy, tc.speed, l)
			if hit != tc.expectHit {
				t.Errorf("Move() = %v, expected %v", hit, tc.expectHit)
			}
			if b.X != tc.expectX || b.Y != tc.expectY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", b.X, b.Y, tc.expectX, tc.expectY)
			}
		})
	}
}

func TestApplyGravity(t *testing.T) {
	t.Run("accelerates to terminal speed", func(t *testing.T) {
		b := Body{X: 400, Y: 0, W: 10, H: 10}
		l := openLevel(t)
		for i := 1; i <= 15; i++ {
			b.ApplyGravity(l)
			if want := min(i, MaxFallSpeed); b.VelY != want {
				t.Fatalf("tick %d: VelY = %d, expected %d", i, b.VelY, want)
			}
		}
	})

	t.Run("lands on floor", func(t *testing.T) {
		b := Body{X: 400, Y: 240, W: 10, H: 10, VelY: 9}
		b.ApplyGravity(floorLevel(t))
		if b.Y != 249 || b.VelY != 0 || !b.Landed {
			t.Errorf("body = %+v, expected landed at y=249", b)
		}
	})

	t.Run("wraps to the top", func(t *testing.T) {
		b := Body{X: 400, Y: 535, W: 10, H: 60, VelY: 9}
		b.ApplyGravity(openLevel(t))
		if b.Y != 1 {
			t.Errorf("Y = %d, expected 1 after falling off the bottom", b.Y)
		}
	})

	t.Run("rising does not land", func(t *testing.T) {
		b := Body{X: 400, Y: 300, W: 10, H: 10, VelY: -16}
		b.ApplyGravity(floorLevel(t))
		if b.Y != 285 || b.Landed {
			t.Errorf("body = %+v, expected y=285 in the air", b)
		}
	})
}

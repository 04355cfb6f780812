package soccer

import (
	"testing"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

func TestNewGoal(t *testing.T) {
	tests := []struct {
		team     uint8
		expected core.Vec2
	}{
		{0, core.NewVec2(500, 0)},
		{1, core.NewVec2(500, 1400)},
		{7, core.NewVec2(500, 1400)},
	}

	for _, tc := range tests {
		g := NewGoal(tc.team)
		if g.Pos != tc.expected {
			t.Errorf("NewGoal(%d).Pos = %v, expected %v", tc.team, g.Pos, tc.expected)
		}
		if g.Team() != tc.team {
			t.Errorf("NewGoal(%d).Team() = %d", tc.team, g.Team())
		}
	}
}

func TestGoalActive(t *testing.T) {
	top := NewGoal(0)
	bottom := NewGoal(1)

	tests := []struct {
		name     string
		goal     Goal
		ball     core.Vec2
		expected bool
	}{
		{"on the goal", top, core.NewVec2(500, 0), true},
		{"just inside", top, core.NewVec2(500, 499.9), true},
		{"at the threshold", top, core.NewVec2(500, 500), false},
		{"far away", top, core.NewVec2(500, 1200), false},
		{"above the goal", bottom, core.NewVec2(500, 1000), true},
		{"beyond the line", bottom, core.NewVec2(500, 1850), true},
		{"x does not matter", bottom, core.NewVec2(-9000, 1300), true},
		{"midfield", bottom, core.NewVec2(500, 700), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.goal.Active(tc.ball); got != tc.expected {
				t.Errorf("Active(%v) = %v, expected %v", tc.ball, got, tc.expected)
			}
		})
	}
}

func TestActiveTargets(t *testing.T) {
	targets := []Target{NewGoal(0), NewGoal(1)}

	tests := []struct {
		name     string
		ball     core.Vec2
		expected []uint8
	}{
		{"near top", core.NewVec2(500, 100), []uint8{0}},
		{"near bottom", core.NewVec2(500, 1300), []uint8{1}},
		{"midfield", core.NewVec2(500, 700), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ActiveTargets(targets, tc.ball)
			if len(got) != len(tc.expected) {
				t.Fatalf("ActiveTargets() returned %d targets, expected %d", len(got), len(tc.expected))
			}
			for i, target := range got {
				if target.Team() != tc.expected[i] {
					t.Errorf("target %d team = %d, expected %d", i, target.Team(), tc.expected[i])
				}
			}
		})
	}

	// A short pitch puts both goals in range, order is kept
	both := ActiveTargets([]Target{Goal{team: 1, Pos: core.NewVec2(0, 300)}, NewGoal(0)}, core.NewVec2(0, 150))
	if len(both) != 2 || both[0].Team() != 1 || both[1].Team() != 0 {
		t.Errorf("ActiveTargets() = %v, expected both goals in input order", both)
	}
}

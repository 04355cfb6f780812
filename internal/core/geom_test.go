package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	overlap, ok := a.Intersection(NewRect(5, 5, 10, 10))
	if !ok {
		t.Fatal("overlapping rects should intersect")
	}
	if overlap != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersection() = %+v, expected 5,5 5x5", overlap)
	}

	// Touching edges count, unlike Intersects
	if _, ok := a.Intersection(NewRect(10, 0, 5, 5)); !ok {
		t.Error("touching rects should produce a zero-width intersection")
	}
	if _, ok := a.Intersection(NewRect(10.5, 0, 5, 5)); ok {
		t.Error("separated rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if c := r.Center(); c != NewVec2(15, 17.5) {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}

	centered := CenteredRect(0, 0, 34, 24)
	if centered.X != -17 || centered.Y != -12 {
		t.Errorf("CenteredRect origin = (%v, %v), expected (-17, -12)", centered.X, centered.Y)
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(100, 100, 32)

	if !c.Contains(100, 100) {
		t.Error("center should be inside")
	}
	if !c.Contains(120, 120) {
		t.Error("(120, 120) is ~28.3 away and should be inside")
	}
	if c.Contains(132, 100) {
		t.Error("a point exactly on the boundary is outside")
	}
	if c.Contains(100, 140) {
		t.Error("(100, 140) should be outside")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsAndSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign returned a wrong value")
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int
		div, mod int
	}{
		{7, 25, 0, 7},
		{50, 25, 2, 0},
		{-1, 25, -1, 24},
		{-25, 25, -1, 0},
		{-26, 25, -2, 24},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.div {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.div)
		}
		if got := FloorMod(tc.a, tc.b); got != tc.mod {
			t.Errorf("FloorMod(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.mod)
		}
	}
}

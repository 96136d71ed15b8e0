package core

import "testing"

func TestBoxClosestPoint(t *testing.T) {
	b := NewBox(V(0, 0), V(20, 20))

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside", V(3, -4), V(3, -4)},
		{"left of box", V(-25, 2), V(-10, 2)},
		{"above right corner", V(30, 40), V(10, 10)},
		{"below", V(1, -50), V(1, -10)},
		{"on edge", V(10, 0), V(10, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.ClosestPoint(tc.p)
			if got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsBox(t *testing.T) {
	b := NewBox(V(20, 0), V(20, 20)) // spans x 10..30, y -10..10

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"far left", Circle{Center: V(-5, 0), Radius: 10}, false},
		{"touching left edge", Circle{Center: V(0, 0), Radius: 10}, true},
		{"overlapping", Circle{Center: V(5, 3), Radius: 10}, true},
		{"center inside", Circle{Center: V(20, 0), Radius: 1}, true},
		{"near corner but outside", Circle{Center: V(2, 18), Radius: 10}, false},
		{"near corner inside radius", Circle{Center: V(5, 15), Radius: 10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsBox(b); got != tc.expected {
				t.Errorf("IntersectsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxExtents(t *testing.T) {
	b := NewBox(V(5, -5), V(10, 4))

	if b.Min() != V(0, -7) {
		t.Errorf("Min() = %v, expected (0, -7)", b.Min())
	}
	if b.Max() != V(10, -3) {
		t.Errorf("Max() = %v, expected (10, -3)", b.Max())
	}
	if b.Size() != V(10, 4) {
		t.Errorf("Size() = %v, expected (10, 4)", b.Size())
	}
}

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if got := a.Add(V(1, 1)).Sub(V(2, 2)); got != V(2, 3) {
		t.Errorf("Add/Sub = %v, expected (2, 3)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale = %v, expected (1.5, 2)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
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
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
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

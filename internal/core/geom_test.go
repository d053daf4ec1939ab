package core

import "testing"

func TestBoxAround(t *testing.T) {
	b := BoxAround(240, 550, 95, 24)

	if b.X != 192.5 || b.Y != 538 {
		t.Errorf("BoxAround top-left = (%v, %v), expected (192.5, 538)", b.X, b.Y)
	}
	if b.Right() != 287.5 || b.Bottom() != 562 {
		t.Errorf("BoxAround bottom-right = (%v, %v), expected (287.5, 562)", b.Right(), b.Bottom())
	}

	cx, cy := b.Center()
	if cx != 240 || cy != 550 {
		t.Errorf("Center() = (%v, %v), expected (240, 550)", cx, cy)
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"apart vertically", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, false},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsX(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	if !a.OverlapsX(Box{X: 5, Y: 100, W: 10, H: 1}) {
		t.Error("OverlapsX should ignore vertical distance")
	}
	if a.OverlapsX(Box{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("OverlapsX should not count touching edges")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

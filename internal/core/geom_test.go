package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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

func TestRGBHex(t *testing.T) {
	if got := NewRGB(255, 0, 16).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, expected #ff0010", got)
	}
	if got := (RGB{}).Hex(); got != "" {
		t.Errorf("unset Hex() = %q, expected empty", got)
	}
}

func TestRGBLuminance(t *testing.T) {
	if NewRGB(255, 255, 255).Luminance() != 255 {
		t.Error("white should have full luminance")
	}
	if NewRGB(0, 0, 0).Luminance() != 0 {
		t.Error("black should have zero luminance")
	}
	if NewRGB(0, 0, 255).Luminance() >= NewRGB(0, 255, 0).Luminance() {
		t.Error("blue should be darker than green")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.Color = 2
	f.Click = &Point{X: 1, Y: 2}
	if !f.Has(ActionUndo) || f.Has(ActionTranspose) {
		t.Error("Has() should report only set actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should drop actions, color pick and click")
	}

	var zero InputFrame
	if zero.Has(ActionUndo) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero frame should allocate")
	}
}

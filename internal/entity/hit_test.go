package entity

import "testing"

func TestHit(t *testing.T) {
	d := NewDuck()
	d.X, d.Y = 100, 200
	r := d.Bounds(16, 11, 4)
	if r.W != 64 || r.H != 44 {
		t.Fatalf("Expected 64x44 box, got %vx%v", r.W, r.H)
	}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 120, 220, true},
		{"top-left corner", 100, 200, true},
		{"bottom-right corner", 164, 244, true},
		{"left of box", 99.9, 220, false},
		{"below box", 120, 244.1, false},
		{"far away", 0, 0, false},
	}
	for _, tt := range tests {
		if got := Hit(tt.x, tt.y, r); got != tt.expect {
			t.Errorf("%s: Hit(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.expect)
		}
	}
}

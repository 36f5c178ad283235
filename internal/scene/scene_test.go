package scene

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewPlacesClouds(t *testing.T) {
	s := New(40, rand.New(rand.NewSource(1)))
	if len(s.Clouds) != len(cloudStarts) {
		t.Fatalf("Expected %d clouds, got %d", len(cloudStarts), len(s.Clouds))
	}
	for i, c := range s.Clouds {
		if c.X != cloudStarts[i] {
			t.Errorf("Cloud %d: expected x=%v, got %v", i, cloudStarts[i], c.X)
		}
		if c.Y < cloudY-cloudJitter || c.Y > cloudY+cloudJitter {
			t.Errorf("Cloud %d: y=%v outside jitter range", i, c.Y)
		}
	}
}

func TestCloudsDriftAndWrap(t *testing.T) {
	s := New(0, rand.New(rand.NewSource(1)))
	s.Clouds = []Cloud{{X: 10, Y: cloudY}, {X: cloudExitX + 0.1, Y: cloudY}}
	s.Update()
	if math.Abs(s.Clouds[0].X-(10-cloudDrift)) > 1e-9 {
		t.Errorf("Expected drift to %v, got %v", 10-cloudDrift, s.Clouds[0].X)
	}
	if s.Clouds[1].X != cloudEnterX {
		t.Errorf("Expected wrapped cloud at %v, got %v", float64(cloudEnterX), s.Clouds[1].X)
	}
}

package entity

import (
	"math"
	"math/rand"
	"testing"

	"duckdash/internal/settings"
)

type fixedJitter int

func (f fixedJitter) Intn(int) int { return int(f) }

func TestNewDuckInitialState(t *testing.T) {
	d := NewDuck()
	if d.X != StartX || d.Y != BaseY {
		t.Errorf("Expected start (%d, %d), got (%v, %v)", StartX, BaseY, d.X, d.Y)
	}
	if d.Speed != settings.Slow {
		t.Errorf("Expected slow label, got %v", d.Speed)
	}
	if d.Motion.ExtraVX != 0 || d.Motion.VY != BobSpeed || d.Motion.VYDir != 1 {
		t.Errorf("Unexpected initial motion: %+v", d.Motion)
	}
}

func TestUpdateMovesByBaseSpeed(t *testing.T) {
	tests := []struct {
		diff  settings.Difficulty
		label settings.SpeedLabel
		want  float64
	}{
		{settings.Easy, settings.Slow, 1},
		{settings.Hard, settings.Fast, 5},
	}
	for _, tt := range tests {
		d := NewDuck()
		d.Speed = tt.label
		x := d.X
		d.Update(settings.Speed(tt.diff, d.Speed), fixedJitter(0))
		if got := d.X - x; got != tt.want {
			t.Errorf("%v/%v: expected dx %v, got %v", tt.diff, tt.label, tt.want, got)
		}
	}
}

func TestExtraVelocityDecays(t *testing.T) {
	d := NewDuck()
	d.Motion.ExtraVX = 1
	x := d.X
	d.Update(2, fixedJitter(0))
	// The boost applied this tick is the pre-decay value.
	if got := d.X - x; got != 3 {
		t.Errorf("Expected dx 3, got %v", got)
	}
	if math.Abs(d.Motion.ExtraVX-Decay) > 1e-12 {
		t.Errorf("Expected extra velocity %v, got %v", Decay, d.Motion.ExtraVX)
	}
	for i := 0; i < 500; i++ {
		d.Update(0, fixedJitter(0))
	}
	if d.Motion.ExtraVX > 1e-6 {
		t.Errorf("Expected extra velocity near zero, got %v", d.Motion.ExtraVX)
	}
}

func TestBobbingStaysInBand(t *testing.T) {
	d := NewDuck()
	rng := rand.New(rand.NewSource(1))
	slack := BobSpeed + 1e-9
	minY, maxY := d.Y, d.Y
	for i := 0; i < 10000; i++ {
		d.Update(settings.Speed(settings.Normal, d.Speed), rng)
		if d.X == ReentryX {
			// Re-entry relocates the duck; jitter keeps it near the base height.
			continue
		}
		minY = math.Min(minY, d.Y)
		maxY = math.Max(maxY, d.Y)
		if d.Y < BandTop-slack-ReentryJitter || d.Y > BandBottom+slack+ReentryJitter {
			t.Fatalf("Tick %d: y=%v left the band", i, d.Y)
		}
	}
	if minY > BandTop+slack || maxY < BandBottom-slack {
		t.Errorf("Expected oscillation across the band, saw [%v, %v]", minY, maxY)
	}
}

func TestBobbingWithoutWrapNeverDrifts(t *testing.T) {
	d := NewDuck()
	for i := 0; i < 10000; i++ {
		d.Update(0, fixedJitter(0))
		if d.Y < BandTop-BobSpeed-1e-9 || d.Y > BandBottom+BobSpeed+1e-9 {
			t.Fatalf("Tick %d: y=%v outside [%v, %v]", i, d.Y, BandTop-BobSpeed, BandBottom+BobSpeed)
		}
	}
}

func TestHorizontalWrap(t *testing.T) {
	d := NewDuck()
	d.X = FieldWidth + WrapMargin + 0.01
	d.Update(1, fixedJitter(ReentryJitter+3))
	if d.X != ReentryX {
		t.Errorf("Expected x=%d after wrap, got %v", ReentryX, d.X)
	}
	if d.Y != BaseY+3 {
		t.Errorf("Expected y=%d after wrap, got %v", BaseY+3, d.Y)
	}
}

func TestNoWrapAtBoundary(t *testing.T) {
	d := NewDuck()
	d.X = FieldWidth + WrapMargin - 1
	d.Update(1, fixedJitter(0))
	if d.X != FieldWidth+WrapMargin {
		t.Errorf("Expected x=%d, got %v", FieldWidth+WrapMargin, d.X)
	}
}

func TestBumpAndDash(t *testing.T) {
	d := NewDuck()
	y := d.Y
	d.Bump()
	if d.Motion.ExtraVX != ClickBoost {
		t.Errorf("Expected extra velocity %v, got %v", ClickBoost, d.Motion.ExtraVX)
	}
	if d.Y != y-ClickLift {
		t.Errorf("Expected y=%v, got %v", y-ClickLift, d.Y)
	}
	if d.Motion.VYDir != -1 {
		t.Errorf("Expected upward direction, got %v", d.Motion.VYDir)
	}
	d.Dash()
	if d.Motion.ExtraVX != ClickBoost+DashBoost {
		t.Errorf("Expected extra velocity %v, got %v", ClickBoost+DashBoost, d.Motion.ExtraVX)
	}
}

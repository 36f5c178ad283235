package entity

import "duckdash/internal/settings"

// Play-field geometry the duck moves through.
const (
	FieldWidth = 960
	GroundY    = 440
	WrapMargin = 30

	StartX = 60
	BaseY  = GroundY - 52

	// Bobbing turns around once the duck passes either bound.
	BandTop    = GroundY - 70
	BandBottom = GroundY - 40

	// ReentryX is where the duck reappears after leaving the right edge.
	ReentryX      = -120
	ReentryJitter = 10
)

// Motion tuning.
const (
	Decay      = 0.96
	BobSpeed   = 0.4
	ClickBoost = 0.5
	ClickLift  = 6
	DashBoost  = 3.0
)

// Motion is the velocity state that travels with a Duck.
type Motion struct {
	ExtraVX float64 // extra horizontal speed, decays every tick
	VY      float64
	VYDir   float64 // +1 moving down, -1 moving up
}

// Duck is the single clickable sprite.
type Duck struct {
	X, Y   float64
	Speed  settings.SpeedLabel
	Motion Motion
}

// Intner supplies the vertical jitter applied on re-entry.
type Intner interface {
	Intn(n int) int
}

func NewDuck() *Duck {
	d := &Duck{}
	d.Reset()
	return d
}

// Reset puts the duck back at its round-start position.
func (d *Duck) Reset() {
	d.X = StartX
	d.Y = BaseY
	d.Speed = settings.Slow
	d.Motion = Motion{VY: BobSpeed, VYDir: 1}
}

// Update advances the duck by one tick. base is the preset speed for the
// current label. Decay is per call, so the tick rate sets the decay rate.
func (d *Duck) Update(base int, rng Intner) {
	vx := float64(base) + d.Motion.ExtraVX
	d.Motion.ExtraVX *= Decay

	// The bound check runs after the move, so one tick may overshoot the band.
	d.Y += d.Motion.VY * d.Motion.VYDir
	if d.Y < BandTop {
		d.Motion.VYDir = 1
	} else if d.Y > BandBottom {
		d.Motion.VYDir = -1
	}

	d.X += vx
	if d.X > FieldWidth+WrapMargin {
		d.X = ReentryX
		d.Y = BaseY + float64(rng.Intn(2*ReentryJitter+1)-ReentryJitter)
	}
}

// Bump is the reaction to a successful click: a speed boost and a hop up.
func (d *Duck) Bump() {
	d.Motion.ExtraVX += ClickBoost
	d.Y -= ClickLift
	d.Motion.VYDir = -1
}

func (d *Duck) Dash() {
	d.Motion.ExtraVX += DashBoost
}

// Bounds is the clickable box for art of w×h pixels drawn at scale.
func (d *Duck) Bounds(w, h, scale int) Rect {
	return Rect{
		X: d.X,
		Y: d.Y,
		W: float64(w * scale),
		H: float64(h * scale),
	}
}

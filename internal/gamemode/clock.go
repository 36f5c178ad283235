package gamemode

import "time"

// RoundDuration is the length of one round.
const RoundDuration = 60 * time.Second

// TimeProvider is the source of wall-clock time for the round timer.
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// SystemTime reads the real clock.
var SystemTime TimeProvider = systemTime{}

// Clock is a countdown measured against wall-clock time. It cannot be paused.
type Clock struct {
	Duration time.Duration
	started  time.Time
	running  bool
	tp       TimeProvider
}

func NewClock(tp TimeProvider) *Clock {
	if tp == nil {
		tp = SystemTime
	}
	return &Clock{Duration: RoundDuration, tp: tp}
}

func (c *Clock) Start() {
	c.started = c.tp.Now()
	c.running = true
}

// Started is the instant of the last Start.
func (c *Clock) Started() time.Time { return c.started }

// Remaining is max(0, Duration - elapsed). A clock that was never started
// reports the full duration.
func (c *Clock) Remaining() time.Duration {
	if !c.running {
		return c.Duration
	}
	left := c.Duration - c.tp.Now().Sub(c.started)
	if left < 0 {
		return 0
	}
	return left
}

// RemainingSeconds truncates Remaining to whole seconds for display.
func (c *Clock) RemainingSeconds() int {
	return int(c.Remaining() / time.Second)
}

func (c *Clock) Expired() bool {
	return c.running && c.Remaining() <= 0
}

package gamemode

import (
	"math/rand"
	"time"

	"duckdash/internal/entity"
	"duckdash/internal/settings"
)

type RoundState int

const (
	RoundIdle    RoundState = iota // No round played yet
	RoundRunning                   // Clock ticking, clicks count
	RoundEnded                     // Clock expired, waiting for a name
)

func (s RoundState) String() string {
	switch s {
	case RoundIdle:
		return "idle"
	case RoundRunning:
		return "running"
	case RoundEnded:
		return "ended"
	}
	return "unknown"
}

// Recorder stores a finished round's score.
type Recorder interface {
	Insert(name string, score int)
}

// EndHandler is told when a round's clock runs out. The shell uses it to
// stop music and ask for a name.
type EndHandler interface {
	RoundEnded(score int)
}

// Round drives one timed play session. It is not safe for concurrent use:
// Tick and Click must come from the same goroutine, one at a time.
type Round struct {
	State RoundState
	Score int
	Duck  *entity.Duck
	Clock *Clock

	// ArtW and ArtH are the duck art size in art pixels.
	ArtW, ArtH int

	settings  *settings.Settings
	scores    Recorder
	onEnd     EndHandler
	rng       *rand.Rand
	submitted bool
}

// Options customise a Round. Zero values pick real time and a time-seeded
// random source.
type Options struct {
	Time  TimeProvider
	Rand  *rand.Rand
	OnEnd EndHandler
	ArtW  int
	ArtH  int
}

func NewRound(s *settings.Settings, scores Recorder, opts Options) *Round {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Round{
		State:    RoundIdle,
		Duck:     entity.NewDuck(),
		Clock:    NewClock(opts.Time),
		ArtW:     opts.ArtW,
		ArtH:     opts.ArtH,
		settings: s,
		scores:   scores,
		onEnd:    opts.OnEnd,
		rng:      rng,
	}
}

// Start resets the duck, the score and the clock and begins a round.
func (r *Round) Start() {
	r.Duck.Reset()
	r.Score = 0
	r.submitted = false
	r.Clock.Start()
	r.State = RoundRunning
}

// Restart abandons whatever is in progress and starts over.
func (r *Round) Restart() {
	r.Start()
}

func (r *Round) IsOver() bool { return r.State == RoundEnded }

// Tick advances one frame. It does nothing unless the round is running.
func (r *Round) Tick() {
	if r.State != RoundRunning {
		return
	}
	r.Duck.Update(r.settings.Speed(r.Duck.Speed), r.rng)
	if r.Clock.Expired() {
		r.end()
	}
}

func (r *Round) end() {
	r.State = RoundEnded
	if r.onEnd != nil {
		r.onEnd.RoundEnded(r.Score)
	}
}

// Bounds is the duck's clickable box at the current pixel scale.
func (r *Round) Bounds() entity.Rect {
	return r.Duck.Bounds(r.ArtW, r.ArtH, r.settings.Scale())
}

// Click handles a pointer press at field coordinates (x, y) and reports
// whether it hit the duck. Misses cost nothing.
func (r *Round) Click(x, y float64) bool {
	if r.State != RoundRunning {
		return false
	}
	if !entity.Hit(x, y, r.Bounds()) {
		return false
	}
	r.Score++
	r.Duck.Bump()
	return true
}

func (r *Round) Dash() {
	if r.State != RoundRunning {
		return
	}
	r.Duck.Dash()
}

func (r *Round) SetSpeed(label settings.SpeedLabel) {
	r.Duck.Speed = label
}

// Submit records the finished round under name ("Player" when blank). Only
// the first call after a round ends is recorded.
func (r *Round) Submit(name string) bool {
	if r.State != RoundEnded || r.submitted {
		return false
	}
	r.submitted = true
	if r.scores != nil {
		r.scores.Insert(name, r.Score)
	}
	return true
}

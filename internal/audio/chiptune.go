package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const (
	SampleRate = 44100
	Tempo      = 140 // beats per minute, notes are eighths
	Amplitude  = 0.3
)

// Theme is the background loop in Hz; 0 is a rest.
var Theme = []float64{
	523.25, 523.25, 659.25, 523.25, 0, 523.25,
	587.33, 659.25, 587.33, 523.25, 0, 392.00,
	440.00, 523.25, 440.00, 392.00, 0, 349.23,
}

// NoteLength is one eighth note at the given tempo.
func NoteLength(sr beep.SampleRate, bpm float64) int {
	beat := time.Duration(float64(time.Minute) / bpm)
	return sr.N(beat / 2)
}

// square is an endless square wave whose phase starts at zero.
type square struct {
	freq  float64
	phase float64
	amp   float64
	rate  beep.SampleRate
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := -s.amp
		if s.phase < 0.5 {
			v = s.amp
		}
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// Phrase plays notes once, each lasting NoteLength.
func Phrase(sr beep.SampleRate, bpm float64, notes []float64) beep.Streamer {
	n := NoteLength(sr, bpm)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		if f <= 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		parts = append(parts, beep.Take(n, &square{freq: f, amp: Amplitude, rate: sr}))
	}
	return beep.Seq(parts...)
}

// Repeat restarts a streamer built by build every time it runs dry.
type Repeat struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func NewRepeat(build func() beep.Streamer) *Repeat {
	return &Repeat{build: build}
}

// Rewind makes the next Stream start from the top.
func (r *Repeat) Rewind() { r.cur = nil }

func (r *Repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		fresh := r.cur == nil
		if fresh {
			r.cur = r.build()
		}
		k, more := r.cur.Stream(samples[n:])
		n += k
		if !more {
			r.cur = nil
			if fresh && k == 0 {
				// Nothing to repeat.
				return n, n > 0
			}
		}
	}
	return n, true
}

func (r *Repeat) Err() error { return nil }

// NewTheme is the looping background track.
func NewTheme(sr beep.SampleRate) *Repeat {
	return NewRepeat(func() beep.Streamer {
		return Phrase(sr, Tempo, Theme)
	})
}

// pcmReader turns a beep stream into the signed 16-bit little-endian stereo
// PCM an ebiten audio player reads. The player reads from its own goroutine,
// so streaming happens under mu.
type pcmReader struct {
	mu  *sync.Mutex
	src beep.Streamer
	buf [][2]float64
}

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	r.mu.Lock()
	n, ok := r.src.Stream(buf)
	r.mu.Unlock()

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[4*i:], uint16(toInt16(buf[i][0])))
		binary.LittleEndian.PutUint16(p[4*i+2:], uint16(toInt16(buf[i][1])))
	}
	if !ok && n == 0 {
		return 0, io.EOF
	}
	return n * 4, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

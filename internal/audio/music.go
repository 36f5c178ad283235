package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Music is the optional background loop. When the audio device cannot be
// opened every method is a no-op and the game carries on silently.
type Music struct {
	mu     sync.Mutex
	player *ebitenaudio.Player
	theme  *Repeat
	ctrl   *beep.Ctrl
}

// NewMusic prepares the theme on the shared ebiten audio context.
func NewMusic() *Music {
	m := &Music{theme: NewTheme(beep.SampleRate(SampleRate))}
	m.ctrl = &beep.Ctrl{Streamer: m.theme, Paused: true}
	if err := m.open(); err != nil {
		log.Printf("audio: disabled: %v", err)
		m.player = nil
	}
	return m
}

func (m *Music) open() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open audio context: %v", r)
		}
	}()
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(SampleRate)
	}
	player, err := ctx.NewPlayer(&pcmReader{mu: &m.mu, src: m.ctrl})
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	player.SetVolume(0.5)
	m.player = player
	return nil
}

// Available reports whether audio output works at all.
func (m *Music) Available() bool {
	return m.player != nil
}

// Play starts the theme from the top. Calling it while playing is a no-op.
func (m *Music) Play() {
	if !m.Available() || m.player.IsPlaying() {
		return
	}
	m.mu.Lock()
	m.theme.Rewind()
	m.ctrl.Paused = false
	m.mu.Unlock()
	m.player.Play()
}

func (m *Music) Stop() {
	if !m.Available() {
		return
	}
	m.mu.Lock()
	m.ctrl.Paused = true
	m.mu.Unlock()
	m.player.Pause()
}

func (m *Music) Playing() bool {
	return m.Available() && m.player.IsPlaying()
}

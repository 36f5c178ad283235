package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"duckdash/internal/assets"
	"duckdash/internal/audio"
	"duckdash/internal/gamemode"
	"duckdash/internal/scene"
	"duckdash/internal/scores"
	"duckdash/internal/settings"
	"duckdash/internal/ui"
)

// Screen Constants
const (
	ScreenWidth  = scene.Width
	ScreenHeight = scene.Height + HUDHeight
	HUDHeight    = 40
	TPS          = 60 // one tick every ~16ms

	MaxNameLength = 16
)

// Define Screens
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenSettings
	ScreenLeaderboard
	ScreenPlaying
	ScreenNameEntry
)

// Game is the shell around a Round: screens, input, HUD, music.
type Game struct {
	Screen   Screen
	Tick     int
	Settings *settings.Settings
	Round    *gamemode.Round
	Scores   *scores.Store
	Music    *audio.Music
	Scene    *scene.Scene

	name  ui.TextField
	board []scores.Entry
	quit  bool

	hud          []*ui.Button
	menu         []*ui.Button
	instructions []*ui.Button
	options      []*ui.Button
	leaderboard  []*ui.Button
}

func NewGame() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		Screen:   ScreenMenu,
		Settings: settings.Default(),
		Scores:   scores.NewStore(scores.DefaultFile),
		Music:    audio.NewMusic(),
		Scene:    scene.New(HUDHeight, rng),
		name:     ui.TextField{Max: MaxNameLength},
	}
	g.Round = gamemode.NewRound(g.Settings, g.Scores, gamemode.Options{
		Rand:  rng,
		OnEnd: g,
		ArtW:  assets.Duck.Width(),
		ArtH:  assets.Duck.Height(),
	})
	g.buildButtons()
	return g
}

// --- Navigation ---
func (g *Game) showMenu() {
	g.Music.Stop()
	g.Screen = ScreenMenu
}

func (g *Game) showInstructions() { g.Screen = ScreenInstructions }

func (g *Game) showSettings() { g.Screen = ScreenSettings }

func (g *Game) showLeaderboard() {
	g.board = g.Scores.TopN(scores.DisplayEntries)
	g.Screen = ScreenLeaderboard
}

func (g *Game) startGame() {
	g.Screen = ScreenPlaying
	g.Round.Start()
	if g.Settings.MusicEnabled {
		g.Music.Play()
	}
}

// RoundEnded runs inside Round.Tick once the clock expires.
func (g *Game) RoundEnded(score int) {
	g.Music.Stop()
	g.name.Reset()
	g.Screen = ScreenNameEntry
}

func (g *Game) submitName() {
	g.Round.Submit(g.name.Value)
	g.showLeaderboard()
}

func (g *Game) toggleMusic() {
	g.Settings.MusicEnabled = !g.Settings.MusicEnabled
	if g.Settings.MusicEnabled {
		g.Music.Play()
	} else {
		g.Music.Stop()
	}
}

// --- UPDATE ---
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.Tick++

	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()

	if g.Screen == ScreenNameEntry {
		g.updateNameEntry()
		return nil
	}

	if click && ui.PressAny(g.hud, mx, my) {
		return nil
	}

	switch g.Screen {
	case ScreenMenu:
		g.Scene.Update()
		if click {
			ui.PressAny(g.menu, mx, my)
		}
	case ScreenInstructions:
		g.updateBack(g.instructions, click, mx, my)
	case ScreenSettings:
		g.updateBack(g.options, click, mx, my)
	case ScreenLeaderboard:
		g.updateBack(g.leaderboard, click, mx, my)
	case ScreenPlaying:
		g.updatePlaying(click, mx, my)
	}
	return nil
}

func (g *Game) updateBack(buttons []*ui.Button, click bool, mx, my int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showMenu()
		return
	}
	if click {
		ui.PressAny(buttons, mx, my)
	}
}

func (g *Game) updatePlaying(click bool, mx, my int) {
	for _, k := range []struct {
		keys  []ebiten.Key
		label settings.SpeedLabel
	}{
		{[]ebiten.Key{ebiten.Key1, ebiten.KeyS}, settings.Slow},
		{[]ebiten.Key{ebiten.Key2, ebiten.KeyM}, settings.Medium},
		{[]ebiten.Key{ebiten.Key3, ebiten.KeyF}, settings.Fast},
	} {
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				g.Round.SetSpeed(k.label)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Round.Dash()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.startGame()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showMenu()
		return
	}

	// Clicks are judged against the frame the player saw, before this tick moves the duck.
	if click {
		g.Round.Click(float64(mx), float64(my-HUDHeight))
	}
	g.Scene.Update()
	g.Round.Tick()
}

func (g *Game) updateNameEntry() {
	g.name.Append(ebiten.AppendInputChars(nil))
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.name.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.submitName()
		return
	}
	// Escape dismisses the prompt; the score is kept under the default name.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.name.Reset()
		g.submitName()
	}
}

// repeatingKeyPressed fires on press and then repeatedly while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// Layout: fixed logical resolution, Ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"duckdash/internal/scores"
	"duckdash/internal/settings"
	"duckdash/internal/ui"
)

// --- Colors ---
var (
	ColHUD      = color.RGBA{0x0a, 0x25, 0x40, 0xff}
	ColHUDText  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColPanel    = color.RGBA{0x74, 0xc0, 0xfc, 0xff}
	ColWhite    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColSelected = color.RGBA{0x66, 0xbb, 0x6a, 0xff}
	ColDim      = color.RGBA{0x00, 0x00, 0x00, 0x90}
	ColInk      = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

const (
	buttonW = 180
	buttonH = 28
	centerX = ScreenWidth / 2
)

var instructionsText = strings.Join([]string{
	"* Click the duck to score",
	"* 1/2/3 (or S/M/F) change its speed",
	"* Space makes it dash, R restarts the round",
	"* Score as much as possible before time runs out",
}, "\n")

func (g *Game) buildButtons() {
	g.hud = []*ui.Button{
		ui.NewButton("Main Menu", ScreenWidth-110, 6, 100, buttonH, g.showMenu),
	}

	entries := []struct {
		label string
		do    func()
	}{
		{"Start Game", g.startGame},
		{"Instructions", g.showInstructions},
		{"Settings", g.showSettings},
		{"Leaderboard", g.showLeaderboard},
		{"Quit", func() { g.quit = true }},
	}
	g.menu = nil
	for i, e := range entries {
		g.menu = append(g.menu, ui.NewButton(e.label, centerX-buttonW/2, 170+i*40, buttonW, buttonH, e.do))
	}

	back := func(y int) *ui.Button {
		return ui.NewButton("Back", centerX-buttonW/2, y, buttonW, buttonH, g.showMenu)
	}
	g.instructions = []*ui.Button{back(300)}
	g.leaderboard = []*ui.Button{back(ScreenHeight - 60)}

	g.options = []*ui.Button{
		ui.NewButton("Music", centerX-buttonW/2, 120, buttonW, buttonH, g.toggleMusic),
	}
	for i, d := range settings.Difficulties {
		g.options = append(g.options, ui.NewButton(d.String(), centerX-150+i*100, 210, 90, buttonH, func() {
			g.Settings.Difficulty = d
		}))
	}
	g.options = append(g.options,
		ui.NewButton("-", centerX-90, 300, 40, buttonH, func() { g.Settings.SetPixelSize(g.Settings.PixelSize - 1) }),
		ui.NewButton("+", centerX+50, 300, 40, buttonH, func() { g.Settings.SetPixelSize(g.Settings.PixelSize + 1) }),
		back(380),
	)
}

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColPanel)
	mx, my := ebiten.CursorPosition()
	scale := g.Settings.Scale()

	switch g.Screen {
	case ScreenMenu:
		g.Scene.DrawBackground(screen, scale)
		g.Scene.DrawProps(screen, scale, false)
		vector.DrawFilledRect(screen, centerX-150, 110, 300, 270, ColWhite, false)
		ui.DrawCentered(screen, "Duck Dash - Pixel Edition", image.Rect(centerX-150, 120, centerX+150, 150), ColInk)
		drawButtons(screen, g.menu, mx, my)

	case ScreenInstructions:
		drawTitle(screen, "Instructions")
		ui.DrawText(screen, instructionsText, centerX-170, 140, ColInk)
		drawButtons(screen, g.instructions, mx, my)

	case ScreenSettings:
		g.drawSettings(screen, mx, my)

	case ScreenLeaderboard:
		g.drawLeaderboard(screen, mx, my)

	case ScreenPlaying:
		g.drawField(screen, scale)

	case ScreenNameEntry:
		g.drawField(screen, scale)
		g.drawNameEntry(screen)
	}

	g.drawHUD(screen, mx, my)
}

func (g *Game) drawField(screen *ebiten.Image, scale int) {
	g.Scene.DrawBackground(screen, scale)
	g.Scene.DrawProps(screen, scale, true)
	g.Scene.DrawDuck(screen, g.Round.Duck, scale)
}

func (g *Game) drawHUD(screen *ebiten.Image, mx, my int) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, HUDHeight, ColHUD, false)
	status := fmt.Sprintf("Score: %d    Time: %ds    Speed: %s (%s)",
		g.Round.Score, g.Round.Clock.RemainingSeconds(), g.Round.Duck.Speed, g.Settings.Difficulty)
	ui.DrawText(screen, status, 10, 13, ColHUDText)
	if g.Screen != ScreenNameEntry {
		drawButtons(screen, g.hud, mx, my)
	}
}

func (g *Game) drawSettings(screen *ebiten.Image, mx, my int) {
	drawTitle(screen, "Settings")

	music := "OFF"
	if g.Settings.MusicEnabled {
		music = "ON"
	}
	g.options[0].Label = "Music: " + music

	ui.DrawText(screen, "Difficulty:", centerX-150, 185, ColInk)
	for i, d := range settings.Difficulties {
		if d == g.Settings.Difficulty {
			r := g.options[1+i].Bounds
			vector.DrawFilledRect(screen, float32(r.Min.X-3), float32(r.Min.Y-3), float32(r.Dx()+6), float32(r.Dy()+6), ColSelected, false)
		}
	}

	ui.DrawText(screen, "Pixel Size:", centerX-150, 275, ColInk)
	ui.DrawCentered(screen, fmt.Sprint(g.Settings.PixelSize), image.Rect(centerX-50, 300, centerX+50, 300+buttonH), ColInk)

	drawButtons(screen, g.options, mx, my)
}

func (g *Game) drawLeaderboard(screen *ebiten.Image, mx, my int) {
	drawTitle(screen, fmt.Sprintf("Leaderboard (Top %d)", scores.DisplayEntries))
	if len(g.board) == 0 {
		ui.DrawCentered(screen, "No scores yet.", image.Rect(0, 140, ScreenWidth, 170), ColInk)
	}
	for i, e := range g.board {
		ui.DrawText(screen, fmt.Sprintf("%2d. %s - %d", i+1, e.Name, e.Score), centerX-120, float64(130+i*28), ColInk)
	}
	drawButtons(screen, g.leaderboard, mx, my)
}

func (g *Game) drawNameEntry(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, HUDHeight, ScreenWidth, ScreenHeight-HUDHeight, ColDim, false)
	vector.DrawFilledRect(screen, centerX-180, 180, 360, 170, ColWhite, false)
	vector.StrokeRect(screen, centerX-180, 180, 360, 170, 2, ColHUD, false)

	ui.DrawCentered(screen, "Game Over", image.Rect(centerX-180, 190, centerX+180, 215), ColInk)
	ui.DrawText(screen, fmt.Sprintf("Final score: %d  Enter your name:", g.Round.Score), centerX-160, 225, ColInk)

	vector.StrokeRect(screen, centerX-160, 255, 320, 28, 1, ColHUD, false)
	cursor := ""
	if (g.Tick/30)%2 == 0 {
		cursor = "_"
	}
	ui.DrawText(screen, g.name.Value+cursor, centerX-152, 262, ColInk)
	ui.DrawText(screen, "Enter to save, Esc to skip", centerX-160, 300, ColInk)
}

func drawTitle(screen *ebiten.Image, title string) {
	ui.DrawCentered(screen, title, image.Rect(0, HUDHeight+30, ScreenWidth, HUDHeight+60), ColInk)
}

func drawButtons(screen *ebiten.Image, buttons []*ui.Button, mx, my int) {
	for _, b := range buttons {
		b.Draw(screen, b.Contains(mx, my))
	}
}

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

const WindowTitle = "Duck Dash - Pixel Edition"

func main() {
	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(TPS)

	// 2. Initialize Game
	game := NewGame()

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

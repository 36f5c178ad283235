package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pixmap is pixel art as rows of palette keys. '.' is transparent.
type Pixmap []string

// Width is the widest row in art pixels.
func (p Pixmap) Width() int {
	w := 0
	for _, row := range p {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

func (p Pixmap) Height() int { return len(p) }

// Size is the on-screen size at the given pixel scale.
func (p Pixmap) Size(scale int) (w, h int) {
	return p.Width() * scale, p.Height() * scale
}

// RGBA rasterises the pixmap at one screen pixel per art pixel. Keys missing
// from the palette are left transparent.
func (p Pixmap) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	for y, row := range p {
		for x := 0; x < len(row); x++ {
			c, ok := Palette[row[x]]
			if !ok {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var cache = map[*Pixmap]*ebiten.Image{}

// LoadImage uploads a pixmap to VRAM once and returns the cached image.
// Scale it with GeoM when drawing to keep the blocky look.
func LoadImage(p *Pixmap) *ebiten.Image {
	if img, ok := cache[p]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(p.RGBA())
	cache[p] = img
	return img
}

var Palette = map[byte]color.RGBA{
	'Y': {0xf4, 0xd0, 0x3f, 0xff}, // duck yellow
	'O': {0xf3, 0x9c, 0x12, 0xff}, // beak
	'B': {0x6d, 0x4c, 0x41, 0xff}, // wing
	'G': {0x38, 0x8e, 0x3c, 0xff}, // pipe
	'g': {0x66, 0xbb, 0x6a, 0xff}, // bush
	'w': {0xff, 0xff, 0xff, 0xff}, // cloud
	'R': {0xb5, 0x65, 0x1d, 0xff}, // brick
	'k': {0x1b, 0x1b, 0x1b, 0xff}, // eye
}

var (
	SkyColors   = []color.RGBA{{0x9b, 0xe7, 0xff, 0xff}, {0x8f, 0xd8, 0xff, 0xff}, {0x84, 0xca, 0xff, 0xff}, {0x79, 0xbc, 0xff, 0xff}}
	SkyBase     = color.RGBA{0x87, 0xce, 0xfa, 0xff}
	WaterColor  = color.RGBA{0x64, 0xb5, 0xf6, 0xff}
	GroundColor = color.RGBA{0x4d, 0xb6, 0xac, 0xff}
)

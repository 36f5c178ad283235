package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font every screen uses.
var Face = text.NewGoXFace(basicfont.Face7x13)

var (
	ColButton      = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	ColButtonHover = color.RGBA{0xff, 0xe0, 0x82, 0xff}
	ColBorder      = color.RGBA{0x0a, 0x25, 0x40, 0xff}
	ColText        = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// Button is a clickable labelled rectangle.
type Button struct {
	Label   string
	Bounds  image.Rectangle
	OnClick func()
}

func NewButton(label string, x, y, w, h int, onClick func()) *Button {
	return &Button{
		Label:   label,
		Bounds:  image.Rect(x, y, x+w, y+h),
		OnClick: onClick,
	}
}

func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds)
}

// Press fires OnClick if (x, y) is on the button.
func (b *Button) Press(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// PressAny stops at the first button that takes the click.
func PressAny(buttons []*Button, x, y int) bool {
	for _, b := range buttons {
		if b.Press(x, y) {
			return true
		}
	}
	return false
}

func (b *Button) Draw(dst *ebiten.Image, hover bool) {
	r := b.Bounds
	bg := ColButton
	if hover {
		bg = ColButtonHover
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 2, ColBorder, false)
	DrawCentered(dst, b.Label, r, ColText)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = Face.Metrics().HLineGap + Face.Metrics().HAscent + Face.Metrics().HDescent
	text.Draw(dst, s, Face, op)
}

// DrawCentered centres a single line of s inside r.
func DrawCentered(dst *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	w, h := text.Measure(s, Face, 0)
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	DrawText(dst, s, x, y, clr)
}

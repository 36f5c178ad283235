package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"duckdash/internal/assets"
	"duckdash/internal/entity"
)

const (
	Width  = entity.FieldWidth
	Height = 520

	grassHeight = 24
	skyBands    = 8

	cloudY      = 80
	cloudJitter = 10
	cloudDrift  = 0.3
	cloudExitX  = -200
	cloudEnterX = Width + 50
)

var (
	cloudStarts = []float64{120, 380, 700}
	pipeXs      = []float64{200, 520, 820}
	bushXs      = []float64{100, 420, 740}
)

type Cloud struct {
	X, Y float64
}

// Scene draws the play field backdrop and the duck. OffsetY shifts the whole
// field down, leaving room for the HUD.
type Scene struct {
	OffsetY float64
	Clouds  []Cloud
	rng     *rand.Rand
}

func New(offsetY float64, rng *rand.Rand) *Scene {
	s := &Scene{OffsetY: offsetY, rng: rng}
	for _, x := range cloudStarts {
		s.Clouds = append(s.Clouds, Cloud{X: x, Y: s.cloudHeight()})
	}
	return s
}

func (s *Scene) cloudHeight() float64 {
	return float64(cloudY + s.rng.Intn(2*cloudJitter+1) - cloudJitter)
}

// Update drifts the clouds left, recycling them off the right edge.
func (s *Scene) Update() {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X -= cloudDrift
		if c.X < cloudExitX {
			c.X = cloudEnterX
			c.Y = s.cloudHeight()
		}
	}
}

// DrawBackground paints sky, sun, clouds, water, grass and the block row.
func (s *Scene) DrawBackground(dst *ebiten.Image, scale int) {
	oy := float32(s.OffsetY)
	vector.DrawFilledRect(dst, 0, oy, Width, Height, assets.SkyBase, false)

	band := float32(Height / skyBands)
	for i, c := range assets.SkyColors {
		vector.DrawFilledRect(dst, 0, oy+float32(i)*band, Width, band, c, false)
	}
	s.drawPixmap(dst, &assets.Sun, 60, 60, scale)
	for _, c := range s.Clouds {
		s.drawPixmap(dst, &assets.Cloud, c.X, c.Y, scale)
	}

	ground := float32(entity.GroundY)
	vector.DrawFilledRect(dst, 0, oy+ground, Width, Height-ground, assets.WaterColor, false)
	vector.DrawFilledRect(dst, 0, oy+ground-grassHeight, Width, grassHeight, assets.GroundColor, false)

	bw, bh := assets.Block.Size(scale)
	for x := 0; x < Width; x += bw {
		s.drawPixmap(dst, &assets.Block, float64(x), float64(entity.GroundY-grassHeight-bh), scale)
	}
}

// DrawProps adds the decorative pipes and, when bushes is set, the bushes.
func (s *Scene) DrawProps(dst *ebiten.Image, scale int, bushes bool) {
	_, ph := assets.Pipe.Size(scale)
	for _, x := range pipeXs {
		s.drawPixmap(dst, &assets.Pipe, x, float64(entity.GroundY-ph), scale)
	}
	if !bushes {
		return
	}
	_, bh := assets.Bush.Size(scale)
	for _, x := range bushXs {
		s.drawPixmap(dst, &assets.Bush, x, float64(entity.GroundY-bh), scale)
	}
}

// DrawDuck draws the sprite at its whole-pixel position.
func (s *Scene) DrawDuck(dst *ebiten.Image, d *entity.Duck, scale int) {
	s.drawPixmap(dst, &assets.Duck, float64(int(d.X)), float64(int(d.Y)), scale)
}

func (s *Scene) drawPixmap(dst *ebiten.Image, p *assets.Pixmap, x, y float64, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y+s.OffsetY)
	dst.DrawImage(assets.LoadImage(p), op)
}

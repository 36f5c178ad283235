package settings

// Difficulty selects a row of the speed preset table.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}

// SpeedLabel is the coarse horizontal speed of the duck.
type SpeedLabel int

const (
	Slow SpeedLabel = iota
	Medium
	Fast
)

func (s SpeedLabel) String() string {
	switch s {
	case Slow:
		return "slow"
	case Medium:
		return "medium"
	case Fast:
		return "fast"
	}
	return "unknown"
}

// FallbackSpeed is used for any label the preset table does not know.
const FallbackSpeed = 1

var presets = map[Difficulty]map[SpeedLabel]int{
	Easy:   {Slow: 1, Medium: 2, Fast: 3},
	Normal: {Slow: 2, Medium: 3, Fast: 4},
	Hard:   {Slow: 3, Medium: 4, Fast: 5},
}

// Speed returns the base horizontal speed in pixels per tick.
func Speed(d Difficulty, label SpeedLabel) int {
	row, ok := presets[d]
	if !ok {
		return FallbackSpeed
	}
	v, ok := row[label]
	if !ok {
		return FallbackSpeed
	}
	return v
}

// Pixel size bounds offered by the settings screen.
const (
	MinPixelSize = 2
	MaxPixelSize = 8
)

// Settings is owned by the game shell and shared by pointer with the round
// and the renderer. It lives for the whole process.
type Settings struct {
	MusicEnabled bool
	Difficulty   Difficulty
	PixelSize    int
}

func Default() *Settings {
	return &Settings{
		MusicEnabled: true,
		Difficulty:   Normal,
		PixelSize:    4,
	}
}

// Speed is the base speed for label at the current difficulty.
func (s *Settings) Speed(label SpeedLabel) int {
	return Speed(s.Difficulty, label)
}

// SetPixelSize clamps n into the supported range.
func (s *Settings) SetPixelSize(n int) {
	if n < MinPixelSize {
		n = MinPixelSize
	}
	if n > MaxPixelSize {
		n = MaxPixelSize
	}
	s.PixelSize = n
}

// Scale never reports less than one pixel.
func (s *Settings) Scale() int {
	if s.PixelSize < 1 {
		return 1
	}
	return s.PixelSize
}

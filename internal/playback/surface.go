package playback

// Surface receives the instructions a playback produces. Positions are
// indices into the bar row.
type Surface interface {
	SwapHeights(i, j int)
	SetHeight(i, value int)
	Paint(i int, color string)
}

// Palette holds the two colors of a session.
type Palette struct {
	Normal  string `yaml:"normal"`
	Compare string `yaml:"compare"`
}

type Bar struct {
	Height int
	Color  string
}

// Bars is an indexed in-memory Surface.
type Bars []Bar

func NewBars(heights []int, color string) Bars {
	b := make(Bars, len(heights))
	for i, h := range heights {
		b[i] = Bar{Height: h, Color: color}
	}
	return b
}

func (b Bars) SwapHeights(i, j int) {
	b[i].Height, b[j].Height = b[j].Height, b[i].Height
}

func (b Bars) SetHeight(i, value int) {
	b[i].Height = value
}

func (b Bars) Paint(i int, color string) {
	b[i].Color = color
}

// PaintAll sets every bar to color.
func (b Bars) PaintAll(color string) {
	for i := range b {
		b[i].Color = color
	}
}

func (b Bars) Heights() []int {
	h := make([]int, len(b))
	for i := range b {
		h[i] = b[i].Height
	}
	return h
}

// Max returns the tallest height, or 0 for no bars.
func (b Bars) Max() int {
	max := 0
	for _, bar := range b {
		if bar.Height > max {
			max = bar.Height
		}
	}
	return max
}

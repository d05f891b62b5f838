package render

// Margin is the space around the plot area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for y-axis labels on the left and x-axis labels
// at the bottom.
var DefaultMargin = Margin{Top: 16, Right: 0, Bottom: 28, Left: 58}

// Layout is the measured geometry of a chart surface.
type Layout struct {
	// ID identifies the host element.
	ID string
	// Width and Height are the plot area dimensions.
	Width, Height float64
	Margin        Margin
}

// OuterWidth is the full surface width including margins.
func (l Layout) OuterWidth() float64 {
	return l.Width + l.Margin.Left + l.Margin.Right
}

// OuterHeight is the full surface height including margins.
func (l Layout) OuterHeight() float64 {
	return l.Height + l.Margin.Top + l.Margin.Bottom
}

// Point is a pixel position inside the plot area.
type Point struct {
	X, Y float64
}

// AxisKind selects the x or y axis.
type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
)

// Class returns the class of the group holding the axis.
func (k AxisKind) Class() string {
	if k == AxisY {
		return "y-axis"
	}
	return "x-axis"
}

// Tick is one labelled axis position.
type Tick struct {
	// Pos is the pixel offset along the axis.
	Pos float64
	// From is where the tick was drawn before the current transition.
	From  float64
	Label string
}

// Axis is the full set of ticks for one axis.
type Axis struct {
	Kind  AxisKind
	Ticks []Tick
}

// StrokeWidth is the width of every series line.
const StrokeWidth = 2.17

// Series is the screen geometry of one line.
type Series struct {
	Key         string
	Color       string
	StrokeWidth float64
	Points      []Point
	// From holds the previous visual state resampled to len(Points), or nil
	// when the series has nothing to animate from.
	From []Point
}

// Path returns the smoothed curve through the series points.
func (s Series) Path() []PathCommand {
	return CatmullRom(s.Points, CatmullRomAlpha)
}

// Focus indicator styling.
const (
	FocusRadius      = 7
	FocusStroke      = "#fff"
	FocusStrokeWidth = 8
)

// Focus is the circle marking the hovered sample.
type Focus struct {
	Visible bool
	Center  Point
	Fill    string
}

// Overlay is the pointer-capture rectangle covering the plot area.
type Overlay struct {
	Width, Height float64
}

// Frame is a snapshot of everything drawn in the last render pass.
type Frame struct {
	Layout Layout
	X, Y   Axis
	Series []Series
	Focus  Focus
}

package render

import (
	"math"
	"strconv"
	"strings"
)

// CatmullRomAlpha selects the centripetal Catmull-Rom parameterisation.
const CatmullRomAlpha = 0.5

const curveEpsilon = 1e-12

// CommandKind is an SVG path command letter.
type CommandKind byte

const (
	MoveTo  CommandKind = 'M'
	LineTo  CommandKind = 'L'
	CurveTo CommandKind = 'C'
	Close   CommandKind = 'Z'
)

// PathCommand is one path segment. CurveTo carries two control points and
// the end point; MoveTo and LineTo carry one point; Close carries none.
type PathCommand struct {
	Kind   CommandKind
	Points []Point
}

// CatmullRom returns a smooth curve passing through points in order, as a
// sequence of cubic Bézier segments.
//
// A single point yields a closed zero-length path and two points a
// straight line.
func CatmullRom(points []Point, alpha float64) []PathCommand {
	c := catmullRom{alpha: alpha}
	for _, p := range points {
		c.point(p)
	}
	c.end()
	return c.cmds
}

type catmullRom struct {
	alpha      float64
	cmds       []PathCommand
	state      int
	p0, p1, p2 Point

	l01a, l12a, l23a    float64
	l01a2, l12a2, l23a2 float64
}

func (c *catmullRom) point(p Point) {
	if c.state > 0 {
		dx, dy := c.p2.X-p.X, c.p2.Y-p.Y
		c.l23a2 = math.Pow(dx*dx+dy*dy, c.alpha)
		c.l23a = math.Sqrt(c.l23a2)
	}

	switch c.state {
	case 0:
		c.state = 1
		c.cmds = append(c.cmds, PathCommand{Kind: MoveTo, Points: []Point{p}})
	case 1:
		c.state = 2
	case 2:
		c.state = 3
		c.segment(p)
	default:
		c.segment(p)
	}

	c.l01a, c.l12a = c.l12a, c.l23a
	c.l01a2, c.l12a2 = c.l12a2, c.l23a2
	c.p0, c.p1, c.p2 = c.p1, c.p2, p
}

// segment emits the Bézier from p1 to p2, with p0 and p as neighbours.
func (c *catmullRom) segment(p Point) {
	c1, c2 := c.p1, c.p2

	if c.l01a > curveEpsilon {
		a := 2*c.l01a2 + 3*c.l01a*c.l12a + c.l12a2
		n := 3 * c.l01a * (c.l01a + c.l12a)
		c1.X = (c1.X*a - c.p0.X*c.l12a2 + c.p2.X*c.l01a2) / n
		c1.Y = (c1.Y*a - c.p0.Y*c.l12a2 + c.p2.Y*c.l01a2) / n
	}

	if c.l23a > curveEpsilon {
		b := 2*c.l23a2 + 3*c.l23a*c.l12a + c.l12a2
		m := 3 * c.l23a * (c.l23a + c.l12a)
		c2.X = (c2.X*b + c.p1.X*c.l23a2 - p.X*c.l12a2) / m
		c2.Y = (c2.Y*b + c.p1.Y*c.l23a2 - p.Y*c.l12a2) / m
	}

	c.cmds = append(c.cmds, PathCommand{Kind: CurveTo, Points: []Point{c1, c2, c.p2}})
}

func (c *catmullRom) end() {
	switch c.state {
	case 1:
		c.cmds = append(c.cmds, PathCommand{Kind: Close})
	case 2:
		c.cmds = append(c.cmds, PathCommand{Kind: LineTo, Points: []Point{c.p2}})
	case 3:
		c.point(c.p2)
	}
}

// PathData renders commands as an SVG path "d" attribute.
func PathData(cmds []PathCommand) string {
	var b strings.Builder
	for _, cmd := range cmds {
		b.WriteByte(byte(cmd.Kind))
		for i, p := range cmd.Points {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatNumber(p.X))
			b.WriteByte(',')
			b.WriteString(formatNumber(p.Y))
		}
	}
	return b.String()
}

// formatNumber writes v rounded to three decimals without trailing zeros.
func formatNumber(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

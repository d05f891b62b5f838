// Package tooltip implements the hover state machine of a chart.
//
// A Controller is Hidden until the pointer enters the plot area. While
// Visible every move snaps the tooltip to the sample nearest the pointer.
// Leaving hides it again unless the pointer moved onto the tooltip itself.
package tooltip

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/linechart-go/pkg/linechart/locate"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
	"github.com/ukaji3/linechart-go/pkg/linechart/scale"
)

// ElementClass is the class of the tooltip element. A leave event onto an
// element carrying it keeps the tooltip open.
const ElementClass = "chart-tooltip"

// Binding is the data and geometry a Controller resolves pointers against.
type Binding struct {
	// Series holds the samples of each drawn series, sorted by date.
	Series []render.SeriesData
	X      scale.Time
	Y      scale.Linear
	// Margin offsets the tooltip from plot coordinates into container
	// coordinates.
	Margin render.Margin
}

// Controller owns the tooltip state.
//
// It is driven from a single goroutine.
type Controller struct {
	state   models.TooltipState
	focus   render.Focus
	binding Binding
	onFocus func(render.Focus)

	// hovered is the date of the sample last snapped to.
	hovered  time.Time
	hasHover bool
}

// New returns a hidden controller. onFocus, if not nil, is called whenever
// the focus indicator changes.
func New(onFocus func(render.Focus)) *Controller {
	return &Controller{
		state:   models.HiddenTooltip(),
		onFocus: onFocus,
	}
}

// Bind replaces the data the controller resolves pointers against. A
// tooltip that has snapped to a sample is moved to the sample nearest the
// same date under the new binding, keeping its visibility. It is left as is
// when the new binding has no samples.
func (c *Controller) Bind(b Binding) {
	c.binding = b
	if !c.hasHover {
		return
	}
	hit, ok := c.nearestTo(c.hovered)
	if !ok {
		return
	}
	c.snap(hit, c.state.Visible)
}

// State returns the current snapshot.
func (c *Controller) State() models.TooltipState {
	return c.state
}

// Focus returns the current focus indicator.
func (c *Controller) Focus() render.Focus {
	return c.focus
}

// Handlers returns pointer handlers feeding the controller.
func (c *Controller) Handlers() render.PointerHandlers {
	return render.PointerHandlers{
		Enter: c.Enter,
		Move:  c.Move,
		Leave: c.Leave,
	}
}

// Enter shows the tooltip and the focus indicator.
func (c *Controller) Enter(render.PointerEvent) {
	next := c.state
	next.Visible = true
	c.state = next
	c.setFocus(true, c.focus.Center, c.focus.Fill)
}

// Move snaps the tooltip to the sample nearest ev. It does nothing while
// hidden or when no sample is bound.
func (c *Controller) Move(ev render.PointerEvent) {
	if !c.state.Visible {
		return
	}
	hit, ok := c.nearestTo(c.binding.X.Invert(ev.X))
	if !ok {
		return
	}
	c.snap(hit, true)
}

func (c *Controller) snap(hit candidate, visible bool) {
	x := c.binding.X.Map(hit.sample.Date)
	y := c.binding.Y.Map(hit.sample.Value)
	c.hovered, c.hasHover = hit.sample.Date, true
	c.state = models.TooltipState{
		Visible: visible,
		Position: models.Position{
			Top:  y + c.binding.Margin.Top,
			Left: x + c.binding.Margin.Left,
		},
		Title: FormatTitle(hit.sample),
		Value: hit.sample.Value,
	}
	c.setFocus(visible, render.Point{X: x, Y: y}, hit.color)
}

// Leave hides the tooltip unless the pointer moved onto the tooltip
// element.
func (c *Controller) Leave(ev render.PointerEvent) {
	if strings.Contains(ev.RelatedClass, ElementClass) {
		return
	}
	next := c.state
	next.Visible = false
	c.state = next
	c.setFocus(false, c.focus.Center, c.focus.Fill)
}

// Reset returns the controller to its initial hidden state and hides the
// focus indicator.
func (c *Controller) Reset() {
	c.state = models.HiddenTooltip()
	c.hovered, c.hasHover = time.Time{}, false
	c.setFocus(false, render.Point{}, "")
}

// FormatTitle renders the sample date as D/M/YYYY.
func FormatTitle(s models.Sample) string {
	d := s.Date
	return fmt.Sprintf("%d/%d/%d", d.Day(), int(d.Month()), d.Year())
}

type candidate struct {
	sample models.Sample
	color  string
}

// nearestTo picks, across all bound series, the sample closest in time to
// t. Ties go to the earlier series.
func (c *Controller) nearestTo(t time.Time) (candidate, bool) {
	var (
		best  candidate
		dist  int64
		found bool
	)
	for _, sd := range c.binding.Series {
		i := locate.Nearest(sd.Samples, t)
		if i < 0 {
			continue
		}
		s := sd.Samples[i]
		d := int64(s.Date.Sub(t))
		if d < 0 {
			d = -d
		}
		if !found || d < dist {
			best, dist, found = candidate{sample: s, color: sd.Color}, d, true
		}
	}
	return best, found
}

func (c *Controller) setFocus(visible bool, center render.Point, fill string) {
	c.focus = render.Focus{Visible: visible, Center: center, Fill: fill}
	if c.onFocus != nil {
		c.onFocus(c.focus)
	}
}

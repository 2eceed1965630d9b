package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default SVG dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
)

const placeholderColor = "#BBBBBB"

// RenderSVG draws spec as an SVG document.
func RenderSVG(w io.Writer, spec ChartSpec, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	switch spec.Kind {
	case KindPie:
		return renderPie(w, spec, width, height)
	case KindScatter:
		return renderScatter(w, spec, width, height)
	default:
		return fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
}

func renderPie(w io.Writer, spec ChartSpec, width, height int) error {
	values := make([]chart.Value, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
			Style: chart.Style{FillColor: hexColor(s.Color)},
		})
	}

	// go-chart drops zero values and refuses to draw an empty pie
	if spec.Total() == 0 {
		values = []chart.Value{{
			Label: "No launches",
			Value: 1,
			Style: chart.Style{FillColor: hexColor(placeholderColor)},
		}}
	}

	pie := chart.PieChart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render pie: %w", err)
	}
	return nil
}

func renderScatter(w io.Writer, spec ChartSpec, width, height int) error {
	xr := Range{Lo: 0, Hi: 10000}
	if spec.XRange != nil {
		xr = spec.XRange.Normalize()
	}
	if xr.Hi == xr.Lo {
		xr.Hi = xr.Lo + 1
	}

	// One series per booster category, in first-appearance order of the points
	byCategory := orderedmap.NewOrderedMap[string, *chart.ContinuousSeries]()
	for _, p := range spec.Points {
		s, ok := byCategory.Get(p.Category)
		if !ok {
			s = &chart.ContinuousSeries{
				Name: p.Category,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    hexColor(p.Color),
				},
			}
			byCategory.Set(p.Category, s)
		}
		s.XValues = append(s.XValues, p.X)
		s.YValues = append(s.YValues, float64(p.Y))
	}

	series := make([]chart.Series, 0, byCategory.Len())
	for el := byCategory.Front(); el != nil; el = el.Next() {
		series = append(series, *el.Value)
	}

	// go-chart needs one visible series; the placeholder draws nothing
	empty := len(series) == 0
	if empty {
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    0,
				DotColor:    drawing.ColorTransparent,
			},
			XValues: []float64{xr.Lo, xr.Hi},
			YValues: []float64{0, 1},
		})
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &chart.ContinuousRange{Min: xr.Lo, Max: xr.Hi},
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
			},
		},
		Series: series,
	}
	if !empty {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return nil
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

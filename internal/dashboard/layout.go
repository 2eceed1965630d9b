// Package dashboard wires the launch dataset to the web dashboard: the static
// control layout, the registry of update handlers keyed by output id, and the
// HTTP server that dispatches control changes to them.
package dashboard

import (
	"fmt"
	"slices"

	"github.com/dbsmedya/launchdash/internal/charts"
	"github.com/dbsmedya/launchdash/internal/dataset"
)

// Control and output ids referenced by the page and the registry.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// Slider bounds.
const (
	sliderMin      = 0
	sliderMinUpper = 10000
	sliderStep     = 1000
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown describes the launch site selector.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// RangeSlider describes the payload range selector.
type RangeSlider struct {
	ID    string       `json:"id"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Value charts.Range `json:"value"`
}

// Graph is a chart placeholder filled by an update handler.
type Graph struct {
	ID string `json:"id"`
}

// Layout is the static description of the dashboard page, built once.
type Layout struct {
	Title    string      `json:"title"`
	Dropdown Dropdown    `json:"dropdown"`
	Slider   RangeSlider `json:"slider"`
	Graphs   []Graph     `json:"graphs"`
}

// BuildLayout derives the page layout from the dataset: one dropdown option
// per distinct site and a slider spanning the payload range.
func BuildLayout(d *dataset.Dataset) Layout {
	options := []Option{{Label: "All Sites", Value: charts.AllSites}}
	for _, site := range d.Sites() {
		options = append(options, Option{Label: fmt.Sprintf("Only %s", site), Value: site})
	}

	return Layout{
		Title: "SpaceX Launch Records Dashboard",
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     options,
			Value:       charts.AllSites,
			Placeholder: "Select Launch Site",
			Searchable:  true,
		},
		Slider: RangeSlider{
			ID:    PayloadSliderID,
			Min:   sliderMin,
			Max:   max(sliderMinUpper, d.MaxPayload()),
			Step:  sliderStep,
			Value: charts.Range{Lo: d.MinPayload(), Hi: d.MaxPayload()},
		},
		Graphs: []Graph{{ID: PieChartID}, {ID: ScatterChartID}},
	}
}

// Controls returns the ids of the input controls.
func (l Layout) Controls() []string {
	return []string{l.Dropdown.ID, l.Slider.ID}
}

// HasControl reports whether id names an input control.
func (l Layout) HasControl(id string) bool {
	return slices.Contains(l.Controls(), id)
}

// HasGraph reports whether id names a chart placeholder.
func (l Layout) HasGraph(id string) bool {
	return slices.ContainsFunc(l.Graphs, func(g Graph) bool { return g.ID == id })
}

// DefaultState returns the control values the page starts with.
func (l Layout) DefaultState() ControlState {
	return ControlState{Site: l.Dropdown.Value, Payload: l.Slider.Value}
}

// Package charts turns the launch dataset and the current control values into
// chart descriptions. The builders never modify the dataset; every call
// returns a fresh ChartSpec.
package charts

import (
	"fmt"
	"maps"
	"slices"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/launchdash/internal/dataset"
)

// AllSites selects every launch site.
const AllSites = "ALL"

// Outcome slice labels and colors for the single-site pie.
const (
	FailureLabel = "Failure"
	SuccessLabel = "Success"
	FailureColor = "#DD5555"
	SuccessColor = "#55DD55"
)

// Kind identifies how a ChartSpec is drawn.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Palette is the qualitative color sequence used for sites and booster categories.
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Point is one launch on the payload scatter chart.
type Point struct {
	FlightNumber int     `json:"flight_number"`
	X            float64 `json:"x"`
	Y            int     `json:"y"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
}

// Category is a scatter color group.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Range is an inclusive payload interval in kilograms.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Normalize returns the range with its bounds in ascending order.
func (r Range) Normalize() Range {
	if r.Lo > r.Hi {
		return Range{Lo: r.Hi, Hi: r.Lo}
	}
	return r
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return r.Lo <= v && v <= r.Hi
}

// ChartSpec describes a chart to render.
type ChartSpec struct {
	Kind       Kind       `json:"kind"`
	Title      string     `json:"title"`
	Slices     []Slice    `json:"slices,omitempty"`
	Points     []Point    `json:"points,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	XRange     *Range     `json:"x_range,omitempty"`
}

// Total returns the sum of all slice values.
func (c ChartSpec) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

// IsAll reports whether site selects every launch site. An empty selection,
// as sent by a cleared dropdown, counts as all.
func IsAll(site string) bool {
	return site == "" || site == AllSites
}

// SitePie builds the outcome pie for the selected site.
//
// For all sites it counts successful launches per site, one slice per site
// with at least one success, ordered by site name. For a single site it
// counts failures and successes; both slices are always present, zero-filled.
func SitePie(d *dataset.Dataset, site string) ChartSpec {
	if IsAll(site) {
		counts := make(map[string]int)
		for r := range d.All() {
			if r.Success == dataset.Success {
				counts[r.LaunchSite]++
			}
		}

		spec := ChartSpec{Kind: KindPie, Title: "Total success per site"}
		for i, name := range slices.Sorted(maps.Keys(counts)) {
			spec.Slices = append(spec.Slices, Slice{
				Label: name,
				Value: counts[name],
				Color: Palette[i%len(Palette)],
			})
		}
		return spec
	}

	var outcomes [2]int
	for r := range d.All() {
		if r.LaunchSite == site {
			outcomes[r.Success]++
		}
	}

	return ChartSpec{
		Kind:  KindPie,
		Title: fmt.Sprintf("Success rate for site %s", site),
		Slices: []Slice{
			{Label: FailureLabel, Value: outcomes[dataset.Failure], Color: FailureColor},
			{Label: SuccessLabel, Value: outcomes[dataset.Success], Color: SuccessColor},
		},
	}
}

// PayloadScatter builds the payload/outcome scatter for the selected site,
// keeping launches whose payload lies within payload (inclusive). Points are
// grouped by booster category in first-appearance order.
func PayloadScatter(d *dataset.Dataset, site string, payload Range) ChartSpec {
	payload = payload.Normalize()

	spec := ChartSpec{
		Kind:   KindScatter,
		Title:  "Correlation of Payloads and Success",
		XRange: &payload,
	}
	if !IsAll(site) {
		spec.Title = fmt.Sprintf("Correlation of Payloads and Success for site %s", site)
	}

	colors := orderedmap.NewOrderedMap[string, string]()
	for r := range d.All() {
		if !payload.Contains(r.PayloadMassKg) {
			continue
		}
		if !IsAll(site) && r.LaunchSite != site {
			continue
		}

		color, ok := colors.Get(r.BoosterCategory)
		if !ok {
			color = Palette[colors.Len()%len(Palette)]
			colors.Set(r.BoosterCategory, color)
		}

		spec.Points = append(spec.Points, Point{
			FlightNumber: r.FlightNumber,
			X:            r.PayloadMassKg,
			Y:            r.Success,
			Category:     r.BoosterCategory,
			Color:        color,
		})
	}

	for el := colors.Front(); el != nil; el = el.Next() {
		spec.Categories = append(spec.Categories, Category{Name: el.Key, Color: el.Value})
	}

	return spec
}

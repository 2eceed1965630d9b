// Package dataset holds the read-only table of launch records the dashboard
// is built from.
package dataset

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v2"
)

// Column headers of the launch table.
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnClass           = "class"
)

// Outcome values of the class column.
const (
	Failure = 0
	Success = 1
)

// ErrEmpty is returned when a source yields no launch records.
var ErrEmpty = errors.New("dataset contains no launch records")

// LaunchRecord is one row of the launch table.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number"`
	LaunchSite      string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_category"`
	Success         int     `json:"class"`
}

// SiteSummary aggregates launch outcomes for one site.
type SiteSummary struct {
	Site      string
	Launches  int
	Successes int
	Failures  int
}

// SuccessRate returns successes over launches, or 0 for a site without launches.
func (s SiteSummary) SuccessRate() float64 {
	if s.Launches == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Launches)
}

// Dataset is an ordered, immutable sequence of launch records.
type Dataset struct {
	records    []LaunchRecord
	summaries  *orderedmap.OrderedMap[string, *SiteSummary]
	minPayload float64
	maxPayload float64
}

// New builds a Dataset from records. The slice is copied, so later changes by
// the caller are not observed.
func New(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	d := &Dataset{
		records:    slices.Clone(records),
		summaries:  orderedmap.NewOrderedMap[string, *SiteSummary](),
		minPayload: records[0].PayloadMassKg,
		maxPayload: records[0].PayloadMassKg,
	}

	for i, r := range d.records {
		if r.Success != Failure && r.Success != Success {
			return nil, fmt.Errorf("record %d: class must be 0 or 1, got %d", i, r.Success)
		}

		d.minPayload = min(d.minPayload, r.PayloadMassKg)
		d.maxPayload = max(d.maxPayload, r.PayloadMassKg)

		summary, ok := d.summaries.Get(r.LaunchSite)
		if !ok {
			summary = &SiteSummary{Site: r.LaunchSite}
			d.summaries.Set(r.LaunchSite, summary)
		}
		summary.Launches++
		if r.Success == Success {
			summary.Successes++
		} else {
			summary.Failures++
		}
	}

	return d, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// All iterates the records in load order.
func (d *Dataset) All() iter.Seq[LaunchRecord] {
	return func(yield func(LaunchRecord) bool) {
		for _, r := range d.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the records in load order.
func (d *Dataset) Records() []LaunchRecord {
	return slices.Clone(d.records)
}

// MinPayload returns the smallest payload mass in the dataset.
func (d *Dataset) MinPayload() float64 {
	return d.minPayload
}

// MaxPayload returns the largest payload mass in the dataset.
func (d *Dataset) MaxPayload() float64 {
	return d.maxPayload
}

// Sites returns the distinct launch sites in first-appearance order.
func (d *Dataset) Sites() []string {
	return d.summaries.Keys()
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.summaries.Get(site)
	return ok
}

// Summaries returns per-site outcome totals in first-appearance order.
func (d *Dataset) Summaries() []SiteSummary {
	out := make([]SiteSummary, 0, d.summaries.Len())
	for el := d.summaries.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}
	return out
}

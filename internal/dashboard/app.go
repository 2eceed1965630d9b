package dashboard

import (
	"fmt"

	"github.com/dbsmedya/launchdash/internal/charts"
	"github.com/dbsmedya/launchdash/internal/dataset"
	"github.com/dbsmedya/launchdash/internal/logger"
)

// App holds everything the update handlers need. It is built once at startup
// and passed explicitly to every handler.
type App struct {
	Dataset  *dataset.Dataset
	Layout   Layout
	Registry *Registry
	log      *logger.Logger
}

// NewApp builds the layout for d, installs the chart handlers and checks the
// wiring. A handler referencing an unknown control is a setup error.
func NewApp(d *dataset.Dataset, log *logger.Logger) (*App, error) {
	if d == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	app := &App{
		Dataset:  d,
		Layout:   BuildLayout(d),
		Registry: NewRegistry(),
		log:      log,
	}

	if err := app.Registry.Register(PieChartID, []string{SiteDropdownID}, updatePie); err != nil {
		return nil, err
	}
	if err := app.Registry.Register(ScatterChartID, []string{SiteDropdownID, PayloadSliderID}, updateScatter); err != nil {
		return nil, err
	}

	if err := app.Registry.Validate(app.Layout); err != nil {
		return nil, fmt.Errorf("invalid dashboard wiring: %w", err)
	}

	log.Debugw("dashboard wired",
		"records", d.Len(),
		"sites", len(d.Sites()),
		"outputs", app.Registry.Outputs(),
	)
	return app, nil
}

// Update computes the chart for output from state.
func (a *App) Update(output string, state ControlState) (charts.ChartSpec, error) {
	spec, err := a.Registry.Dispatch(a, output, state)
	if err != nil {
		return charts.ChartSpec{}, err
	}

	a.log.WithOutput(output).WithSite(state.Site).Debugw("chart updated",
		"payload_lo", state.Payload.Lo,
		"payload_hi", state.Payload.Hi,
		"slices", len(spec.Slices),
		"points", len(spec.Points),
	)
	return spec, nil
}

func updatePie(app *App, state ControlState) charts.ChartSpec {
	return charts.SitePie(app.Dataset, state.Site)
}

func updateScatter(app *App, state ControlState) charts.ChartSpec {
	return charts.PayloadScatter(app.Dataset, state.Site, state.Payload)
}

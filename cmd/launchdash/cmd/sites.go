package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/launchdash/internal/dataset"
	"github.com/dbsmedya/launchdash/internal/logger"
)

var sitesNoColor bool

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Show launch totals per site",
	Long: `Sites loads the launch records and prints one row per launch site with
its launch, success and failure counts and the success rate.

Sites are listed in the order they first appear in the dataset.

Example:
  launchdash sites --data spacex_launch_dash.csv`,
	RunE: runSites,
}

func init() {
	sitesCmd.Flags().BoolVar(&sitesNoColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(sitesCmd)
}

func runSites(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if sitesNoColor {
		color.Disable()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := loadDataset(ctx, cfg, logger.NewNop())
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	writeSitesTable(cmd.OutOrStdout(), d)
	return nil
}

var sitesHeader = []string{"SITE", "LAUNCHES", "SUCCESSES", "FAILURES", "SUCCESS RATE"}

type sitesRow struct {
	cells []string
	rate  float64
	total bool
}

// writeSitesTable prints the per-site summary followed by a totals row.
// Columns are padded by display width so wide site names stay aligned.
func writeSitesTable(w io.Writer, d *dataset.Dataset) {
	var total dataset.SiteSummary
	var rows []sitesRow
	for _, s := range d.Summaries() {
		rows = append(rows, sitesRow{cells: summaryCells(s.Site, s), rate: s.SuccessRate()})
		total.Launches += s.Launches
		total.Successes += s.Successes
		total.Failures += s.Failures
	}
	rows = append(rows, sitesRow{cells: summaryCells("TOTAL", total), rate: total.SuccessRate(), total: true})

	widths := make([]int, len(sitesHeader))
	for i, h := range sitesHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row.cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	printRow(w, sitesHeader, widths, func(int, string) color.Color { return color.Bold })
	for _, row := range rows {
		printRow(w, row.cells, widths, func(col int, cell string) color.Color {
			switch {
			case row.total:
				return color.Bold
			case col != len(row.cells)-1:
				return color.Normal
			case row.rate >= 0.5:
				return color.Green
			default:
				return color.Red
			}
		})
	}
}

func summaryCells(site string, s dataset.SiteSummary) []string {
	return []string{
		site,
		strconv.Itoa(s.Launches),
		strconv.Itoa(s.Successes),
		strconv.Itoa(s.Failures),
		fmt.Sprintf("%.1f%%", s.SuccessRate()*100),
	}
}

// printRow pads each cell to its column width, then colors it. The site
// column is left aligned and the counts right aligned.
func printRow(w io.Writer, cells []string, widths []int, style func(col int, cell string) color.Color) {
	for i, cell := range cells {
		padded := runewidth.FillRight(cell, widths[i])
		if i > 0 {
			padded = runewidth.FillLeft(cell, widths[i])
		}
		if i < len(cells)-1 {
			padded += "  "
		}
		fmt.Fprint(w, style(i, cell).Sprint(padded))
	}
	fmt.Fprintln(w)
}

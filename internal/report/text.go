// Package report formats generated results for people: a sectioned console
// report, an Excel workbook and a one-page PDF summary.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/darshoned/DfMA/internal/beam"
	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/quantity"
)

const (
	rule    = "═══════════════════════════════════════════════════════════════"
	subRule = "───────────────────────────────────────────────────────────────"
)

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, subRule)
}

func section(b beam.Section) string {
	if b.Zero() {
		return "-"
	}
	return fmt.Sprintf("%.0f x %.0f mm", float64(b.Width), float64(b.Depth))
}

// listFormat prints whole values without decimals.
func listFormat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.3f", v)
}

func list(w io.Writer, title string, labels []string, values []float64) {
	heading(w, title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, v := range values {
		fmt.Fprintf(tw, "  %s:\t%s\n", labels[i], listFormat(v))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Text writes the console report of one result.
func Text(w io.Writer, res *planner.Result) {
	in := res.Input

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     DfMA BUILDING SCHEME - %s\n", res.Selection)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	heading(w, "INPUT DATA:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if in.Name != "" {
		fmt.Fprintf(tw, "  Scenario:\t%s\n", in.Name)
	}
	fmt.Fprintf(tw, "  Profile:\t%s\n", res.Profile)
	fmt.Fprintf(tw, "  Grid (S1 x S2):\t%.2f x %.2f m\n", float64(in.S1), float64(in.S2))
	fmt.Fprintf(tw, "  Building (L x W):\t%.2f x %.2f m\n", float64(in.Length), float64(in.Width))
	fmt.Fprintf(tw, "  Floor height:\t%.2f m\n", float64(in.FloorHeight))
	fmt.Fprintf(tw, "  Live load:\t%.2f kN/m²\n", in.LiveLoad)
	fmt.Fprintf(tw, "  Dead load:\t%.2f kN/m²\n", in.DeadLoad)
	fmt.Fprintf(tw, "  Requested slab:\t%s\n", in.Slab)
	tw.Flush()
	fmt.Fprintln(w)

	heading(w, "MEMBER SIZES:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Column (%s):\t%.0f mm\n", res.Selection.Column, float64(res.Column.Size))
	if res.Column.Weight > 0 {
		fmt.Fprintf(tw, "  Column weight:\t%.2f t\n", float64(res.Column.Weight))
	}
	fmt.Fprintf(tw, "  Axial load:\t%.1f kN\n", res.Column.AxialLoad)
	fmt.Fprintf(tw, "  Slab (%s):\t%.0f mm\n", res.Slab.Slab, float64(res.Slab.Thickness))
	if res.Slab.TendonSpacing > 0 {
		fmt.Fprintf(tw, "  Max tendon spacing:\t%.0f mm (%d tendons)\n", float64(res.Slab.TendonSpacing), res.Slab.TendonCount)
	}
	if res.Slab.HollowCoreThickness > 0 {
		fmt.Fprintf(tw, "  Hollow-core unit:\t%.0f mm at %.2f m span\n", float64(res.Slab.HollowCoreThickness), float64(res.Slab.LookupSpan))
	}
	fmt.Fprintf(tw, "  Beam S1:\t%s\n", section(res.Beams.S1))
	fmt.Fprintf(tw, "  Beam S2:\t%s\n", section(res.Beams.S2))
	fmt.Fprintf(tw, "  Beam S3:\t%s\n", section(res.Beams.S3))
	tw.Flush()
	fmt.Fprintln(w)

	q := res.Quantities
	heading(w, "GRID:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Bays:\t%d x %d\n", q.BaysX, q.BaysY)
	fmt.Fprintf(tw, "  Columns:\t%d\n", q.Columns)
	fmt.Fprintf(tw, "  Beams (S1 / S2 / S3):\t%d / %d / %d\n", q.BeamsS1, q.BeamsS2, q.BeamsS3)
	tw.Flush()
	fmt.Fprintln(w)

	list(w, "DESIGN:", quantity.DesignLabels, res.Outputs.Design)
	list(w, "EQUIPMENT:", quantity.EquipmentLabels, res.Outputs.Equipment)
	list(w, "UTILITY:", quantity.UtilityLabels, res.Outputs.Utility)
	list(w, "MANPOWER:", quantity.ManpowerLabels, res.Outputs.Manpower)

	heading(w, "CRANE CYCLE:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Crane hours per floor:\t%.2f h\n", q.CraneHours)
	fmt.Fprintf(tw, "  Floor cycle:\t%d days\n", q.FloorCycleDays)
	fmt.Fprintf(tw, "  Crane hours per day:\t%.2f h\n", q.CraneHoursPerDay)
	tw.Flush()
	fmt.Fprintln(w)
}

// Batch writes a one-line-per-scenario summary.
func Batch(w io.Writer, items []planner.BatchItem) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     BATCH SUMMARY - %d scenarios\n", len(items))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tScenario\tSlab\tColumn\tCranes\tMandays\tProductivity\tStatus")
	for _, it := range items {
		if it.Result == nil {
			fmt.Fprintf(tw, "  %d\t%s\t-\t-\t-\t-\t-\t%s\n", it.Index+1, it.Name, it.Err)
			continue
		}
		r := it.Result
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%.0f mm\t%d\t%.1f\t%.3f\tok\n",
			it.Index+1, it.Name, r.Slab.Slab, float64(r.Column.Size),
			r.Quantities.TowerCranes, r.Outputs.Manpower[0], r.Outputs.Manpower[1])
	}
	tw.Flush()
	fmt.Fprintln(w)

	if chart := mandaysChart(items); chart != "" {
		fmt.Fprintln(w, chart)
		fmt.Fprintln(w)
	}
}

// mandaysChart plots total mandays against scenario order. It needs two
// successful scenarios.
func mandaysChart(items []planner.BatchItem) string {
	var series []float64
	for _, it := range items {
		if it.Result != nil {
			series = append(series, it.Result.Outputs.Manpower[0])
		}
	}
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Offset(4),
		asciigraph.Caption("Total mandays per scenario"))
}

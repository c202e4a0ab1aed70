package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/quantity"
)

// Workbook sheet names.
const (
	ResultsSheet = "Results"
	MembersSheet = "Members"
	OutputsSheet = "Outputs"
)

var (
	resultsHeader = append([]string{"#", "Scenario", "Column System", "Beam System", "Slab System", "Status"}, quantity.FieldNames...)
	membersHeader = []string{
		"#", "Scenario", "Column (mm)", "Column Weight (t)", "Slab (mm)", "Tendon Spacing (mm)",
		"Hollow-Core (mm)", "S1 b (mm)", "S1 d (mm)", "S2 b (mm)", "S2 d (mm)", "S3 b (mm)", "S3 d (mm)",
	}
	outputsHeader = []string{"#", "Scenario", "List", "Item", "Value"}
)

// Items wraps single results as batch items so they share the workbook layout.
func Items(results ...*planner.Result) []planner.BatchItem {
	items := make([]planner.BatchItem, len(results))
	for i, r := range results {
		items[i] = planner.BatchItem{Index: i, Name: r.Input.Name, Result: r}
	}
	return items
}

// NewWorkbook lays the items out on three sheets: every quantity field per
// scenario, member sizes, and the labelled output lists.
func NewWorkbook(items []planner.BatchItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return nil, err
	}
	for _, name := range []string{MembersSheet, OutputsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for sheet, header := range map[string][]string{
		ResultsSheet: resultsHeader,
		MembersSheet: membersHeader,
		OutputsSheet: outputsHeader,
	} {
		if err := writeRow(f, sheet, 1, header); err != nil {
			return nil, err
		}
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, err
		}
	}

	outRow := 2
	for i, it := range items {
		row := i + 2
		n := it.Index + 1
		if it.Result == nil {
			if err := writeRow(f, ResultsSheet, row, []any{n, it.Name, "", "", "", it.Err}); err != nil {
				return nil, err
			}
			continue
		}
		r := it.Result

		cells := []any{n, it.Name, r.Selection.Column.String(), r.Selection.Beam.String(), r.Selection.Slab.String(), "ok"}
		for _, fld := range r.Outputs.All {
			cells = append(cells, fld.Value)
		}
		if err := writeRow(f, ResultsSheet, row, cells); err != nil {
			return nil, err
		}

		b := r.Beams
		if err := writeRow(f, MembersSheet, row, []any{
			n, it.Name, float64(r.Column.Size), float64(r.Column.Weight), float64(r.Slab.Thickness),
			float64(r.Slab.TendonSpacing), float64(r.Slab.HollowCoreThickness),
			float64(b.S1.Width), float64(b.S1.Depth), float64(b.S2.Width), float64(b.S2.Depth),
			float64(b.S3.Width), float64(b.S3.Depth),
		}); err != nil {
			return nil, err
		}

		for _, l := range []struct {
			name   string
			labels []string
			values []float64
		}{
			{"Design", quantity.DesignLabels, r.Outputs.Design},
			{"Equipment", quantity.EquipmentLabels, r.Outputs.Equipment},
			{"Utility", quantity.UtilityLabels, r.Outputs.Utility},
			{"Manpower", quantity.ManpowerLabels, r.Outputs.Manpower},
		} {
			for j, v := range l.values {
				if err := writeRow(f, OutputsSheet, outRow, []any{n, it.Name, l.name, l.labels[j], v}); err != nil {
					return nil, err
				}
				outRow++
			}
		}
	}
	return f, nil
}

func writeRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// WriteWorkbook writes the workbook of items to w.
func WriteWorkbook(w io.Writer, items []planner.BatchItem) error {
	f, err := NewWorkbook(items)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook of items to path.
func SaveWorkbook(path string, items []planner.BatchItem) error {
	f, err := NewWorkbook(items)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

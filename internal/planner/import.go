package planner

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

// ScenarioColumns is the header row of a scenario workbook. floor_height,
// dead_load and name may be left blank.
var ScenarioColumns = []string{
	"name", "s1", "s2", "live_load", "length", "width", "floor_height", "dead_load", "column", "beam", "slab",
}

// ReadScenariosXLSX reads one scenario per row from the first sheet of a
// workbook. Columns are matched by header name; blank rows are skipped.
func ReadScenariosXLSX(r io.Reader) ([]Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("scenario sheet is empty")
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"s1", "s2", "live_load", "length", "width", "column", "beam", "slab"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("scenario sheet: missing column %q", col)
		}
	}

	var inputs []Input
	for n, row := range rows[1:] {
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		if strings.Join(row, "") == "" {
			continue
		}
		in, err := parseScenarioRow(cell)
		if err != nil {
			return nil, fmt.Errorf("scenario row %d: %w", n+2, err)
		}
		if in.Name == "" {
			in.Name = fmt.Sprintf("row %d", n+2)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func parseScenarioRow(cell func(string) string) (Input, error) {
	num := func(col string, optional bool) (float64, error) {
		s := cell(col)
		if s == "" && optional {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", col, s)
		}
		return v, nil
	}

	var vals [7]float64
	for i, col := range []string{"s1", "s2", "live_load", "length", "width", "floor_height", "dead_load"} {
		v, err := num(col, i >= 5)
		if err != nil {
			return Input{}, err
		}
		vals[i] = v
	}

	return Input{
		Name:        cell("name"),
		S1:          units.Meters(vals[0]),
		S2:          units.Meters(vals[1]),
		LiveLoad:    vals[2],
		Length:      units.Meters(vals[3]),
		Width:       units.Meters(vals[4]),
		FloorHeight: units.Meters(vals[5]),
		DeadLoad:    vals[6],
		Column:      system.Column(cell("column")),
		Beam:        system.Beam(cell("beam")),
		Slab:        system.Slab(cell("slab")),
	}, nil
}

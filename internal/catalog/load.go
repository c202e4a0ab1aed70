package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/units"
)

//go:embed data/productivity.csv
var defaultProductivity []byte

//go:embed data/hollowcore.csv
var defaultHollowCore []byte

// DefaultProductivity returns the embedded productivity table.
func DefaultProductivity() (*ProductivityTable, error) {
	return ReadProductivityCSV(bytes.NewReader(defaultProductivity))
}

// DefaultCapacity returns the embedded hollow-core catalog.
func DefaultCapacity() (*CapacityTable, error) {
	return ReadCapacityCSV(bytes.NewReader(defaultHollowCore))
}

// LoadProductivity reads a productivity table from a .csv or .xlsx file.
// An empty path returns the embedded table.
func LoadProductivity(path string) (*ProductivityTable, error) {
	if path == "" {
		return DefaultProductivity()
	}
	rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseProductivity(rows)
}

// LoadCapacity reads a hollow-core catalog from a .csv or .xlsx file.
// An empty path returns the embedded catalog.
func LoadCapacity(path string) (*CapacityTable, error) {
	if path == "" {
		return DefaultCapacity()
	}
	rows, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseCapacity(rows)
}

// ReadProductivityCSV parses a category,manhour[,unit] CSV with a header row.
func ReadProductivityCSV(r io.Reader) (*ProductivityTable, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parseProductivity(rows)
}

// ReadProductivityXLSX parses the first sheet of a workbook with the same columns as the CSV.
func ReadProductivityXLSX(r io.Reader) (*ProductivityTable, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return parseProductivity(rows)
}

// ReadCapacityCSV parses a width_class,span_m,load_kn_m2,thickness_mm CSV with a header row.
func ReadCapacityCSV(r io.Reader) (*CapacityTable, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parseCapacity(rows)
}

// ReadCapacityXLSX parses the first sheet of a workbook with the same columns as the CSV.
func ReadCapacityXLSX(r io.Reader) (*CapacityTable, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return parseCapacity(rows)
}

func parseProductivity(rows [][]string) (*ProductivityTable, error) {
	h, err := newHeader(rows, "category", "manhour")
	if err != nil {
		return nil, fmt.Errorf("productivity table: %w", err)
	}
	var rates []Rate
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		mh, err := h.float(row, "manhour")
		if err != nil {
			return nil, fmt.Errorf("productivity row %d: %w", i+1, err)
		}
		rates = append(rates, Rate{
			Category: h.get(row, "category"),
			Manhour:  mh,
			Unit:     h.get(row, "unit"),
		})
	}
	return NewProductivityTable(rates)
}

func parseCapacity(rows [][]string) (*CapacityTable, error) {
	h, err := newHeader(rows, "width_class", "span_m", "load_kn_m2", "thickness_mm")
	if err != nil {
		return nil, fmt.Errorf("hollow-core catalog: %w", err)
	}
	var products []Product
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		var vals [4]float64
		for j, col := range []string{"width_class", "span_m", "load_kn_m2", "thickness_mm"} {
			if vals[j], err = h.float(row, col); err != nil {
				return nil, fmt.Errorf("hollow-core row %d: %w", i+1, err)
			}
		}
		products = append(products, Product{
			WidthClass: vals[0],
			Span:       vals[1],
			Load:       vals[2],
			Thickness:  units.Millimeters(vals[3]),
		})
	}
	return NewCapacityTable(products)
}

func readFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(f)
	case ".xlsx":
		return readXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported table format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

// header maps lower-cased column names to their index.
type header map[string]int

func newHeader(rows [][]string, required ...string) (header, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty table")
	}
	h := header{}
	for i, name := range rows[0] {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, r := range required {
		if _, ok := h[r]; !ok {
			return nil, fmt.Errorf("missing column %q", r)
		}
	}
	return h, nil
}

func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (h header) float(row []string, col string) (float64, error) {
	s := h.get(row, col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

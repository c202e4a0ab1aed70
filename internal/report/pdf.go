package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/quantity"
)

// The core PDF fonts are Latin-1; labels carrying ² or ³ are translated.
func pdfText(pdf *gofpdf.Fpdf, s string) string {
	return pdf.UnicodeTranslatorFromDescriptor("")(s)
}

func pdfTitle(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(190, 9, pdfText(pdf, text), "1", 1, "C", true, 0, "")
	pdf.SetFillColor(255, 255, 255)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
}

func pdfRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(120, 6, pdfText(pdf, label), "1", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, pdfText(pdf, value), "1", 1, "R", false, 0, "")
}

func pdfList(pdf *gofpdf.Fpdf, title string, labels []string, values []float64) {
	pdf.Ln(3)
	pdfTitle(pdf, title)
	for i, v := range values {
		pdfRow(pdf, labels[i], listFormat(v))
	}
}

// PDF renders a one-page summary of a result: inputs, member sizes and the
// four output lists.
func PDF(res *planner.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("DfMA building scheme", true)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "DfMA Building Scheme")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	if res.Input.Name != "" {
		pdf.Cell(0, 5, pdfText(pdf, "Scenario: "+res.Input.Name))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, pdfText(pdf, fmt.Sprintf("System: %s", res.Selection)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Profile: %s    Run: %s", res.Profile, res.ID))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	in := res.Input
	pdfTitle(pdf, "Inputs")
	pdfRow(pdf, "Grid S1 x S2", fmt.Sprintf("%.2f x %.2f m", float64(in.S1), float64(in.S2)))
	pdfRow(pdf, "Building L x W", fmt.Sprintf("%.2f x %.2f m", float64(in.Length), float64(in.Width)))
	pdfRow(pdf, "Floor height", fmt.Sprintf("%.2f m", float64(in.FloorHeight)))
	pdfRow(pdf, "Live load", fmt.Sprintf("%.2f kN/m²", in.LiveLoad))

	pdf.Ln(3)
	pdfTitle(pdf, "Member Sizes")
	pdfRow(pdf, "Column", fmt.Sprintf("%.0f mm", float64(res.Column.Size)))
	pdfRow(pdf, "Slab", fmt.Sprintf("%s, %.0f mm", res.Slab.Slab, float64(res.Slab.Thickness)))
	if res.Slab.TendonSpacing > 0 {
		pdfRow(pdf, "Max tendon spacing", fmt.Sprintf("%.0f mm", float64(res.Slab.TendonSpacing)))
	}
	if res.Slab.HollowCoreThickness > 0 {
		pdfRow(pdf, "Hollow-core unit", fmt.Sprintf("%.0f mm", float64(res.Slab.HollowCoreThickness)))
	}
	pdfRow(pdf, "Beam S1", section(res.Beams.S1))
	pdfRow(pdf, "Beam S2", section(res.Beams.S2))
	pdfRow(pdf, "Beam S3", section(res.Beams.S3))

	pdfList(pdf, "Design", quantity.DesignLabels, res.Outputs.Design)
	pdfList(pdf, "Equipment", quantity.EquipmentLabels, res.Outputs.Equipment)
	pdfList(pdf, "Utility", quantity.UtilityLabels, res.Outputs.Utility)
	pdfList(pdf, "Manpower", quantity.ManpowerLabels, res.Outputs.Manpower)
	return pdf
}

// WritePDF writes the PDF summary of res to w.
func WritePDF(w io.Writer, res *planner.Result) error {
	pdf := PDF(res)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF summary of res to path.
func SavePDF(path string, res *planner.Result) error {
	pdf := PDF(res)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

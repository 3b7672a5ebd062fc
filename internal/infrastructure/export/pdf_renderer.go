// Package export renders quotes to printable documents.
package export

import (
	"bytes"
	"fmt"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/domain/money"
	"eventos_api/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer draws a single A4 page per quote; long item lists flow onto extra pages.
type PDFRenderer struct {
	companyName string
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(companyName string) *PDFRenderer {
	return &PDFRenderer{companyName: companyName}
}

func (r *PDFRenderer) RenderQuote(q entities.Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote "+q.ID, true)
	pdf.SetAuthor(r.companyName, true)
	// Core fonts are cp1252; accents in names and addresses need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(r.companyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Quote "+q.ID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	field := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(value), "", "L", false)
	}
	field("Customer", q.CustomerName)
	field("E-mail", q.Email)
	field("Phone", q.Phone)
	field("Event", q.EventType)
	field("Date", q.EventDate)
	if q.StartTime != "" && q.EndTime != "" {
		field("Time", fmt.Sprintf("%s - %s", q.StartTime, q.EndTime))
	}
	field("Theme", q.Theme)
	field("Venue", q.VenueAddress)
	field("Address", joinNonEmpty(q.StreetAddress, q.Neighborhood))
	pdf.Ln(4)

	widths := []float64{40, 75, 15, 30, 30}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range []string{"Category", "Item", "Qty", "Unit price", "Subtotal"} {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.CellFormat(widths[0], 7, tr(it.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(it.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, money.Format(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, money.Format(it.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, money.Format(q.Total), "1", 1, "R", false, 0, "")

	if q.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("Notes: "+q.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote %s: %w", q.ID, err)
	}
	return buf.Bytes(), nil
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}

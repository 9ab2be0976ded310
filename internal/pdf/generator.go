package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ledgerline/quoting/internal/pricing"
	"github.com/ledgerline/quoting/internal/quotes"
)

// Generate renders a one-page quote summary: client header, one row per
// included service, and the combined totals.
func Generate(q quotes.Quote, totals pricing.DisplayTotals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Services Quote", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Services Quote")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s - %s", q.ID, q.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(6)

	client := q.ClientName
	if q.Company != "" {
		client = fmt.Sprintf("%s (%s)", q.ClientName, q.Company)
	}
	pdf.Cell(0, 6, "Prepared for: "+client)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Service")
	pdf.Cell(40, 7, "Monthly")
	pdf.Cell(40, 7, "One-Time")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range totals.Lines() {
		pdf.Cell(100, 6, line.Label)
		pdf.Cell(40, 6, dollars(line.MonthlyFee))
		pdf.Cell(40, 6, dollars(line.SetupFee))
		pdf.Ln(6)
	}

	if totals.PackageDiscountMonthly > 0 {
		pdf.Cell(100, 6, "Bookkeeping + Tax bundle discount")
		pdf.Cell(40, 6, fmt.Sprintf("-$%d/mo", totals.PackageDiscountMonthly))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Total")
	pdf.Cell(40, 7, dollars(totals.TotalMonthlyFee))
	pdf.Cell(40, 7, dollars(totals.TotalSetupFee))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Monthly fees recur each month of service; one-time fees are billed at signing.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func dollars(v int) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("$%d", v)
}

package vacation

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteLedgerPDF renders an employee's yearly vacation ledger. The caller
// provides an already-refreshed balance and the matching records.
func WriteLedgerPDF(w io.Writer, employeeName string, year int, bal Balance, records []Request) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Vacation Ledger %d", year))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowance: %.2f days", bal.TotalDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Used: %.2f days", bal.UsedDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %.2f days", bal.AvailableDays()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Sick: %.2f days, Comp: %.2f days", bal.SickDays, bal.CompDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(50, 8, "Category")
	pdf.Cell(40, 8, "Start")
	pdf.Cell(40, 8, "End")
	pdf.Cell(40, 8, "Status")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, rec := range records {
		pdf.Cell(50, 7, rec.Category.String())
		pdf.Cell(40, 7, rec.StartAt.Format("2006-01-02"))
		pdf.Cell(40, 7, rec.EndAt.Format("2006-01-02"))
		pdf.Cell(40, 7, rec.Approval.String())
		pdf.Ln(7)
	}

	return pdf.Output(w)
}

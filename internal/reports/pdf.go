package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin   = 40.0
	pdfLineStep = 20.0
)

// PDF renders the table as a plain paginated text document: the title on
// the first line, then one pipe-delimited line per record. A new page
// starts when the cursor passes the bottom margin.
func PDF(table Table) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	_, pageHeight := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	y := pdfMargin
	pdf.Text(30, y, table.Title)
	y += pdfLineStep + 10

	for _, row := range table.Rows {
		if y > pageHeight-pdfMargin {
			pdf.AddPage()
			y = pdfMargin
		}
		pdf.Text(30, y, rowLine(row))
		y += pdfLineStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// rowLine formats a record as "first: second | third | ...", mirroring the
// weekly report's line layout.
func rowLine(row []interface{}) string {
	if len(row) == 0 {
		return ""
	}

	fields := make([]string, 0, len(row)-1)
	for _, cell := range row[1:] {
		fields = append(fields, fmt.Sprint(cell))
	}
	return fmt.Sprintf("%v: %s", row[0], strings.Join(fields, " | "))
}

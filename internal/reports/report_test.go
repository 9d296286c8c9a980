package reports

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Weekly Sales Report",
		Sheet:   "Weekly Sales",
		Headers: []string{"ID", "Product Name", "Quantity", "Total Price", "Date"},
		Rows: [][]interface{}{
			{1, "Widget", 3, 12.0, "2025-03-10 14:30:45"},
			{2, "Gadget", 1, 4.5, "2025-03-11 09:15:00"},
		},
	}
}

func TestExcel_RoundTrip(t *testing.T) {
	content, err := Excel(sampleTable())
	assert.NoError(t, err)
	assert.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Weekly Sales")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Product Name", "Quantity", "Total Price", "Date"}, rows[0])
	assert.Equal(t, "Widget", rows[1][1])
	assert.Equal(t, "Gadget", rows[2][1])
}

func TestExcel_EmptyTable(t *testing.T) {
	content, err := Excel(Table{Sheet: "Employees", Headers: []string{"ID", "Name"}})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	assert.NoError(t, err)
	assert.Len(t, rows, 1, "only the header row")
}

func TestPDF_Renders(t *testing.T) {
	content, err := PDF(sampleTable())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "expected a PDF header")
}

func TestPDF_Paginates(t *testing.T) {
	table := sampleTable()
	table.Rows = nil
	for i := 0; i < 100; i++ {
		table.Rows = append(table.Rows, []interface{}{i, fmt.Sprintf("Product %d", i), 1, 1.0, "2025-03-10 00:00:00"})
	}

	small, err := PDF(sampleTable())
	assert.NoError(t, err)
	big, err := PDF(table)
	assert.NoError(t, err)

	// 100 rows at 20pt per line cannot fit a single Letter page.
	marker := []byte("/Type /Page")
	assert.Greater(t, bytes.Count(big, marker), bytes.Count(small, marker))
}

func TestRender_Dispatch(t *testing.T) {
	doc, err := Render("excel", sampleTable())
	assert.NoError(t, err)
	assert.Equal(t, "xlsx", doc.Extension)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", doc.ContentType)

	doc, err = Render("pdf", sampleTable())
	assert.NoError(t, err)
	assert.Equal(t, "pdf", doc.Extension)
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	for _, format := range []string{"xml", "csv", "", "EXCEL"} {
		_, err := Render(format, sampleTable())
		assert.ErrorIs(t, err, ErrUnsupportedFormat, format)
	}
}

func TestRowLine(t *testing.T) {
	line := rowLine([]interface{}{1, "Widget", "Qty: 3", 12.0})
	assert.Equal(t, "1: Widget | Qty: 3 | 12", line)
}

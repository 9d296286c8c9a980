// Package reports turns ordered tabular data into downloadable documents.
// Each export is a single stateless transformation; nothing is persisted.
package reports

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for any format outside {excel, pdf}.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Table is an ordered dataset ready for export. Rows are emitted in the
// order given, one line or sheet row per record.
type Table struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]interface{}
}

// Document is a rendered export ready to be served as an attachment.
type Document struct {
	Content     []byte
	ContentType string
	Extension   string
}

// Render dispatches on the requested format.
func Render(format string, table Table) (*Document, error) {
	switch format {
	case "excel":
		content, err := Excel(table)
		if err != nil {
			return nil, err
		}
		return &Document{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Extension:   "xlsx",
		}, nil
	case "pdf":
		content, err := PDF(table)
		if err != nil {
			return nil, err
		}
		return &Document{
			Content:     content,
			ContentType: "application/pdf",
			Extension:   "pdf",
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

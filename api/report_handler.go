package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/employees"
	"bizdesk/internal/reports"
	"bizdesk/internal/sales"
)

// reportHandler serves the downloadable exports: the full employee table
// and the trailing-7-day sales report.
type reportHandler struct {
	sales     *sales.Service
	employees *employees.Service
	logger    *zap.Logger
}

func newReportHandler(sls *sales.Service, emp *employees.Service, logger *zap.Logger) *reportHandler {
	return &reportHandler{sales: sls, employees: emp, logger: logger}
}

func (h *reportHandler) exportEmployees(c *gin.Context) {
	all, err := h.employees.List()
	if err != nil {
		h.logger.Error("failed to load employees for export", zap.Error(err))
		setFlash(c, "danger", "Could not export employees.")
		c.Redirect(http.StatusFound, "/employees")
		return
	}

	rows := make([][]interface{}, 0, len(all))
	for _, e := range all {
		rows = append(rows, []interface{}{e.ID, e.Name, e.Email, e.Position, e.DateJoined.Format(employees.TimeFormat)})
	}

	table := reports.Table{
		Title:   "Employees",
		Sheet:   "Employees",
		Headers: []string{"ID", "Name", "Email", "Position", "Date Joined"},
		Rows:    rows,
	}

	h.serve(c, c.Param("format"), table, "employees")
}

func (h *reportHandler) downloadReport(c *gin.Context) {
	week, err := h.sales.LastWeek()
	if err != nil {
		h.logger.Error("failed to load weekly sales for export", zap.Error(err))
		setFlash(c, "danger", "Could not generate the weekly report.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	rows := make([][]interface{}, 0, len(week))
	for _, s := range week {
		rows = append(rows, []interface{}{s.ID, s.ProductName, s.Quantity, s.TotalPrice, s.Date.Format(sales.TimeFormat)})
	}

	table := reports.Table{
		Title:   "Weekly Sales Report",
		Sheet:   "Weekly Sales",
		Headers: []string{"ID", "Product Name", "Quantity", "Total Price", "Date"},
		Rows:    rows,
	}

	h.serve(c, c.Param("report_type"), table, "weekly_sales_report")
}

// serve renders the table in the requested format and ships it as an
// attachment. An unknown format produces no file.
func (h *reportHandler) serve(c *gin.Context, format string, table reports.Table, basename string) {
	doc, err := reports.Render(format, table)
	if err != nil {
		if errors.Is(err, reports.ErrUnsupportedFormat) {
			setFlash(c, "danger", "Invalid report type!")
		} else {
			h.logger.Error("failed to render report", zap.String("format", format), zap.Error(err))
			setFlash(c, "danger", "Could not generate the report.")
		}
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", basename, doc.Extension))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

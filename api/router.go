package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/auth"
	"bizdesk/internal/employees"
	"bizdesk/internal/inventory"
	"bizdesk/internal/sales"
)

// Deps carries everything the route layer needs. Tests inject in-memory
// storage backends through the same structure.
type Deps struct {
	Logger    *zap.Logger
	Auth      *auth.Authenticator
	Tokens    *auth.TokenManager
	Inventory *inventory.Service
	Sales     *sales.Service
	Employees *employees.Service
}

// InitRoutes binds every page and export route on the given Gin engine.
// Inventory mutations are admin-gated; everything past login requires a
// valid session.
func InitRoutes(e *gin.Engine, d Deps) {
	authH := newAuthHandler(d.Auth, d.Tokens, d.Inventory, d.Sales, d.Employees, d.Logger)
	invH := newInventoryHandler(d.Inventory, d.Logger)
	salesH := newSalesHandler(d.Sales, d.Logger)
	empH := newEmployeeHandler(d.Employees, d.Logger)
	reportH := newReportHandler(d.Sales, d.Employees, d.Logger)

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	e.GET("/login", authH.showLogin)
	e.POST("/login", authH.handleLogin)

	protected := e.Group("/", RequireAuth(d.Tokens))

	protected.GET("/logout", authH.handleLogout)
	protected.GET("/dashboard", authH.showDashboard)

	protected.GET("/inventory", invH.list)
	protected.GET("/add_item", RequireAdmin("Only admin can add items."), invH.showAdd)
	protected.POST("/add_item", RequireAdmin("Only admin can add items."), invH.handleAdd)
	protected.GET("/edit_item/:id", RequireAdmin("Only admin can edit items."), invH.showEdit)
	protected.POST("/edit_item/:id", RequireAdmin("Only admin can edit items."), invH.handleEdit)
	protected.POST("/delete_item/:id", RequireAdmin("Only admin can delete items."), invH.handleDelete)

	protected.GET("/sales", salesH.list)
	protected.GET("/add_sale", salesH.showAdd)
	protected.POST("/add_sale", salesH.handleAdd)

	protected.GET("/employees", empH.list)
	protected.GET("/add_employee", empH.showAdd)
	protected.POST("/add_employee", empH.handleAdd)

	protected.GET("/export/employees/:format", reportH.exportEmployees)
	protected.GET("/download_report/:report_type", reportH.downloadReport)
}

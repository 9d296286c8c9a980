package api

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/auth"
	"bizdesk/internal/employees"
	"bizdesk/internal/inventory"
	"bizdesk/internal/sales"
)

// authHandler serves login, logout, and the dashboard.
type authHandler struct {
	auth      *auth.Authenticator
	tokens    *auth.TokenManager
	inventory *inventory.Service
	sales     *sales.Service
	employees *employees.Service
	logger    *zap.Logger
}

func newAuthHandler(a *auth.Authenticator, tokens *auth.TokenManager, inv *inventory.Service, sls *sales.Service, emp *employees.Service, logger *zap.Logger) *authHandler {
	return &authHandler{auth: a, tokens: tokens, inventory: inv, sales: sls, employees: emp, logger: logger}
}

func (h *authHandler) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

func (h *authHandler) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	role, err := h.auth.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Error("authentication error", zap.Error(err))
		}
		setFlash(c, "danger", "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := h.tokens.Issue(username, role)
	if err != nil {
		h.logger.Error("failed to issue session token", zap.String("username", username), zap.Error(err))
		setFlash(c, "danger", "Login failed, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(sessionCookie, token, int(h.tokens.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *authHandler) handleLogout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *authHandler) showDashboard(c *gin.Context) {
	totalInventory, err := h.inventory.Count()
	if err != nil {
		h.showDashboardError(c, err)
		return
	}
	totalSales, err := h.sales.Count()
	if err != nil {
		h.showDashboardError(c, err)
		return
	}
	totalEmployees, err := h.employees.Count()
	if err != nil {
		h.showDashboardError(c, err)
		return
	}
	totalQuantitySold, err := h.sales.TotalQuantity()
	if err != nil {
		h.showDashboardError(c, err)
		return
	}
	byProduct, err := h.sales.TotalsByProduct()
	if err != nil {
		h.showDashboardError(c, err)
		return
	}

	labels := make([]string, 0, len(byProduct))
	values := make([]int, 0, len(byProduct))
	for _, pt := range byProduct {
		labels = append(labels, pt.ProductName)
		values = append(values, pt.Quantity)
	}
	chart, err := json.Marshal(gin.H{"labels": labels, "values": values})
	if err != nil {
		h.showDashboardError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Flash":             popFlash(c),
		"Username":          currentUsername(c),
		"Role":              currentRole(c),
		"TotalInventory":    totalInventory,
		"TotalSales":        totalSales,
		"TotalEmployees":    totalEmployees,
		"TotalQuantitySold": totalQuantitySold,
		"SalesData":         template.JS(chart),
	})
}

func (h *authHandler) showDashboardError(c *gin.Context, err error) {
	h.logger.Error("failed to assemble dashboard", zap.Error(err))
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Flash":     &Flash{Category: "danger", Message: "Could not load dashboard data."},
		"Username":  currentUsername(c),
		"Role":      currentRole(c),
		"SalesData": template.JS("{}"),
	})
}

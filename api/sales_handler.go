package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/sales"
)

// salesHandler serves the sales ledger pages. Sales are append-only, so
// there are no edit or delete routes.
type salesHandler struct {
	sales  *sales.Service
	logger *zap.Logger
}

func newSalesHandler(sls *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{sales: sls, logger: logger}
}

func (h *salesHandler) list(c *gin.Context) {
	records, err := h.sales.List()
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		setFlash(c, "danger", "Could not load sales.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "sales.html", gin.H{
		"Flash":   popFlash(c),
		"Role":    currentRole(c),
		"Records": records,
	})
}

func (h *salesHandler) showAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "add_sale.html", gin.H{"Flash": popFlash(c)})
}

func (h *salesHandler) handleAdd(c *gin.Context) {
	productName := c.PostForm("product_name")
	quantity, qErr := strconv.Atoi(c.PostForm("quantity"))
	price, pErr := strconv.ParseFloat(c.PostForm("price"), 64)
	if qErr != nil || pErr != nil {
		setFlash(c, "danger", "Quantity and price must be numbers.")
		c.Redirect(http.StatusFound, "/add_sale")
		return
	}

	if _, err := h.sales.Record(productName, quantity, price); err != nil {
		if errors.Is(err, sales.ErrInvalidInput) {
			setFlash(c, "danger", err.Error())
		} else {
			h.logger.Error("failed to record sale", zap.Error(err))
			setFlash(c, "danger", "Something went wrong, please try again.")
		}
		c.Redirect(http.StatusFound, "/add_sale")
		return
	}

	setFlash(c, "success", "Sale recorded!")
	c.Redirect(http.StatusFound, "/sales")
}

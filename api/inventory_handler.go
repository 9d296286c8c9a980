package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/inventory"
)

// inventoryHandler serves the admin-gated inventory CRUD pages.
type inventoryHandler struct {
	inventory *inventory.Service
	logger    *zap.Logger
}

func newInventoryHandler(inv *inventory.Service, logger *zap.Logger) *inventoryHandler {
	return &inventoryHandler{inventory: inv, logger: logger}
}

func (h *inventoryHandler) list(c *gin.Context) {
	items, err := h.inventory.List()
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		setFlash(c, "danger", "Could not load inventory.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Flash": popFlash(c),
		"Role":  currentRole(c),
		"Items": items,
	})
}

func (h *inventoryHandler) showAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "add_item.html", gin.H{"Flash": popFlash(c)})
}

func (h *inventoryHandler) handleAdd(c *gin.Context) {
	name, quantity, price, ok := h.itemForm(c, "/add_item")
	if !ok {
		return
	}

	if _, err := h.inventory.Add(name, quantity, price); err != nil {
		h.itemError(c, err, "/add_item")
		return
	}

	setFlash(c, "success", "Item added successfully!")
	c.Redirect(http.StatusFound, "/inventory")
}

func (h *inventoryHandler) showEdit(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.inventory.Get(id)
	if err != nil {
		h.itemError(c, err, "/inventory")
		return
	}

	c.HTML(http.StatusOK, "edit_item.html", gin.H{
		"Flash": popFlash(c),
		"Item":  item,
	})
}

func (h *inventoryHandler) handleEdit(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	name, quantity, price, formOK := h.itemForm(c, "/edit_item/"+c.Param("id"))
	if !formOK {
		return
	}

	if _, err := h.inventory.Update(id, name, quantity, price); err != nil {
		h.itemError(c, err, "/inventory")
		return
	}

	setFlash(c, "success", "Item updated successfully!")
	c.Redirect(http.StatusFound, "/inventory")
}

func (h *inventoryHandler) handleDelete(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	if err := h.inventory.Remove(id); err != nil {
		h.itemError(c, err, "/inventory")
		return
	}

	setFlash(c, "success", "Item deleted successfully!")
	c.Redirect(http.StatusFound, "/inventory")
}

// itemID parses the :id path parameter, redirecting with a flash when it
// is not a number.
func (h *inventoryHandler) itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		setFlash(c, "danger", "Item not found.")
		c.Redirect(http.StatusFound, "/inventory")
		return 0, false
	}
	return uint(id), true
}

// itemForm parses the shared add/edit form fields. Malformed numbers are a
// user input error, not a fault.
func (h *inventoryHandler) itemForm(c *gin.Context, backTo string) (string, int, float64, bool) {
	name := c.PostForm("item_name")
	quantity, qErr := strconv.Atoi(c.PostForm("quantity"))
	price, pErr := strconv.ParseFloat(c.PostForm("price"), 64)
	if qErr != nil || pErr != nil {
		setFlash(c, "danger", "Quantity and price must be numbers.")
		c.Redirect(http.StatusFound, backTo)
		return "", 0, 0, false
	}
	return name, quantity, price, true
}

func (h *inventoryHandler) itemError(c *gin.Context, err error, backTo string) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		setFlash(c, "danger", "Item not found.")
	case errors.Is(err, inventory.ErrInvalidInput):
		setFlash(c, "danger", err.Error())
	default:
		h.logger.Error("inventory operation failed", zap.Error(err))
		setFlash(c, "danger", "Something went wrong, please try again.")
	}
	c.Redirect(http.StatusFound, backTo)
}

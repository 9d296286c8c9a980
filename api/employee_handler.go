package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizdesk/internal/employees"
)

// employeeHandler serves the employee registry pages. Records are
// append-only.
type employeeHandler struct {
	employees *employees.Service
	logger    *zap.Logger
}

func newEmployeeHandler(emp *employees.Service, logger *zap.Logger) *employeeHandler {
	return &employeeHandler{employees: emp, logger: logger}
}

func (h *employeeHandler) list(c *gin.Context) {
	all, err := h.employees.List()
	if err != nil {
		h.logger.Error("failed to list employees", zap.Error(err))
		setFlash(c, "danger", "Could not load employees.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "employees.html", gin.H{
		"Flash":     popFlash(c),
		"Role":      currentRole(c),
		"Employees": all,
	})
}

func (h *employeeHandler) showAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "add_employee.html", gin.H{"Flash": popFlash(c)})
}

func (h *employeeHandler) handleAdd(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	position := c.PostForm("position")

	if _, err := h.employees.Register(name, email, position); err != nil {
		switch {
		case errors.Is(err, employees.ErrEmailTaken):
			setFlash(c, "danger", "An employee with this email already exists.")
		case errors.Is(err, employees.ErrInvalidInput):
			setFlash(c, "danger", err.Error())
		default:
			h.logger.Error("failed to register employee", zap.Error(err))
			setFlash(c, "danger", "Something went wrong, please try again.")
		}
		c.Redirect(http.StatusFound, "/add_employee")
		return
	}

	setFlash(c, "success", "Employee registered successfully!")
	c.Redirect(http.StatusFound, "/employees")
}

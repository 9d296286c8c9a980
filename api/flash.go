package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// Flash is a one-shot message shown on the next rendered page, with a
// category the templates map to a style (success, danger).
type Flash struct {
	Category string
	Message  string
}

func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, category+"|"+message, 60, "/", "", false, true)
}

// popFlash reads and clears the pending flash, if any.
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}

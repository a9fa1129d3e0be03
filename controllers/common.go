package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"banquethall-backend/utils"
)

// hallIDFromQuery reads the ?hall_id= filter. Blank, "all" or garbage means
// no filter (the archive's hall dropdown sends "all").
func hallIDFromQuery(c *gin.Context) *uint {
	raw := strings.TrimSpace(c.Query("hall_id"))
	if raw == "" || raw == "all" {
		return nil
	}
	n := utils.ParseNumericOrDefault(raw, 0)
	if n <= 0 {
		return nil
	}
	id := uint(n)
	return &id
}

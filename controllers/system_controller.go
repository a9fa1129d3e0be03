package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"banquethall-backend/config"
	"banquethall-backend/middleware"
	"banquethall-backend/models"
)

type resetPayload struct {
	Confirm string `json:"confirm"`
}

// ResetSystem wipes the operational data (bills, bookings, shubh dates,
// services, packages) while keeping halls, admins and settings. The body must
// carry confirm:"RESET"; the confirmation lives server-side, not just in the
// client dialog.
func ResetSystem(c *gin.Context) {
	var payload resetPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Confirm != "RESET" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `confirmation required: send {"confirm": "RESET"}`})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Bill{},
			&models.Booking{},
			&models.ShubhDate{},
			&models.Service{},
			&models.Package{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ system reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("⚠️ system reset by admin %q", c.GetString(middleware.ContextUsername))
	c.JSON(http.StatusOK, gin.H{"message": "System reset complete"})
}

package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"banquethall-backend/config"
	"banquethall-backend/models"
)

type settingsPayload struct {
	Language      *string `json:"language"`
	Theme         *string `json:"theme"`
	SignupEnabled *bool   `json:"signup_enabled"`
}

// loadSettings returns the singleton settings row, creating it with defaults
// on first access.
func loadSettings() (models.Setting, error) {
	var setting models.Setting
	err := config.DB.FirstOrCreate(&setting, models.Setting{ID: 1}).Error
	return setting, err
}

func GetSettings(c *gin.Context) {
	setting, err := loadSettings()
	if err != nil {
		log.Printf("❌ loading settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateSettings applies a partial update; omitted fields keep their value.
func UpdateSettings(c *gin.Context) {
	setting, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if payload.Language != nil {
		lang := *payload.Language
		if lang != "en" && lang != "mr" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "language must be en or mr"})
			return
		}
		setting.Language = lang
	}
	if payload.Theme != nil {
		setting.Theme = *payload.Theme
	}
	if payload.SignupEnabled != nil {
		setting.SignupEnabled = *payload.SignupEnabled
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		log.Printf("❌ saving settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, setting)
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"banquethall-backend/config"
	"banquethall-backend/models"
	"banquethall-backend/utils"
)

type hallPayload struct {
	Name          string        `json:"name"`
	NameMr        string        `json:"name_mr"`
	Description   string        `json:"description"`
	DescriptionMr string        `json:"description_mr"`
	Capacity      utils.FlexInt `json:"capacity"`
	ApproxRent    utils.FlexInt `json:"approx_rent"`
	Location      string        `json:"location"`
	ImageURL      string        `json:"image_url"`
	Logo          string        `json:"logo"`
}

func GetHalls(c *gin.Context) {
	var halls []models.Hall
	if err := config.DB.Order("id ASC").Find(&halls).Error; err != nil {
		log.Printf("❌ fetching halls: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, halls)
}

func GetHall(c *gin.Context) {
	var hall models.Hall
	if err := config.DB.First(&hall, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hall not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hall)
}

func UpdateHall(c *gin.Context) {
	var hall models.Hall
	if err := config.DB.First(&hall, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hall not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload hallPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	hall.Name = payload.Name
	hall.NameMr = payload.NameMr
	hall.Description = payload.Description
	hall.DescriptionMr = payload.DescriptionMr
	hall.Capacity = payload.Capacity.Int()
	hall.ApproxRent = payload.ApproxRent.Int()
	hall.Location = payload.Location
	hall.ImageURL = payload.ImageURL
	hall.Logo = payload.Logo

	if err := config.DB.Save(&hall).Error; err != nil {
		log.Printf("❌ updating hall %d: %v", hall.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hall)
}

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

type servicePayload struct {
	HallID        utils.FlexInt `json:"hall_id"`
	Name          string        `json:"name"`
	NameMr        string        `json:"name_mr"`
	Description   string        `json:"description"`
	DescriptionMr string        `json:"description_mr"`
	Price         utils.FlexInt `json:"price"`
	ImageURL      string        `json:"image_url"`
}

func (p servicePayload) toModel() models.Service {
	return models.Service{
		HallID:        uint(p.HallID.Int()),
		Name:          p.Name,
		NameMr:        p.NameMr,
		Description:   p.Description,
		DescriptionMr: p.DescriptionMr,
		Price:         p.Price.Int(),
		ImageURL:      p.ImageURL,
	}
}

func GetServices(c *gin.Context) {
	q := config.DB.Order("id ASC")
	if hallID := hallIDFromQuery(c); hallID != nil {
		q = q.Where("hall_id = ?", *hallID)
	}
	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		log.Printf("❌ fetching services: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

func CreateService(c *gin.Context) {
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if payload.HallID.Int() <= 0 || payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id and name are required"})
		return
	}

	service := payload.toModel()
	if err := config.DB.Create(&service).Error; err != nil {
		log.Printf("❌ creating service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, service)
}

func UpdateService(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	updated := payload.toModel()
	updated.ID = service.ID
	if updated.HallID == 0 {
		updated.HallID = service.HallID
	}
	updated.CreatedAt = service.CreatedAt

	if err := config.DB.Save(&updated).Error; err != nil {
		log.Printf("❌ updating service %d: %v", service.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteService(c *gin.Context) {
	result := config.DB.Delete(&models.Service{}, c.Param("id"))
	if result.Error != nil {
		log.Printf("❌ deleting service %s: %v", c.Param("id"), result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"banquethall-backend/config"
	"banquethall-backend/models"
	"banquethall-backend/utils"
)

type shubhDatePayload struct {
	HallID     utils.FlexInt `json:"hall_id"`
	Date       string        `json:"date"`
	Occasion   string        `json:"occasion"`
	OccasionMr string        `json:"occasion_mr"`
}

func GetShubhDates(c *gin.Context) {
	q := config.DB.Order("date ASC")
	if hallID := hallIDFromQuery(c); hallID != nil {
		q = q.Where("hall_id = ?", *hallID)
	}
	var dates []models.ShubhDate
	if err := q.Find(&dates).Error; err != nil {
		log.Printf("❌ fetching shubh dates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dates)
}

func CreateShubhDate(c *gin.Context) {
	var payload shubhDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if payload.HallID.Int() <= 0 || payload.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id and date are required"})
		return
	}

	shubh := models.ShubhDate{
		HallID:     uint(payload.HallID.Int()),
		Date:       payload.Date,
		Occasion:   payload.Occasion,
		OccasionMr: payload.OccasionMr,
	}
	if err := config.DB.Create(&shubh).Error; err != nil {
		log.Printf("❌ creating shubh date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shubh)
}

func DeleteShubhDate(c *gin.Context) {
	result := config.DB.Delete(&models.ShubhDate{}, c.Param("id"))
	if result.Error != nil {
		log.Printf("❌ deleting shubh date %s: %v", c.Param("id"), result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "shubh date not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shubh date deleted"})
}

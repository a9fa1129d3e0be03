package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"banquethall-backend/config"
	"banquethall-backend/middleware"
	"banquethall-backend/models"
	"banquethall-backend/utils"
)

type adminPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	HallName string `json:"hall_name"`
}

func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Order("id ASC").Find(&admins).Error; err != nil {
		log.Printf("❌ fetching admins: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func CreateAdmin(c *gin.Context) {
	var payload adminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and a password of at least 6 characters are required"})
		return
	}

	var count int64
	config.DB.Model(&models.Admin{}).Where("username = ?", payload.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	admin := models.Admin{
		Username: payload.Username,
		Password: string(hash),
		HallName: payload.HallName,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("❌ creating admin %q: %v", admin.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("✅ admin %q created", admin.Username)
	c.JSON(http.StatusCreated, admin)
}

// DeleteAdmin removes an admin account. An admin cannot delete itself, so
// there is always at least one account left that can log in.
func DeleteAdmin(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	if id <= 0 || uint(id) == c.GetUint(middleware.ContextAdminID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}

	result := config.DB.Delete(&models.Admin{}, id)
	if result.Error != nil {
		log.Printf("❌ deleting admin %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}

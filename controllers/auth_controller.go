package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"banquethall-backend/config"
	"banquethall-backend/middleware"
	"banquethall-backend/models"
	"banquethall-backend/utils"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies admin credentials and issues a bearer token. Auth errors go
// under "detail" so the clients can surface them uniformly.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}
	if payload.Username == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password are required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", payload.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid username or password"})
			return
		}
		log.Printf("❌ login lookup for %q: %v", payload.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		log.Printf("❌ signing token for %q: %v", admin.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		return
	}

	log.Printf("✅ admin %q logged in", admin.Username)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"hall_name": admin.HallName,
		},
	})
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword updates the authenticated admin's own password after
// re-verifying the current one.
func ChangePassword(c *gin.Context) {
	adminID := c.GetUint(middleware.ContextAdminID)

	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}
	if len(payload.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "new password must be at least 6 characters"})
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "admin not found"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "current password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not update password"})
		return
	}
	if err := config.DB.Model(&admin).Update("password", string(hash)).Error; err != nil {
		log.Printf("❌ updating password for admin %d: %v", admin.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not update password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

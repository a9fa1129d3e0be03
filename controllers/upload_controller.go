package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"banquethall-backend/services"
)

// UploadImage accepts a multipart "image" file, stores it with a thumbnail
// and returns the public URLs. An optional "folder" field buckets uploads
// (halls, services, packages); anything else falls back to "misc".
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	switch folder {
	case "halls", "services", "packages":
	default:
		folder = "misc"
	}

	url, thumbURL, err := services.SaveUploadedImage(fileHeader, folder)
	if err != nil {
		log.Printf("❌ saving upload %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not process image", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url, "thumbnail_url": thumbURL})
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"banquethall-backend/config"
	"banquethall-backend/models"
	"banquethall-backend/utils"
)

type packageItemPayload struct {
	Name   string        `json:"name"`
	NameMr string        `json:"name_mr"`
	Price  utils.FlexInt `json:"price"`
}

type customChargePayload struct {
	Label   string        `json:"label"`
	LabelMr string        `json:"label_mr"`
	Amount  utils.FlexInt `json:"amount"`
}

func toCustomCharges(payloads []customChargePayload) []models.CustomCharge {
	charges := make([]models.CustomCharge, 0, len(payloads))
	for _, p := range payloads {
		charges = append(charges, models.CustomCharge{Label: p.Label, LabelMr: p.LabelMr, Amount: p.Amount.Int()})
	}
	return charges
}

type packagePayload struct {
	HallID         utils.FlexInt         `json:"hall_id"`
	PackageType    string                `json:"package_type"`
	Name           string                `json:"name"`
	NameMr         string                `json:"name_mr"`
	Description    string                `json:"description"`
	DescriptionMr  string                `json:"description_mr"`
	Rent           utils.FlexInt         `json:"rent"`
	CustomCharges  []customChargePayload `json:"custom_charges"`
	Items          []packageItemPayload  `json:"items"`
	Images         []string              `json:"images"`
	CatalogueURL   string                `json:"catalogue_url"`
	CatalogueImage string                `json:"catalogue_image"`
	CustomFields   map[string]any        `json:"custom_fields"`
}

func (p packagePayload) toModel() models.Package {
	items := make([]models.PackageItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, models.PackageItem{Name: item.Name, NameMr: item.NameMr, Price: item.Price.Int()})
	}
	packageType := p.PackageType
	if packageType != models.PackageTypeThali {
		packageType = models.PackageTypeNormal
	}
	return models.Package{
		HallID:         uint(p.HallID.Int()),
		PackageType:    packageType,
		Name:           p.Name,
		NameMr:         p.NameMr,
		Description:    p.Description,
		DescriptionMr:  p.DescriptionMr,
		Rent:           p.Rent.Int(),
		CustomCharges:  datatypes.NewJSONSlice(toCustomCharges(p.CustomCharges)),
		Items:          datatypes.NewJSONSlice(items),
		Images:         datatypes.NewJSONSlice(p.Images),
		CatalogueURL:   p.CatalogueURL,
		CatalogueImage: p.CatalogueImage,
		CustomFields:   datatypes.JSONMap(p.CustomFields),
	}
}

func GetPackages(c *gin.Context) {
	q := config.DB.Order("id ASC")
	if hallID := hallIDFromQuery(c); hallID != nil {
		q = q.Where("hall_id = ?", *hallID)
	}
	var packages []models.Package
	if err := q.Find(&packages).Error; err != nil {
		log.Printf("❌ fetching packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packages)
}

func CreatePackage(c *gin.Context) {
	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if payload.HallID.Int() <= 0 || payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id and name are required"})
		return
	}

	pkg := payload.toModel()
	if err := config.DB.Create(&pkg).Error; err != nil {
		log.Printf("❌ creating package: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func UpdatePackage(c *gin.Context) {
	var pkg models.Package
	if err := config.DB.First(&pkg, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	updated := payload.toModel()
	updated.ID = pkg.ID
	if updated.HallID == 0 {
		updated.HallID = pkg.HallID
	}
	updated.CreatedAt = pkg.CreatedAt

	if err := config.DB.Save(&updated).Error; err != nil {
		log.Printf("❌ updating package %d: %v", pkg.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeletePackage(c *gin.Context) {
	result := config.DB.Delete(&models.Package{}, c.Param("id"))
	if result.Error != nil {
		log.Printf("❌ deleting package %s: %v", c.Param("id"), result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PackageTypeNormal = "normal"
	PackageTypeThali  = "thali"
)

// PackageItem is one line of a package's contents. Price is optional:
// thali packages list included dishes without per-item pricing.
type PackageItem struct {
	Name   string `json:"name"`
	NameMr string `json:"name_mr"`
	Price  int    `json:"price,omitempty"`
}

func (p PackageItem) Text(lang string) string {
	return PickLang(lang, p.Name, p.NameMr)
}

// CustomCharge is an extra billed amount with a bilingual label. Shared
// between packages (advertised charges) and saved bills (applied charges).
type CustomCharge struct {
	Label   string `json:"label"`
	LabelMr string `json:"label_mr"`
	Amount  int    `json:"amount"`
}

func (c CustomCharge) Text(lang string) string {
	return PickLang(lang, c.Label, c.LabelMr)
}

type Package struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	HallID        uint   `gorm:"index;column:hall_id" json:"hall_id"`
	PackageType   string `gorm:"size:32;default:normal" json:"package_type"`
	Name          string `gorm:"size:255" json:"name"`
	NameMr        string `gorm:"size:255;column:name_mr" json:"name_mr"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionMr string `gorm:"type:text;column:description_mr" json:"description_mr"`
	Rent          int    `json:"rent"`

	CustomCharges datatypes.JSONSlice[CustomCharge] `gorm:"column:custom_charges" json:"custom_charges"`
	Items         datatypes.JSONSlice[PackageItem]  `json:"items"`
	Images        datatypes.JSONSlice[string]       `json:"images"`

	CatalogueURL   string `gorm:"size:512;column:catalogue_url" json:"catalogue_url"`
	CatalogueImage string `gorm:"size:512" json:"catalogue_image"`

	// Display-label overrides (rent_label, light_label, ...) keyed per form.
	CustomFields datatypes.JSONMap `gorm:"column:custom_fields" json:"custom_fields"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

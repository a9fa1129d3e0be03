package models

import "time"

type Hall struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255" json:"name"`
	NameMr        string `gorm:"size:255;column:name_mr" json:"name_mr"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionMr string `gorm:"type:text;column:description_mr" json:"description_mr"`
	Capacity      int    `json:"capacity"`
	ApproxRent    int    `json:"approx_rent"`

	// Location is a map URL, not an address.
	Location string `gorm:"size:512" json:"location"`
	ImageURL string `gorm:"size:512;column:image_url" json:"image_url"`
	Logo     string `gorm:"size:512" json:"logo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h Hall) LocalName(lang string) string {
	return PickLang(lang, h.Name, h.NameMr)
}

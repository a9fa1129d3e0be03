package models

import "time"

// Service is a catalog item (decoration, catering add-on, ...) owned by a hall.
type Service struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	HallID        uint   `gorm:"index;column:hall_id" json:"hall_id"`
	Name          string `gorm:"size:255" json:"name"`
	NameMr        string `gorm:"size:255;column:name_mr" json:"name_mr"`
	Description   string `gorm:"type:text" json:"description"`
	DescriptionMr string `gorm:"type:text;column:description_mr" json:"description_mr"`
	Price         int    `json:"price"`
	ImageURL      string `gorm:"size:512;column:image_url" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Service) LocalName(lang string) string {
	return PickLang(lang, s.Name, s.NameMr)
}

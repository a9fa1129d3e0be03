package models

import "time"

// ShubhDate marks a calendar day as auspicious (shubh muhurt) for a hall.
// Promotional only: it never blocks booking, and a booking on the same day
// wins in calendar styling.
type ShubhDate struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HallID     uint   `gorm:"index;column:hall_id" json:"hall_id"`
	Date       string `gorm:"size:10;index" json:"date"` // yyyy-MM-dd
	Occasion   string `gorm:"size:255" json:"occasion"`
	OccasionMr string `gorm:"size:255;column:occasion_mr" json:"occasion_mr"`

	CreatedAt time.Time `json:"created_at"`
}

func (s ShubhDate) LocalOccasion(lang string) string {
	return PickLang(lang, s.Occasion, s.OccasionMr)
}

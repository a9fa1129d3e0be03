package models

import "time"

// Setting is the global singleton row: default language, theme, and whether
// new admin signup is open.
type Setting struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Language      string `gorm:"size:8;default:en" json:"language"`
	Theme         string `gorm:"size:32;default:light" json:"theme"`
	SignupEnabled bool   `gorm:"column:signup_enabled" json:"signup_enabled"`

	UpdatedAt time.Time `json:"updated_at"`
}

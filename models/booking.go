package models

import "time"

const BookingStatusBooked = "booked"

// EventTypes is the enumerated set of event categories, stored in Marathi
// as the booking forms present them.
var EventTypes = []string{"लग्न", "साखरपुडा", "सभा (मीटिंग)", "वाढदिवस", "इतर"}

// Booking reserves one calendar day of one hall. Its presence for
// (hall_id, date) is what marks that date unavailable on every calendar.
type Booking struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	HallID uint   `gorm:"index;column:hall_id" json:"hall_id"`
	Date   string `gorm:"size:10;index" json:"date"` // event day, yyyy-MM-dd
	Status string `gorm:"size:32;default:booked" json:"status"`

	CustomerName  string `gorm:"size:255" json:"customer_name"`
	CustomerCity  string `gorm:"size:255" json:"customer_city"`
	CustomerPhone string `gorm:"size:32" json:"customer_phone"`
	EventType     string `gorm:"size:64" json:"event_type"`
	NumGuests     int    `json:"num_guests"`

	BookingTakenBy string `gorm:"size:255;column:booking_taken_by" json:"booking_taken_by"`

	// BookingDate is the day the booking was taken, entered by the admin;
	// optional and distinct from CreatedAt.
	BookingDate string `gorm:"size:10" json:"booking_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicBooking is the public availability view of a booking: date and
// status only, no customer details.
type PublicBooking struct {
	ID     uint   `json:"id"`
	HallID uint   `json:"hall_id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

func (b Booking) Public() PublicBooking {
	return PublicBooking{ID: b.ID, HallID: b.HallID, Date: b.Date, Status: b.Status}
}

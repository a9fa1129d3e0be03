package models

import (
	"time"

	"gorm.io/datatypes"
)

// BillService is the snapshot of a catalog service at billing time, so a
// later price change never rewrites an archived bill.
type BillService struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	NameMr   string `json:"name_mr"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

func (s BillService) Text(lang string) string {
	return PickLang(lang, s.Name, s.NameMr)
}

func (s BillService) Amount() int { return s.Price * s.Quantity }

// ThaliItem is a free-form per-plate catering line (name + rate + quantity),
// entered directly on the bill rather than picked from the catalog.
type ThaliItem struct {
	Name     string `json:"name"`
	NameMr   string `json:"name_mr"`
	Rate     int    `json:"rate"`
	Quantity int    `json:"quantity"`
}

func (t ThaliItem) Text(lang string) string {
	return PickLang(lang, t.Name, t.NameMr)
}

func (t ThaliItem) Amount() int { return t.Rate * t.Quantity }

// Bill is a saved invoice. Immutable once created; the archive only lists,
// exports and deletes.
type Bill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	HallID   uint   `gorm:"index;column:hall_id" json:"hall_id"`
	HallName string `gorm:"size:255" json:"hall_name"`

	CustomerName string `gorm:"size:255" json:"customer_name"`
	CustomerCity string `gorm:"size:255" json:"customer_city"`
	BookingDate  string `gorm:"size:10" json:"booking_date"`
	EventDate    string `gorm:"size:10;index" json:"event_date"`
	NumGuests    int    `json:"num_guests"`
	EventType    string `gorm:"size:64" json:"event_type"`

	Services      datatypes.JSONSlice[BillService]  `json:"services"`
	ThaliItems    datatypes.JSONSlice[ThaliItem]    `gorm:"column:thali_items" json:"thali_items"`
	CustomCharges datatypes.JSONSlice[CustomCharge] `gorm:"column:custom_charges" json:"custom_charges"`

	HallRent         int `gorm:"column:hall_rent" json:"hall_rent"`
	Discount         int `json:"discount"`
	PreBookingAmount int `gorm:"column:pre_booking_amount" json:"pre_booking_amount"`

	TotalAmount int `gorm:"column:total_amount" json:"total_amount"`
	BalanceDue  int `gorm:"column:balance_due" json:"balance_due"`

	// The billing form lets the admin freeze either derived value and type
	// it directly. Both set means no recomputation runs at all.
	ManualTotal   bool `gorm:"column:manual_total" json:"manual_total"`
	ManualBalance bool `gorm:"column:manual_balance" json:"manual_balance"`

	CreatedAt time.Time `json:"created_at"`
}

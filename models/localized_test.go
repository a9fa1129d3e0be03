package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickLang(t *testing.T) {
	tests := []struct {
		name string
		lang string
		en   string
		mr   string
		want string
	}{
		{"english", "en", "Main Hall", "मुख्य सभागृह", "Main Hall"},
		{"marathi", "mr", "Main Hall", "मुख्य सभागृह", "मुख्य सभागृह"},
		{"marathi blank falls back", "mr", "Main Hall", "", "Main Hall"},
		{"unknown lang defaults to english", "hi", "Main Hall", "मुख्य सभागृह", "Main Hall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickLang(tt.lang, tt.en, tt.mr))
		})
	}
}

func TestBillLineAmounts(t *testing.T) {
	svc := BillService{Name: "Decoration", Price: 200, Quantity: 2}
	assert.Equal(t, 400, svc.Amount())

	thali := ThaliItem{Name: "Veg Thali", Rate: 10, Quantity: 150}
	assert.Equal(t, 1500, thali.Amount())
}

func TestBookingPublicView(t *testing.T) {
	b := Booking{
		ID:            9,
		HallID:        2,
		Date:          "2026-12-01",
		Status:        BookingStatusBooked,
		CustomerName:  "Ramesh Patil",
		CustomerPhone: "919812345678",
	}
	p := b.Public()
	assert.Equal(t, uint(9), p.ID)
	assert.Equal(t, uint(2), p.HallID)
	assert.Equal(t, "2026-12-01", p.Date)
	assert.Equal(t, "booked", p.Status)
}

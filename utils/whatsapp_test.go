package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banquethall-backend/models"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("919812345678", "Hello & welcome")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919812345678?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hello & welcome", u.Query().Get("text"))
}

func TestWhatsAppLinkWithoutPhone(t *testing.T) {
	link := WhatsAppLink("", "hi")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
}

func TestBillSummaryMessage(t *testing.T) {
	bill := models.Bill{
		HallName:     "Main Hall",
		CustomerName: "Ramesh Patil",
		EventDate:    "2026-11-25",
		TotalAmount:  123456,
		BalanceDue:   23456,
	}
	msg := BillSummaryMessage(bill)
	assert.Contains(t, msg, "Main Hall")
	assert.Contains(t, msg, "Bill for: Ramesh Patil")
	assert.Contains(t, msg, "Event Date: 2026-11-25")
	assert.Contains(t, msg, "Total Amount: ₹1,23,456")
	assert.Contains(t, msg, "Balance Due: ₹23,456")
}

func TestReminderMessage(t *testing.T) {
	bill := models.Bill{
		HallName:     "Main Hall",
		CustomerName: "Ramesh Patil",
		EventDate:    "2026-11-25",
		BalanceDue:   5400,
	}
	msg := ReminderMessage(bill)
	assert.Contains(t, msg, "Reminder from Main Hall")
	assert.Contains(t, msg, "Dear Ramesh Patil")
	assert.Contains(t, msg, "2026-11-25")
	assert.Contains(t, msg, "₹5,400")
}

package utils

import (
	"fmt"
	"net/url"

	"banquethall-backend/models"
)

// WhatsApp deep links: https://wa.me/<phone>?text=<escaped message>. The
// clients open these directly, so the server only builds the URL and the
// prefilled message. Phone may be empty, in which case WhatsApp asks the
// sender to pick a contact.

func WhatsAppLink(phone, message string) string {
	base := "https://wa.me/"
	if phone != "" {
		base += phone
	}
	return base + "?text=" + url.QueryEscape(message)
}

// BillSummaryMessage is the "share bill" text: hall, customer, event date,
// total and balance.
func BillSummaryMessage(bill models.Bill) string {
	return fmt.Sprintf("%s\n\nBill for: %s\nEvent Date: %s\nTotal Amount: ₹%s\nBalance Due: ₹%s",
		bill.HallName,
		bill.CustomerName,
		bill.EventDate,
		FormatINR(bill.TotalAmount),
		FormatINR(bill.BalanceDue),
	)
}

// ReminderMessage is the payment-reminder text sent for bills with an
// outstanding balance.
func ReminderMessage(bill models.Bill) string {
	return fmt.Sprintf("Reminder from %s\n\nDear %s,\n\nThis is a friendly reminder about your upcoming event on %s.\n\nBalance Due: ₹%s\n\nPlease contact us for any queries.\n\nThank you!",
		bill.HallName,
		bill.CustomerName,
		bill.EventDate,
		FormatINR(bill.BalanceDue),
	)
}

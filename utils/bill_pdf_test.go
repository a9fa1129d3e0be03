package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"banquethall-backend/models"
)

func sampleBill() models.Bill {
	return models.Bill{
		ID:           1,
		HallName:     "Main Hall",
		CustomerName: "Ramesh Patil",
		CustomerCity: "Nashik",
		BookingDate:  "2026-10-01",
		EventDate:    "2026-11-25",
		NumGuests:    300,
		EventType:    "लग्न",
		Services: datatypes.NewJSONSlice([]models.BillService{
			{Name: "Decoration", NameMr: "सजावट", Price: 200, Quantity: 2},
		}),
		ThaliItems: datatypes.NewJSONSlice([]models.ThaliItem{
			{Name: "Veg Thali", Rate: 10, Quantity: 150},
		}),
		CustomCharges: datatypes.NewJSONSlice([]models.CustomCharge{
			{Label: "Cleaning", Amount: 500},
		}),
		HallRent:         5000,
		Discount:         100,
		PreBookingAmount: 1000,
		TotalAmount:      6900,
		BalanceDue:       5900,
	}
}

func TestRenderBillPDF(t *testing.T) {
	out, err := RenderBillPDF(sampleBill())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderBillsReportPDF(t *testing.T) {
	out, err := RenderBillsReportPDF([]models.Bill{sampleBill(), sampleBill()})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderBillsReportPDFEmpty(t *testing.T) {
	out, err := RenderBillsReportPDF(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

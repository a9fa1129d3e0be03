package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"banquethall-backend/models"
)

func TestComputeBillTotals(t *testing.T) {
	tests := []struct {
		name        string
		bill        models.Bill
		wantTotal   int
		wantBalance int
	}{
		{
			name:        "empty bill",
			bill:        models.Bill{},
			wantTotal:   0,
			wantBalance: 0,
		},
		{
			name: "full bill with services, thali, charge, discount and pre-booking",
			bill: models.Bill{
				HallRent: 5000,
				Services: datatypes.NewJSONSlice([]models.BillService{
					{Name: "Decoration", Price: 500, Quantity: 2},
				}),
				ThaliItems: datatypes.NewJSONSlice([]models.ThaliItem{
					{Name: "Veg Thali", Rate: 100, Quantity: 3},
				}),
				CustomCharges: datatypes.NewJSONSlice([]models.CustomCharge{
					{Label: "Cleaning", Amount: 300},
				}),
				Discount:         200,
				PreBookingAmount: 1000,
			},
			wantTotal:   6400,
			wantBalance: 5400,
		},
		{
			name: "hall rent plus one service and thali catering",
			bill: models.Bill{
				HallRent: 5000,
				Services: datatypes.NewJSONSlice([]models.BillService{
					{Name: "Decoration", Price: 200, Quantity: 2},
				}),
				ThaliItems: datatypes.NewJSONSlice([]models.ThaliItem{
					{Name: "Veg Thali", Rate: 10, Quantity: 150},
				}),
				Discount:         100,
				PreBookingAmount: 1000,
			},
			wantTotal:   6800,
			wantBalance: 5800,
		},
		{
			name: "custom charges included",
			bill: models.Bill{
				HallRent: 1000,
				CustomCharges: datatypes.NewJSONSlice([]models.CustomCharge{
					{Label: "Cleaning", Amount: 300},
					{Label: "Generator", Amount: 700},
				}),
			},
			wantTotal:   2000,
			wantBalance: 2000,
		},
		{
			name: "discount larger than charges goes negative",
			bill: models.Bill{
				HallRent: 500,
				Discount: 800,
			},
			wantTotal:   -300,
			wantBalance: -300,
		},
		{
			name: "pre-booking larger than total yields negative balance",
			bill: models.Bill{
				HallRent:         1000,
				PreBookingAmount: 1500,
			},
			wantTotal:   1000,
			wantBalance: -500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBillTotals(tt.bill)
			assert.Equal(t, tt.wantTotal, got.TotalAmount)
			assert.Equal(t, tt.wantBalance, got.BalanceDue)
		})
	}
}

func TestApplyBillTotalsRecomputesBoth(t *testing.T) {
	bill := models.Bill{
		HallRent:         4000,
		PreBookingAmount: 500,
		// stale values typed into the form then abandoned
		TotalAmount: 999,
		BalanceDue:  999,
	}
	ApplyBillTotals(&bill)
	assert.Equal(t, 4000, bill.TotalAmount)
	assert.Equal(t, 3500, bill.BalanceDue)
}

func TestApplyBillTotalsManualTotal(t *testing.T) {
	// Manual total is kept, but the balance is derived from the fresh
	// computed total, not from the frozen one.
	bill := models.Bill{
		HallRent:         4000,
		PreBookingAmount: 500,
		TotalAmount:      9000,
		ManualTotal:      true,
	}
	ApplyBillTotals(&bill)
	assert.Equal(t, 9000, bill.TotalAmount)
	assert.Equal(t, 3500, bill.BalanceDue)
}

func TestApplyBillTotalsManualBalance(t *testing.T) {
	bill := models.Bill{
		HallRent:         4000,
		PreBookingAmount: 500,
		BalanceDue:       123,
		ManualBalance:    true,
	}
	ApplyBillTotals(&bill)
	assert.Equal(t, 4000, bill.TotalAmount)
	assert.Equal(t, 123, bill.BalanceDue)
}

func TestApplyBillTotalsBothManualSkipsRecomputation(t *testing.T) {
	bill := models.Bill{
		HallRent:      4000,
		TotalAmount:   1,
		BalanceDue:    2,
		ManualTotal:   true,
		ManualBalance: true,
	}
	ApplyBillTotals(&bill)
	assert.Equal(t, 1, bill.TotalAmount)
	assert.Equal(t, 2, bill.BalanceDue)
}

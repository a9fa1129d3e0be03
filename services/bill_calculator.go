package services

import "banquethall-backend/models"

// Bill totals are derived from the line items with plain integer
// arithmetic. No rounding, no negative-value guard: a discount larger than
// the charges yields a negative total, and that is what gets saved.

type BillTotals struct {
	TotalAmount int
	BalanceDue  int
}

// ComputeBillTotals derives total and balance from a bill's inputs:
//
//	total   = Σ service price*qty + Σ thali rate*qty + hall rent + Σ charges - discount
//	balance = total - pre-booking amount
func ComputeBillTotals(bill models.Bill) BillTotals {
	servicesTotal := 0
	for _, s := range bill.Services {
		servicesTotal += s.Amount()
	}
	thaliTotal := 0
	for _, t := range bill.ThaliItems {
		thaliTotal += t.Amount()
	}
	chargesTotal := 0
	for _, c := range bill.CustomCharges {
		chargesTotal += c.Amount
	}

	total := servicesTotal + thaliTotal + bill.HallRent + chargesTotal - bill.Discount
	return BillTotals{
		TotalAmount: total,
		BalanceDue:  total - bill.PreBookingAmount,
	}
}

// ApplyBillTotals recomputes the derived fields in place, honoring the
// manual-override flags exactly the way the billing form does: with both
// flags set nothing is recomputed at all; with one flag set only that field
// keeps its submitted value, and the other is recomputed from the live
// formula (including a fresh total feeding the balance).
func ApplyBillTotals(bill *models.Bill) {
	if bill.ManualTotal && bill.ManualBalance {
		return
	}
	totals := ComputeBillTotals(*bill)
	if !bill.ManualTotal {
		bill.TotalAmount = totals.TotalAmount
	}
	if !bill.ManualBalance {
		bill.BalanceDue = totals.BalanceDue
	}
}

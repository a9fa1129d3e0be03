package utils

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"banquethall-backend/models"
)

// PDF export uses the core Latin fonts, so line items render their English
// variant (falling back to Marathi only when English is blank). The bilingual
// rendition lives in the WhatsApp messages; the archive's on-screen preview
// stays fully bilingual on the client.

func pdfText(en, mr string) string {
	if en != "" {
		return en
	}
	return mr
}

const (
	maroonR, maroonG, maroonB = 128, 0, 0
)

func billRow(pdf *gofpdf.Fpdf, tr func(string) string, desc string, qty, rate, amount int) {
	pdf.CellFormat(80, 8, tr(desc), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, fmt.Sprintf("%d", qty), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Rs "+FormatINR(rate), "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Rs "+FormatINR(amount), "1", 1, "R", false, 0, "")
}

// RenderBillPDF builds the single-page invoice for one saved bill, with a QR
// code that opens the WhatsApp bill summary.
func RenderBillPDF(bill models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(maroonR, maroonG, maroonB)
	pdf.CellFormat(0, 12, tr(pdfText(bill.HallName, "")), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	left := [][2]string{
		{"Customer Name", bill.CustomerName},
		{"City", bill.CustomerCity},
		{"Number of Guests", fmt.Sprintf("%d", bill.NumGuests)},
	}
	right := [][2]string{
		{"Booking Date", bill.BookingDate},
		{"Event Date", bill.EventDate},
		{"Event Type", bill.EventType},
	}
	for i := range left {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 7, left[i][0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(55, 7, tr(left[i][1]), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 7, right[i][0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(55, 7, tr(right[i][1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line-item table: hall rent first, then custom charges, services, thali
	// items, matching the archive preview's order.
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(maroonR, maroonG, maroonB)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)

	billRow(pdf, tr, "Hall Rent", 1, bill.HallRent, bill.HallRent)
	for _, charge := range bill.CustomCharges {
		billRow(pdf, tr, pdfText(charge.Label, charge.LabelMr), 1, charge.Amount, charge.Amount)
	}
	for _, svc := range bill.Services {
		billRow(pdf, tr, pdfText(svc.Name, svc.NameMr), svc.Quantity, svc.Price, svc.Amount())
	}
	for _, item := range bill.ThaliItems {
		billRow(pdf, tr, pdfText(item.Name, item.NameMr), item.Quantity, item.Rate, item.Amount())
	}
	pdf.Ln(4)

	totals := func(label string, amount int, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 12)
		pdf.CellFormat(145, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, "Rs "+FormatINR(amount), "", 1, "R", false, 0, "")
	}
	if bill.Discount > 0 {
		totals("Discount:", -bill.Discount, false)
	}
	totals("Total Amount:", bill.TotalAmount, false)
	if bill.PreBookingAmount > 0 {
		totals("Pre-Booking Amount:", bill.PreBookingAmount, false)
	}
	pdf.SetTextColor(maroonR, maroonG, maroonB)
	totals("Balance Due:", bill.BalanceDue, true)
	pdf.SetTextColor(0, 0, 0)

	// QR opens the WhatsApp share link for this bill.
	qrPNG, err := qrcode.Encode(WhatsAppLink("", BillSummaryMessage(bill)), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("bill-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("bill-qr", 12, 250, 30, 30, false, imageOpts, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(12, 281)
	pdf.CellFormat(30, 4, "Scan to share", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBillsReportPDF builds the tabular archive report: one row per bill
// with customer, event date/type, total and balance.
func RenderBillsReportPDF(bills []models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 10, "Bills Report")
	pdf.Ln(14)

	widths := []float64{50, 30, 40, 35, 35}
	headers := []string{"Customer", "Event Date", "Event Type", "Total", "Balance Due"}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(maroonR, maroonG, maroonB)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, bill := range bills {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		pdf.CellFormat(widths[0], 8, tr(bill.CustomerName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, bill.EventDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, tr(bill.EventType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, "Rs "+FormatINR(bill.TotalAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, "Rs "+FormatINR(bill.BalanceDue), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bills report: %w", err)
	}
	return buf.Bytes(), nil
}

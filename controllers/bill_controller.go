package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"banquethall-backend/config"
	"banquethall-backend/models"
	"banquethall-backend/services"
	"banquethall-backend/utils"
)

type billServicePayload struct {
	ID       utils.FlexInt `json:"id"`
	Name     string        `json:"name"`
	NameMr   string        `json:"name_mr"`
	Price    utils.FlexInt `json:"price"`
	Quantity utils.FlexInt `json:"quantity"`
}

type thaliItemPayload struct {
	Name     string        `json:"name"`
	NameMr   string        `json:"name_mr"`
	Rate     utils.FlexInt `json:"rate"`
	Quantity utils.FlexInt `json:"quantity"`
}

type billPayload struct {
	HallID       utils.FlexInt `json:"hall_id"`
	HallName     string        `json:"hall_name"`
	CustomerName string        `json:"customer_name"`
	CustomerCity string        `json:"customer_city"`
	BookingDate  string        `json:"booking_date"`
	EventDate    string        `json:"event_date"`
	NumGuests    utils.FlexInt `json:"num_guests"`
	EventType    string        `json:"event_type"`

	Services      []billServicePayload  `json:"services"`
	ThaliItems    []thaliItemPayload    `json:"thali_items"`
	CustomCharges []customChargePayload `json:"custom_charges"`

	HallRent         utils.FlexInt `json:"hall_rent"`
	Discount         utils.FlexInt `json:"discount"`
	PreBookingAmount utils.FlexInt `json:"pre_booking_amount"`

	TotalAmount   utils.FlexInt `json:"total_amount"`
	BalanceDue    utils.FlexInt `json:"balance_due"`
	ManualTotal   bool          `json:"manual_total"`
	ManualBalance bool          `json:"manual_balance"`
}

func (p billPayload) toModel() models.Bill {
	lines := make([]models.BillService, 0, len(p.Services))
	for _, s := range p.Services {
		lines = append(lines, models.BillService{
			ID:       uint(s.ID.Int()),
			Name:     s.Name,
			NameMr:   s.NameMr,
			Price:    s.Price.Int(),
			Quantity: s.Quantity.Int(),
		})
	}
	thali := make([]models.ThaliItem, 0, len(p.ThaliItems))
	for _, t := range p.ThaliItems {
		thali = append(thali, models.ThaliItem{
			Name:     t.Name,
			NameMr:   t.NameMr,
			Rate:     t.Rate.Int(),
			Quantity: t.Quantity.Int(),
		})
	}
	return models.Bill{
		HallID:           uint(p.HallID.Int()),
		HallName:         p.HallName,
		CustomerName:     p.CustomerName,
		CustomerCity:     p.CustomerCity,
		BookingDate:      p.BookingDate,
		EventDate:        p.EventDate,
		NumGuests:        p.NumGuests.Int(),
		EventType:        p.EventType,
		Services:         datatypes.NewJSONSlice(lines),
		ThaliItems:       datatypes.NewJSONSlice(thali),
		CustomCharges:    datatypes.NewJSONSlice(toCustomCharges(p.CustomCharges)),
		HallRent:         p.HallRent.Int(),
		Discount:         p.Discount.Int(),
		PreBookingAmount: p.PreBookingAmount.Int(),
		TotalAmount:      p.TotalAmount.Int(),
		BalanceDue:       p.BalanceDue.Int(),
		ManualTotal:      p.ManualTotal,
		ManualBalance:    p.ManualBalance,
	}
}

// BillController serves the billing archive: save, list, delete, PDF export
// and WhatsApp share/reminder links.
type BillController struct {
	Bills *services.BillService
}

func NewBillController(bills *services.BillService) *BillController {
	return &BillController{Bills: bills}
}

func (bc *BillController) GetBills(c *gin.Context) {
	bills, err := bc.Bills.List(hallIDFromQuery(c), c.Query("search"))
	if err != nil {
		log.Printf("❌ fetching bills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (bc *BillController) CreateBill(c *gin.Context) {
	var payload billPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if payload.HallID.Int() <= 0 || payload.CustomerName == "" || payload.EventDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id, customer_name and event_date are required"})
		return
	}

	bill := payload.toModel()
	if bill.HallName == "" {
		var hall models.Hall
		if err := config.DB.First(&hall, bill.HallID).Error; err == nil {
			bill.HallName = hall.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ resolving hall %d for bill: %v", bill.HallID, err)
		}
	}

	if err := bc.Bills.Create(&bill); err != nil {
		log.Printf("❌ creating bill: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (bc *BillController) DeleteBill(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	if err := bc.Bills.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
			return
		}
		log.Printf("❌ deleting bill %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted"})
}

// GetBillPDF streams the invoice PDF for one bill.
func (bc *BillController) GetBillPDF(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	bill, err := bc.Bills.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdfBytes, err := utils.RenderBillPDF(bill)
	if err != nil {
		log.Printf("❌ rendering bill %d pdf: %v", bill.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%d.pdf", bill.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetBillsReportPDF streams the tabular report for the current archive
// filters (hall and customer search).
func (bc *BillController) GetBillsReportPDF(c *gin.Context) {
	bills, err := bc.Bills.List(hallIDFromQuery(c), c.Query("search"))
	if err != nil {
		log.Printf("❌ fetching bills for report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdfBytes, err := utils.RenderBillsReportPDF(bills)
	if err != nil {
		log.Printf("❌ rendering bills report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=bills-report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetBillReminder builds the WhatsApp payment-reminder deep link for a bill.
// Phone comes from the query so the admin can correct it before sending.
func (bc *BillController) GetBillReminder(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	bill, err := bc.Bills.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := utils.ReminderMessage(bill)
	c.JSON(http.StatusOK, gin.H{
		"bill_id":     bill.ID,
		"balance_due": bill.BalanceDue,
		"message":     message,
		"link":        utils.WhatsAppLink(c.Query("phone"), message),
	})
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"banquethall-backend/models"
	"banquethall-backend/services"
	"banquethall-backend/utils"
)

type bookingPayload struct {
	HallID         utils.FlexInt `json:"hall_id"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	CustomerName   string        `json:"customer_name"`
	CustomerCity   string        `json:"customer_city"`
	CustomerPhone  string        `json:"customer_phone"`
	EventType      string        `json:"event_type"`
	NumGuests      utils.FlexInt `json:"num_guests"`
	BookingTakenBy string        `json:"booking_taken_by"`
	BookingDate    string        `json:"booking_date"`
}

// BookingController serves the booking CRUD, the public availability feed and
// the month calendar.
type BookingController struct {
	Bookings *services.BookingService
	Calendar *services.CalendarService
}

func NewBookingController(bookings *services.BookingService, calendar *services.CalendarService) *BookingController {
	return &BookingController{Bookings: bookings, Calendar: calendar}
}

// GetBookings lists a hall's bookings. With ?split=true the response is the
// {upcoming, past} partition the admin calendar page renders in two panels.
func (bc *BookingController) GetBookings(c *gin.Context) {
	hallID := hallIDFromQuery(c)
	if hallID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id is required"})
		return
	}
	bookings, err := bc.Bookings.ListByHall(*hallID)
	if err != nil {
		log.Printf("❌ fetching bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if c.Query("split") == "true" {
		c.JSON(http.StatusOK, services.PartitionBookings(bookings, time.Now()))
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetPublicBookings is the unauthenticated availability feed: id, hall_id,
// date and status only, never customer details.
func (bc *BookingController) GetPublicBookings(c *gin.Context) {
	hallID := hallIDFromQuery(c)
	if hallID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id is required"})
		return
	}
	public, err := bc.Bookings.ListPublicByHall(*hallID)
	if err != nil {
		log.Printf("❌ fetching public bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, public)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if payload.HallID.Int() <= 0 || payload.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id and date are required"})
		return
	}

	booking := models.Booking{
		HallID:         uint(payload.HallID.Int()),
		Date:           payload.Date,
		Status:         payload.Status,
		CustomerName:   payload.CustomerName,
		CustomerCity:   payload.CustomerCity,
		CustomerPhone:  payload.CustomerPhone,
		EventType:      payload.EventType,
		NumGuests:      payload.NumGuests.Int(),
		BookingTakenBy: payload.BookingTakenBy,
		BookingDate:    payload.BookingDate,
	}
	if err := bc.Bookings.Create(&booking); err != nil {
		log.Printf("❌ creating booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking applies a partial update. The booking forms submit numeric
// fields as strings, so those are coerced before they hit the database.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	if id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	for _, field := range []string{"hall_id", "num_guests"} {
		if raw, ok := updates[field]; ok {
			updates[field] = utils.CoerceInt(raw, 0)
		}
	}

	booking, err := bc.Bookings.Update(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("❌ updating booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := utils.ParseNumericOrDefault(c.Param("id"), 0)
	if err := bc.Bookings.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("❌ deleting booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// GetAvailability classifies every day of one month for a hall. A valid
// bearer token upgrades the view: unfiltered booking statuses plus the
// "today" marker.
func (bc *BookingController) GetAvailability(c *gin.Context) {
	hallID := hallIDFromQuery(c)
	if hallID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hall_id is required"})
		return
	}

	now := time.Now()
	year := utils.ParseNumericOrDefault(c.Query("year"), now.Year())
	month := utils.ParseNumericOrDefault(c.Query("month"), int(now.Month()))
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	days, err := bc.Calendar.MonthAvailability(*hallID, year, time.Month(month), isAdminRequest(c))
	if err != nil {
		log.Printf("❌ building availability: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hall_id": *hallID,
		"year":    year,
		"month":   month,
		"days":    days,
	})
}

// GetEventTypes returns the event categories the booking forms offer.
func GetEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"event_types": models.EventTypes})
}

// isAdminRequest reports whether the request carries a valid admin token.
// The endpoint stays public either way; the token only widens the view.
func isAdminRequest(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	_, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	return err == nil
}

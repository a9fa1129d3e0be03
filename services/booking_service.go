package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"banquethall-backend/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingService wraps *gorm.DB for booking CRUD and the upcoming/past
// partition the calendar page shows in two panels.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func (s *BookingService) ListByHall(hallID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Where("hall_id = ?", hallID).Order("date ASC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListPublicByHall returns the availability view: date and status only.
func (s *BookingService) ListPublicByHall(hallID uint) ([]models.PublicBooking, error) {
	bookings, err := s.ListByHall(hallID)
	if err != nil {
		return nil, err
	}
	public := make([]models.PublicBooking, 0, len(bookings))
	for _, b := range bookings {
		public = append(public, b.Public())
	}
	return public, nil
}

func (s *BookingService) Create(booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingStatusBooked
	}
	if err := s.DB.Create(booking).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (s *BookingService) Update(id uint, updates map[string]any) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("find booking: %w", err)
	}
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return models.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// BookingPartition splits a booking list for the two admin panels.
type BookingPartition struct {
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

// PartitionBookings splits bookings around "today" (truncated to midnight):
// a booking dated exactly today is upcoming. Upcoming is sorted ascending by
// date, past descending. The input slice is not mutated.
func PartitionBookings(bookings []models.Booking, now time.Time) BookingPartition {
	today := now.Format(DateLayout)
	part := BookingPartition{
		Upcoming: []models.Booking{},
		Past:     []models.Booking{},
	}
	for _, b := range bookings {
		if b.Date >= today {
			part.Upcoming = append(part.Upcoming, b)
		} else {
			part.Past = append(part.Past, b)
		}
	}
	sort.SliceStable(part.Upcoming, func(i, j int) bool {
		return part.Upcoming[i].Date < part.Upcoming[j].Date
	})
	sort.SliceStable(part.Past, func(i, j int) bool {
		return part.Past[i].Date > part.Past[j].Date
	})
	return part
}

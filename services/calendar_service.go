package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"banquethall-backend/models"
)

// Day classification works on yyyy-MM-dd strings, never instants, so
// time-of-day and zone can't shift a date across a boundary.

type DayStatus string

const (
	DayBooked    DayStatus = "booked"
	DayShubh     DayStatus = "shubh"
	DayToday     DayStatus = "today"
	DayAvailable DayStatus = "available"
)

const DateLayout = "2006-01-02"

type DateSet map[string]struct{}

func NewDateSet(dates ...string) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// ClassifyDay assigns exactly one status with fixed precedence:
// booked > shubh > today > available. Booked wins over shubh on the same
// day, and "today" is only marked on the admin calendar (markToday).
// Pure and deterministic.
func ClassifyDay(date string, shubh, booked DateSet, today string, markToday bool) DayStatus {
	if booked.Has(date) {
		return DayBooked
	}
	if shubh.Has(date) {
		return DayShubh
	}
	if markToday && date == today {
		return DayToday
	}
	return DayAvailable
}

// DayInfo is one calendar cell of the availability view.
type DayInfo struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

// ClassifyMonth classifies every day of the given month.
func ClassifyMonth(year int, month time.Month, shubh, booked DateSet, today string, markToday bool) []DayInfo {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]DayInfo, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		days = append(days, DayInfo{Date: date, Status: ClassifyDay(date, shubh, booked, today, markToday)})
	}
	return days
}

// CalendarService assembles the date sets for a hall and runs the
// classifier over them.
type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

func (s *CalendarService) shubhSet(hallID uint) (DateSet, error) {
	var dates []string
	if err := s.DB.Model(&models.ShubhDate{}).Where("hall_id = ?", hallID).Pluck("date", &dates).Error; err != nil {
		return nil, fmt.Errorf("load shubh dates: %w", err)
	}
	return NewDateSet(dates...), nil
}

func (s *CalendarService) bookedSet(hallID uint, publicOnly bool) (DateSet, error) {
	q := s.DB.Model(&models.Booking{}).Where("hall_id = ?", hallID)
	if publicOnly {
		q = q.Where("status = ?", models.BookingStatusBooked)
	}
	var dates []string
	if err := q.Pluck("date", &dates).Error; err != nil {
		return nil, fmt.Errorf("load booked dates: %w", err)
	}
	return NewDateSet(dates...), nil
}

// MonthAvailability returns the classified days of one month for a hall.
// Public callers get the status-filtered booking set and no "today" marker.
func (s *CalendarService) MonthAvailability(hallID uint, year int, month time.Month, admin bool) ([]DayInfo, error) {
	shubh, err := s.shubhSet(hallID)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookedSet(hallID, !admin)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format(DateLayout)
	return ClassifyMonth(year, month, shubh, booked, today, admin), nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"banquethall-backend/models"
)

var ErrBillNotFound = errors.New("bill not found")

// BillService persists bills and serves the archive queries. Bills are
// immutable once saved: create, list, fetch and delete only.
type BillService struct {
	DB *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{DB: db}
}

// Create recomputes the derived totals through the calculator (honoring the
// manual-override flags) before saving, so an archived bill is always
// consistent with its own line items.
func (s *BillService) Create(bill *models.Bill) error {
	ApplyBillTotals(bill)
	if err := s.DB.Create(bill).Error; err != nil {
		return fmt.Errorf("create bill: %w", err)
	}
	return nil
}

// List returns bills newest event first, optionally filtered to one hall
// and/or a case-insensitive customer name/city search.
func (s *BillService) List(hallID *uint, search string) ([]models.Bill, error) {
	q := s.DB.Model(&models.Bill{}).Order("event_date DESC, id DESC")
	if hallID != nil {
		q = q.Where("hall_id = ?", *hallID)
	}
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(customer_name) LIKE ? OR LOWER(customer_city) LIKE ?", like, like)
	}
	var bills []models.Bill
	if err := q.Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}

func (s *BillService) Get(id uint) (models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bill{}, ErrBillNotFound
		}
		return models.Bill{}, fmt.Errorf("find bill: %w", err)
	}
	return bill, nil
}

func (s *BillService) Delete(id uint) error {
	result := s.DB.Delete(&models.Bill{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}
	return nil
}

package services

import (
	"hotel-persistence/models"

	"gorm.io/gorm"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) Create(reservation *models.Reservation) error {
	return s.DB.Create(reservation).Error
}

func (s *ReservationService) Get(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.First(&reservation, id).Error
	return reservation, err
}

// ListByCustomer returns a customer's reservations, most recent check-in
// first. customerID is Customer.customer_id, not the user id.
func (s *ReservationService) ListByCustomer(customerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Where("customer_id = ?", customerID).Order("checkin_date DESC").Find(&reservations).Error
	return reservations, err
}

// MarkCheckedIn flags a reservation as checked in when the front desk
// converts it into a rental.
func (s *ReservationService) MarkCheckedIn(id uint) error {
	result := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Update("is_checkin", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

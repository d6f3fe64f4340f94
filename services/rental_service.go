package services

import (
	"time"

	"hotel-persistence/models"

	"gorm.io/gorm"
)

type RentalService struct {
	DB *gorm.DB
}

func NewRentalService(db *gorm.DB) *RentalService {
	return &RentalService{DB: db}
}

func (s *RentalService) Create(rental *models.RoomRental) error {
	return s.DB.Create(rental).Error
}

func (s *RentalService) Get(id uint) (models.RoomRental, error) {
	var rental models.RoomRental
	err := s.DB.First(&rental, id).Error
	return rental, err
}

// ReceiptFor returns the receipt closing out a rental. The unique index
// on rental_room_id guarantees at most one row.
func (s *RentalService) ReceiptFor(rentalID uint) (models.Receipt, error) {
	var receipt models.Receipt
	err := s.DB.Where("rental_room_id = ?", rentalID).First(&receipt).Error
	return receipt, err
}

func (s *RentalService) ListUnpaid() ([]models.RoomRental, error) {
	var rentals []models.RoomRental
	err := s.DB.Where("is_paid = ?", false).Order("checkin_date").Find(&rentals).Error
	return rentals, err
}

// Settle writes the receipt for a rental and marks it paid in one
// transaction.
func (s *RentalService) Settle(rentalID, receptionistID uint, totalPrice float64, at time.Time) (models.Receipt, error) {
	receipt := models.Receipt{
		ReceptionistID: receptionistID,
		RentalRoomID:   rentalID,
		TotalPrice:     totalPrice,
		CreatedDate:    at,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rental models.RoomRental
		if err := tx.First(&rental, rentalID).Error; err != nil {
			return err
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}
		return tx.Model(&rental).Update("is_paid", true).Error
	})
	if err != nil {
		return models.Receipt{}, err
	}
	return receipt, nil
}

package services

import (
	"hotel-persistence/models"

	"gorm.io/gorm"
)

// RegulationService reads the administrator-set pricing policies.
type RegulationService struct {
	DB *gorm.DB
}

func NewRegulationService(db *gorm.DB) *RegulationService {
	return &RegulationService{DB: db}
}

func (s *RegulationService) RoomRegulationFor(roomTypeID uint) (models.RoomRegulation, error) {
	var regulation models.RoomRegulation
	err := s.DB.First(&regulation, "room_type_id = ?", roomTypeID).Error
	return regulation, err
}

// RateFor returns the price multiplier for a customer type.
func (s *RegulationService) RateFor(customerTypeID uint) (float64, error) {
	var regulation models.CustomerTypeRegulation
	if err := s.DB.First(&regulation, "customer_type_id = ?", customerTypeID).Error; err != nil {
		return 0, err
	}
	return regulation.Rate, nil
}

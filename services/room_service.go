package services

import (
	"hotel-persistence/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetRoom(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").Preload("Comments").First(&room, id).Error
	return room, err
}

func (s *RoomService) ListByRoomType(roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("room_type_id = ?", roomTypeID).Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) AddComment(comment *models.Comment) error {
	return s.DB.Create(comment).Error
}

// ListComments returns a room's comments, newest first.
func (s *RoomService) ListComments(roomID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.Where("room_id = ?", roomID).Order("created_date DESC").Find(&comments).Error
	return comments, err
}

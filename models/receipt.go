package models

import "time"

// Receipt closes out a room rental. The unique index on rental_room_id
// is what makes the relation 1:1; there is no back-reference from
// RoomRental, callers query by rental id instead.
type Receipt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReceptionistID uint      `gorm:"not null" json:"receptionist_id"`
	RentalRoomID   uint      `gorm:"column:rental_room_id;not null;uniqueIndex" json:"rental_room_id"`
	TotalPrice     float64   `gorm:"not null" json:"total_price"`
	CreatedDate    time.Time `gorm:"not null" json:"created_date"`

	Receptionist Receptionist `gorm:"foreignKey:ReceptionistID;references:UserID" json:"-"`
	RoomRental   RoomRental   `gorm:"foreignKey:RentalRoomID" json:"-"`
}

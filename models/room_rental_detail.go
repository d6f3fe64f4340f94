package models

type RoomRentalDetail struct {
	CustomerID   uint `gorm:"primaryKey;autoIncrement:false" json:"customer_id"`
	RoomRentalID uint `gorm:"primaryKey;autoIncrement:false" json:"room_rental_id"`

	Customer   Customer   `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	RoomRental RoomRental `gorm:"foreignKey:RoomRentalID" json:"-"`
}

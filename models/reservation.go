package models

import "time"

// Reservation is an advance booking taken for a future stay. CustomerID
// references Customer.customer_id (the surrogate key), not the user id.
// Date ordering (checkout after checkin) is left to the booking workflow;
// the schema does not enforce it.
type Reservation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerID     *uint     `gorm:"index" json:"customer_id,omitempty"`
	ReceptionistID *uint     `gorm:"index" json:"receptionist_id,omitempty"`
	RoomID         uint      `gorm:"not null;index" json:"room_id"`
	CheckinDate    time.Time `gorm:"not null" json:"checkin_date"`
	CheckoutDate   time.Time `gorm:"not null" json:"checkout_date"`
	IsCheckin      bool      `gorm:"default:false" json:"is_checkin"`
	Deposit        float64   `gorm:"not null" json:"deposit"`

	Customer     *Customer     `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	Receptionist *Receptionist `gorm:"foreignKey:ReceptionistID;references:UserID" json:"-"`
	Room         Room          `gorm:"foreignKey:RoomID" json:"-"`
}

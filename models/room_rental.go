package models

import "time"

// RoomRental is an active occupancy record. The front desk either opens
// it against a walk-in room (RoomID) or converts a prior reservation
// (ReservationID); the rule that exactly one of the two is set lives in
// the rental workflow, not in the schema.
type RoomRental struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ReceptionistID uint       `gorm:"not null;index" json:"receptionist_id"`
	RoomID         *uint      `gorm:"index" json:"room_id,omitempty"`
	ReservationID  *uint      `gorm:"index" json:"reservation_id,omitempty"`
	CheckinDate    time.Time  `json:"checkin_date"`
	CheckoutDate   *time.Time `json:"checkout_date,omitempty"`
	Deposit        *float64   `json:"deposit,omitempty"`
	IsPaid         bool       `gorm:"default:false" json:"is_paid"`

	Receptionist Receptionist `gorm:"foreignKey:ReceptionistID;references:UserID" json:"-"`
	Room         *Room        `gorm:"foreignKey:RoomID" json:"-"`
	Reservation  *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

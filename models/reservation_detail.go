package models

// ReservationDetail links every guest on a reservation to it, including
// guests beyond the one who placed it.
type ReservationDetail struct {
	CustomerID    uint `gorm:"primaryKey;autoIncrement:false" json:"customer_id"`
	ReservationID uint `gorm:"primaryKey;autoIncrement:false" json:"reservation_id"`

	Customer    Customer    `gorm:"foreignKey:CustomerID;references:CustomerID" json:"-"`
	Reservation Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

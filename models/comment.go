package models

import "time"

// Comment is customer feedback on a room. CustomerID references the
// customer's user id (customers.user_id), so only account holders can
// comment.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Content     string    `gorm:"size:1000;not null" json:"content"`
	RoomID      uint      `gorm:"not null;index" json:"room_id"`
	CreatedDate time.Time `json:"created_date"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`
}

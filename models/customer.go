package models

// Customer has its own surrogate key because walk-in guests can exist
// without an account: UserID is nullable and only unique when present.
type Customer struct {
	CustomerID     uint    `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	UserID         *uint   `gorm:"column:user_id;uniqueIndex" json:"user_id,omitempty"`
	Name           string  `gorm:"size:50;not null" json:"name"`
	Identification *string `gorm:"size:15;uniqueIndex" json:"identification,omitempty"`
	CustomerTypeID uint    `gorm:"not null" json:"customer_type_id"`

	User         *User        `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CustomerType CustomerType `gorm:"foreignKey:CustomerTypeID" json:"customer_type,omitempty"`
}

package models

type Receptionist struct {
	UserID uint   `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Name   string `gorm:"size:50;not null" json:"name"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

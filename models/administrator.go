package models

// Administrator is a role side table keyed by the shared user id, not an
// embedded specialization of User.
type Administrator struct {
	UserID uint   `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	Name   string `gorm:"size:50;not null" json:"name"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

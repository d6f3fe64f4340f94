package models

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Image      string `gorm:"size:500;not null" json:"image"`
	RoomTypeID uint   `gorm:"column:room_type_id;not null;index" json:"room_type_id"`

	RoomType RoomType  `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Comments []Comment `gorm:"foreignKey:RoomID" json:"comments,omitempty"`
}

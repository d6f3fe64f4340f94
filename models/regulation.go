package models

// RoomRegulation is the per-room-type pricing policy set by an
// administrator: one row per room type, so room_type_id is the key.
type RoomRegulation struct {
	RoomTypeID   uint    `gorm:"primaryKey;autoIncrement:false" json:"room_type_id"`
	AdminID      uint    `gorm:"not null" json:"admin_id"`
	RoomQuantity int     `gorm:"default:10" json:"room_quantity"`
	Capacity     int     `gorm:"default:2" json:"capacity"`
	Price        float64 `gorm:"default:100000" json:"price"`
	Surcharge    float64 `gorm:"default:0.25" json:"surcharge"`
	DepositRate  float64 `gorm:"default:0.3" json:"deposit_rate"`
	Distance     int     `gorm:"not null;default:28" json:"distance"`

	RoomType      RoomType      `gorm:"foreignKey:RoomTypeID" json:"-"`
	Administrator Administrator `gorm:"foreignKey:AdminID;references:UserID" json:"-"`
}

// CustomerTypeRegulation is the price multiplier applied per customer
// type (foreign guests pay a higher rate).
type CustomerTypeRegulation struct {
	CustomerTypeID uint    `gorm:"primaryKey;autoIncrement:false" json:"customer_type_id"`
	AdminID        uint    `gorm:"not null" json:"admin_id"`
	Rate           float64 `gorm:"not null;default:1" json:"rate"`

	CustomerType  CustomerType  `gorm:"foreignKey:CustomerTypeID" json:"-"`
	Administrator Administrator `gorm:"foreignKey:AdminID;references:UserID" json:"-"`
}

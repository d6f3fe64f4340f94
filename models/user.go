package models

// UserRole is stored as a plain varchar so the auth layer can match on it
// without joining anything.
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleCustomer     UserRole = "CUSTOMER"
)

// DefaultAvatarURL is applied by the database when a user registers
// without uploading an avatar.
const DefaultAvatarURL = "https://res.cloudinary.com/dg1zsnywc/image/upload/v1715800302/avt_zrf6wj.jpg"

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password string   `gorm:"size:255;not null" json:"-"` // bcrypt hash, never returned in JSON
	Role     UserRole `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	Email    string   `gorm:"size:50;not null;uniqueIndex" json:"email"`
	Phone    string   `gorm:"size:50;not null;uniqueIndex" json:"phone"`
	Avatar   string   `gorm:"size:200;default:'https://res.cloudinary.com/dg1zsnywc/image/upload/v1715800302/avt_zrf6wj.jpg'" json:"avatar"`
	Gender   *bool    `gorm:"default:true" json:"gender"` // true = male
}

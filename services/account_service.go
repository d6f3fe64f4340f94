package services

import (
	"errors"

	"hotel-persistence/models"
	"hotel-persistence/utils"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown usernames and bad
// passwords so callers can't probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountService is the read path the auth layer uses against the users
// table.
type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

func (s *AccountService) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

// Authenticate looks the account up by username and verifies the
// password against the stored bcrypt hash.
func (s *AccountService) Authenticate(username, password string) (models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CustomerProfile returns the customer row backing a user account,
// with its customer type.
func (s *AccountService) CustomerProfile(userID uint) (models.Customer, error) {
	var customer models.Customer
	err := s.DB.Preload("CustomerType").Where("user_id = ?", userID).First(&customer).Error
	return customer, err
}

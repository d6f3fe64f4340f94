package services

import (
	"errors"
	"testing"

	"hotel-persistence/models"
)

func TestAuthenticate(t *testing.T) {
	svc := NewAccountService(seededTestDB(t))

	user, err := svc.Authenticate("tri123", "123456")
	if err != nil {
		t.Fatalf("Authenticate admin: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", user.Role)
	}
	if user.Password == "123456" {
		t.Error("seeded password stored in the clear")
	}

	if _, err := svc.Authenticate("tri123", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("nobody", "123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestGetByUsername(t *testing.T) {
	svc := NewAccountService(seededTestDB(t))

	user, err := svc.GetByUsername("tu2512")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.Role != models.RoleReceptionist {
		t.Errorf("role = %s, want RECEPTIONIST", user.Role)
	}
	if user.Avatar != models.DefaultAvatarURL {
		t.Errorf("avatar = %q, want the default avatar", user.Avatar)
	}
}

func TestCustomerProfile(t *testing.T) {
	svc := NewAccountService(seededTestDB(t))

	customer, err := svc.CustomerProfile(2)
	if err != nil {
		t.Fatalf("CustomerProfile: %v", err)
	}
	if customer.Name != "Đổng Thiên Tú" {
		t.Errorf("name = %q", customer.Name)
	}
	if customer.CustomerType.Type != models.CustomerTypeDomestic {
		t.Errorf("customer type = %q, want DOMESTIC", customer.CustomerType.Type)
	}

	// The admin user has no customer row.
	if _, err := svc.CustomerProfile(1); err == nil {
		t.Error("expected no customer profile for the admin account")
	}
}

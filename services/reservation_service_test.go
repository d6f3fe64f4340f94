package services

import (
	"errors"
	"testing"

	"hotel-persistence/models"

	"gorm.io/gorm"
)

func TestListByCustomer(t *testing.T) {
	svc := NewReservationService(seededTestDB(t))

	reservations, err := svc.ListByCustomer(2)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	// Customer 2 placed reservations 1, 3 and 7; newest check-in first.
	wantIDs := []uint{1, 3, 7}
	if len(reservations) != len(wantIDs) {
		t.Fatalf("got %d reservations, want %d", len(reservations), len(wantIDs))
	}
	for i, id := range wantIDs {
		if reservations[i].ID != id {
			t.Errorf("reservation %d = id %d, want %d", i, reservations[i].ID, id)
		}
	}
}

func TestMarkCheckedIn(t *testing.T) {
	db := seededTestDB(t)
	svc := NewReservationService(db)

	if err := svc.MarkCheckedIn(1); err != nil {
		t.Fatalf("MarkCheckedIn: %v", err)
	}
	reservation, err := svc.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reservation.IsCheckin {
		t.Error("reservation 1 still not checked in")
	}

	if err := svc.MarkCheckedIn(999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing reservation: got %v, want ErrRecordNotFound", err)
	}
}

func TestCreateReservation(t *testing.T) {
	db := seededTestDB(t)
	svc := NewReservationService(db)

	reservation := models.Reservation{
		CustomerID:     uintPtr(3),
		ReceptionistID: uintPtr(7),
		RoomID:         5,
		CheckinDate:    dtt(2024, 9, 1, 14, 0),
		CheckoutDate:   dtt(2024, 9, 5, 11, 0),
		Deposit:        4000000,
	}
	if err := svc.Create(&reservation); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reservation.ID != 8 {
		t.Errorf("new reservation id = %d, want 8", reservation.ID)
	}
	if reservation.IsCheckin {
		t.Error("new reservation should not be checked in")
	}
}

package services

import (
	"testing"

	"hotel-persistence/models"
)

func TestReceiptFor(t *testing.T) {
	svc := NewRentalService(seededTestDB(t))

	receipt, err := svc.ReceiptFor(3)
	if err != nil {
		t.Fatalf("ReceiptFor: %v", err)
	}
	if receipt.TotalPrice != 21000000 {
		t.Errorf("total = %v, want 21000000", receipt.TotalPrice)
	}

	if _, err := svc.ReceiptFor(999); err == nil {
		t.Error("expected no receipt for unknown rental")
	}
}

func TestSettle(t *testing.T) {
	db := seededTestDB(t)
	svc := NewRentalService(db)

	// Every seeded rental is already paid.
	unpaid, err := svc.ListUnpaid()
	if err != nil {
		t.Fatalf("ListUnpaid: %v", err)
	}
	if len(unpaid) != 0 {
		t.Fatalf("seeded fixture has %d unpaid rentals, want 0", len(unpaid))
	}

	walkIn := models.RoomRental{
		ReceptionistID: 7,
		RoomID:         uintPtr(5),
		CheckinDate:    dtt(2024, 9, 2, 13, 0),
	}
	if err := svc.Create(&walkIn); err != nil {
		t.Fatalf("Create: %v", err)
	}
	unpaid, err = svc.ListUnpaid()
	if err != nil {
		t.Fatalf("ListUnpaid: %v", err)
	}
	if len(unpaid) != 1 || unpaid[0].ID != walkIn.ID {
		t.Fatalf("unpaid rentals = %v, want just the new walk-in", unpaid)
	}

	receipt, err := svc.Settle(walkIn.ID, 7, 6500000, dtt(2024, 9, 4, 11, 0))
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if receipt.ID == 0 {
		t.Error("receipt id not assigned")
	}

	rental, err := svc.Get(walkIn.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !rental.IsPaid {
		t.Error("settled rental still marked unpaid")
	}
}

// Settling an already-receipted rental must fail atomically: no second
// receipt appears.
func TestSettleTwiceRejected(t *testing.T) {
	db := seededTestDB(t)
	svc := NewRentalService(db)

	_, err := svc.Settle(1, 7, 123, dtt(2024, 9, 5, 9, 0))
	if err == nil {
		t.Fatal("second settle accepted")
	}
	if !models.IsDuplicateKey(err) {
		t.Errorf("second settle: got %v, want duplicate-key violation", err)
	}

	var n int64
	db.Model(&models.Receipt{}).Where("rental_room_id = ?", 1).Count(&n)
	if n != 1 {
		t.Errorf("rental 1 has %d receipts, want 1", n)
	}
}

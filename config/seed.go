package config

import (
	"fmt"
	"time"

	"hotel-persistence/models"
	"hotel-persistence/utils"

	"gorm.io/gorm"
)

func dt(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

// ResetAndSeed wipes every table and repopulates the schema with the
// fixed sample data set. It is a one-shot bootstrap: any prior content
// is lost, and the first error aborts the run, leaving the database in
// need of another full reset.
func ResetAndSeed(db *gorm.DB) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := migrateAll(db); err != nil {
		return fmt.Errorf("recreate tables: %w", err)
	}

	if err := seedRoomTypes(db); err != nil {
		return err
	}
	if err := seedRooms(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCustomers(db); err != nil {
		return err
	}
	if err := seedRegulations(db); err != nil {
		return err
	}
	if err := seedComments(db); err != nil {
		return err
	}
	if err := seedReservations(db); err != nil {
		return err
	}
	if err := seedRoomRentals(db); err != nil {
		return err
	}
	return seedReceipts(db)
}

func seedRoomTypes(db *gorm.DB) error {
	roomTypes := []models.RoomType{
		{ID: 1, Name: "Phòng Đơn"},
		{ID: 2, Name: "Phòng Đôi"},
		{ID: 3, Name: "Giường Đôi"},
	}
	if err := db.Create(&roomTypes).Error; err != nil {
		return fmt.Errorf("seed room types: %w", err)
	}
	return nil
}

func seedRooms(db *gorm.DB) error {
	rooms := []models.Room{
		{ID: 1, Name: "D21", RoomTypeID: 2, Image: "images/phong1.jpg"},
		{ID: 2, Name: "D22", RoomTypeID: 3, Image: "images/phong2.jpg"},
		{ID: 3, Name: "D23", RoomTypeID: 2, Image: "images/phong3.jpg"},
		{ID: 4, Name: "D24", RoomTypeID: 1, Image: "images/phong4.jpg"},
		{ID: 5, Name: "D25", RoomTypeID: 3, Image: "images/phong5.jpg"},
		{ID: 6, Name: "D26", RoomTypeID: 3, Image: "images/phong6.jpg"},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	// Every sample account shares the same password.
	hash, err := utils.HashPassword("123456")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []models.User{
		{
			ID:       1,
			Role:     models.RoleAdmin,
			Username: "tri123",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1709066108/z5198999749329_e5e37f56d9aedfe2caca17ebe75fba7d_db43tu.jpg",
			Email:    "ductai4201@gmail.com",
			Phone:    "0375290878",
		},
		{
			ID:       2,
			Role:     models.RoleCustomer,
			Username: "thientu",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1715784258/z5198997831482_3c72459cad69b58efacae6b341227b21_lbedjf.jpg",
			Email:    "2151010425Tu@ou.edu.vn",
			Phone:    "0123456789",
		},
		{
			ID:       3,
			Role:     models.RoleCustomer,
			Username: "huutu",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1715678948/vzvrsl6fwwzyl9thtmn2.jpg",
			Email:    "2@ou.edu.vn",
			Phone:    "7312936921",
		},
		{
			ID:       4,
			Role:     models.RoleCustomer,
			Username: "minhlong",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1715772103/il4g2k9ndrvvj187vkqg.jpg",
			Email:    "trihuynh3103@gmail.com",
			Phone:    "3485692348",
		},
		{
			ID:       5,
			Role:     models.RoleCustomer,
			Username: "chanhkhoi",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1715772103/il4g2k9ndrvvj187vkqg.jpg",
			Email:    "4@gmail.com",
			Phone:    "31231234124",
		},
		{
			ID:       6,
			Role:     models.RoleCustomer,
			Username: "trihuynh",
			Password: hash,
			Avatar:   "https://res.cloudinary.com/dg1zsnywc/image/upload/v1708905744/ffkv6fef0gmw3dewytoq.jpg",
			Email:    "5@gmail.com",
			Phone:    "56978560756",
		},
		{
			ID:       7,
			Role:     models.RoleReceptionist,
			Username: "tu2512",
			Password: hash,
			Email:    "6@gmail.com",
			Phone:    "8354084534324",
			Gender:   boolPtr(false),
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	admin := models.Administrator{UserID: 1, Name: "Trí Huỳnh"}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed administrator: %w", err)
	}

	receptionist := models.Receptionist{UserID: 7, Name: "Thiên Tú"}
	if err := db.Create(&receptionist).Error; err != nil {
		return fmt.Errorf("seed receptionist: %w", err)
	}
	return nil
}

func seedCustomers(db *gorm.DB) error {
	customerTypes := []models.CustomerType{
		{ID: 1, Type: models.CustomerTypeDomestic},
		{ID: 2, Type: models.CustomerTypeForeign},
	}
	if err := db.Create(&customerTypes).Error; err != nil {
		return fmt.Errorf("seed customer types: %w", err)
	}

	customers := []models.Customer{
		{CustomerID: 1, UserID: uintPtr(2), Name: "Đổng Thiên Tú", Identification: strPtr("1231234124"), CustomerTypeID: 1},
		{CustomerID: 2, UserID: uintPtr(3), Name: "Nguyễn Hữu Tú", Identification: strPtr("3453456347"), CustomerTypeID: 1},
		{CustomerID: 3, UserID: uintPtr(4), Name: "Lê Duy Minh Long", Identification: strPtr("7567657567"), CustomerTypeID: 2},
		{CustomerID: 4, UserID: uintPtr(5), Name: "Nguyễn Chánh Khôi", Identification: strPtr("34534578"), CustomerTypeID: 2},
		{CustomerID: 5, UserID: uintPtr(6), Name: "Huỳnh Võ Đức Trí", Identification: strPtr("46457457323"), CustomerTypeID: 1},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	return nil
}

func seedRegulations(db *gorm.DB) error {
	customerTypeRegulations := []models.CustomerTypeRegulation{
		{CustomerTypeID: 1, AdminID: 1, Rate: 1.0},
		{CustomerTypeID: 2, AdminID: 1, Rate: 1.5},
	}
	if err := db.Create(&customerTypeRegulations).Error; err != nil {
		return fmt.Errorf("seed customer type regulations: %w", err)
	}

	roomRegulations := []models.RoomRegulation{
		{RoomTypeID: 1, AdminID: 1, RoomQuantity: 10, Capacity: 3, Price: 7000000},
		{RoomTypeID: 2, AdminID: 1, RoomQuantity: 15, Capacity: 5, Price: 9000000},
		{RoomTypeID: 3, AdminID: 1, RoomQuantity: 20, Capacity: 7, Price: 12000000},
	}
	if err := db.Create(&roomRegulations).Error; err != nil {
		return fmt.Errorf("seed room regulations: %w", err)
	}
	return nil
}

func seedComments(db *gorm.DB) error {
	comments := []models.Comment{
		{CustomerID: 2, RoomID: 1, Content: "Khách sạn này tuyệt vời thật!", CreatedDate: dt(2024, 3, 31, 13, 31, 0)},
		{CustomerID: 3, RoomID: 1, Content: "Thật bất ngờ vì vẻ đẹp của khách sạn!", CreatedDate: dt(2024, 2, 4, 15, 3, 0)},
		{CustomerID: 4, RoomID: 2, Content: "sẽ ủng hộ nhiều ạ =)))))", CreatedDate: dt(2024, 5, 6, 12, 4, 0)},
		{CustomerID: 5, RoomID: 2, Content: "Một trải nghiệm thật tuyệt vời", CreatedDate: dt(2023, 6, 19, 21, 45, 0)},
		{CustomerID: 6, RoomID: 2, Content: "I love your Hotel", CreatedDate: dt(2024, 1, 31, 8, 20, 0)},
		{CustomerID: 2, RoomID: 3, Content: "chất lượng tuyệt vời", CreatedDate: dt(2024, 3, 1, 20, 8, 0)},
		{CustomerID: 3, RoomID: 3, Content: "thoải mái , bình yên , lãng mạn", CreatedDate: dt(2024, 3, 6, 15, 56, 0)},
		{CustomerID: 4, RoomID: 3, Content: "Thật là một nơi đáng để nghỉ dưỡng", CreatedDate: dt(2023, 8, 13, 17, 5, 0)},
		{CustomerID: 5, RoomID: 3, Content: "Xứng đáng với số tiền bỏ ra", CreatedDate: dt(2023, 12, 12, 12, 12, 0)},
		{CustomerID: 6, RoomID: 3, Content: "Nhân viên lễ tân cute xĩu ^^", CreatedDate: dt(2023, 11, 11, 11, 11, 0)},
		{CustomerID: 2, RoomID: 4, Content: "địa điểm đáng để chú ý trong kì kĩ dưỡng sắp tới của bạn!", CreatedDate: dt(2023, 12, 21, 12, 12, 0)},
		{CustomerID: 3, RoomID: 4, Content: "không có gì để chê", CreatedDate: dt(2023, 8, 8, 8, 8, 0)},
		{CustomerID: 4, RoomID: 4, Content: "Nơi này rất thoải mái và tiện nghi, có view đỉnh lắm ạ!", CreatedDate: dt(2023, 7, 7, 7, 7, 0)},
		{CustomerID: 5, RoomID: 4, Content: "đi đi mọi người khách sạn tuyệt phẩm", CreatedDate: dt(2023, 11, 30, 6, 12, 0)},
		{CustomerID: 6, RoomID: 4, Content: "tư vấn phòng này và trải nghiệm rất tốt", CreatedDate: dt(2024, 2, 9, 15, 18, 0)},
		{CustomerID: 2, RoomID: 5, Content: "phòng rộng rãi, sạch sẽ, thơm tho", CreatedDate: dt(2024, 1, 9, 17, 1, 0)},
		{CustomerID: 3, RoomID: 5, Content: "thanh toán thật dễ dàng", CreatedDate: dt(2024, 2, 28, 12, 15, 0)},
		{CustomerID: 4, RoomID: 5, Content: "Luxury Hotel <3", CreatedDate: dt(2023, 8, 31, 9, 21, 0)},
	}
	if err := db.Create(&comments).Error; err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	return nil
}

func seedReservations(db *gorm.DB) error {
	reservations := []models.Reservation{
		{ID: 1, CustomerID: uintPtr(2), ReceptionistID: uintPtr(7), RoomID: 4,
			CheckinDate: dt(2024, 1, 31, 20, 15, 0), CheckoutDate: dt(2024, 2, 28, 15, 20, 0), Deposit: 9000000},
		{ID: 2, CustomerID: uintPtr(1), ReceptionistID: uintPtr(7), RoomID: 2,
			CheckinDate: dt(2024, 3, 25, 21, 10, 0), CheckoutDate: dt(2024, 3, 29, 10, 21, 0), Deposit: 15000000},
		{ID: 3, CustomerID: uintPtr(2), ReceptionistID: uintPtr(7), RoomID: 2,
			CheckinDate: dt(2023, 12, 11, 13, 21, 0), CheckoutDate: dt(2023, 12, 21, 21, 13, 0), Deposit: 5000000},
		{ID: 4, CustomerID: uintPtr(1), ReceptionistID: uintPtr(7), RoomID: 1,
			CheckinDate: dt(2024, 1, 18, 16, 30, 0), CheckoutDate: dt(2024, 2, 29, 3, 4, 0), Deposit: 15000000},
		{ID: 5, CustomerID: uintPtr(4), ReceptionistID: uintPtr(7), RoomID: 1,
			CheckinDate: dt(2024, 5, 3, 17, 5, 0), CheckoutDate: dt(2024, 5, 8, 5, 17, 0), Deposit: 10000000},
		{ID: 6, CustomerID: uintPtr(5), ReceptionistID: uintPtr(7), RoomID: 2,
			CheckinDate: dt(2023, 2, 21, 9, 15, 0), CheckoutDate: dt(2023, 3, 19, 15, 9, 0), Deposit: 18500000},
		{ID: 7, CustomerID: uintPtr(2), ReceptionistID: uintPtr(7), RoomID: 1,
			CheckinDate: dt(2023, 7, 21, 17, 12, 0), CheckoutDate: dt(2023, 8, 21, 12, 17, 0), Deposit: 20000000},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return fmt.Errorf("seed reservations: %w", err)
	}
	return nil
}

func seedRoomRentals(db *gorm.DB) error {
	rentals := []models.RoomRental{
		{ID: 1, ReceptionistID: 7, RoomID: uintPtr(4), ReservationID: uintPtr(1),
			CheckinDate: dt(2024, 3, 17, 11, 33, 12), CheckoutDate: timePtr(dt(2024, 5, 21, 12, 44, 51)),
			Deposit: floatPtr(5000000), IsPaid: true},
		{ID: 2, ReceptionistID: 7, RoomID: uintPtr(2), ReservationID: uintPtr(2),
			CheckinDate: dt(2024, 3, 8, 12, 45, 1), CheckoutDate: timePtr(dt(2024, 3, 21, 21, 6, 8)),
			IsPaid: true},
		{ID: 3, ReceptionistID: 7, RoomID: uintPtr(3),
			CheckinDate: dt(2024, 4, 3, 20, 22, 17), CheckoutDate: timePtr(dt(2024, 5, 16, 9, 23, 12)),
			Deposit: floatPtr(21000000), IsPaid: true},
		{ID: 4, ReceptionistID: 7, RoomID: uintPtr(2), ReservationID: uintPtr(3),
			CheckinDate: dt(2024, 2, 27, 18, 1, 25), CheckoutDate: timePtr(dt(2024, 3, 7, 15, 32, 11)),
			Deposit: floatPtr(8000000), IsPaid: true},
		{ID: 5, ReceptionistID: 7, RoomID: uintPtr(1), ReservationID: uintPtr(4),
			CheckinDate: dt(2024, 8, 3, 6, 3, 24), CheckoutDate: timePtr(dt(2024, 8, 24, 8, 6, 12)),
			Deposit: floatPtr(10000000), IsPaid: true},
		{ID: 6, ReceptionistID: 7, RoomID: uintPtr(1), ReservationID: uintPtr(5),
			CheckinDate: dt(2024, 1, 20, 9, 22, 32), CheckoutDate: timePtr(dt(2024, 2, 3, 21, 44, 23)),
			IsPaid: true},
		{ID: 7, ReceptionistID: 7, RoomID: uintPtr(3),
			CheckinDate: dt(2024, 4, 12, 10, 2, 50), CheckoutDate: timePtr(dt(2024, 4, 26, 21, 5, 18)),
			Deposit: floatPtr(21000000), IsPaid: true},
		// checkout precedes checkin in the source fixture; preserved as-is
		{ID: 8, ReceptionistID: 7, RoomID: uintPtr(2), ReservationID: uintPtr(6),
			CheckinDate: dt(2024, 6, 18, 7, 30, 21), CheckoutDate: timePtr(dt(2024, 3, 21, 9, 15, 21)),
			IsPaid: true},
		{ID: 9, ReceptionistID: 7, RoomID: uintPtr(1), ReservationID: uintPtr(7),
			CheckinDate: dt(2024, 2, 9, 8, 20, 5), CheckoutDate: timePtr(dt(2024, 3, 10, 20, 8, 8)),
			Deposit: floatPtr(15000000), IsPaid: true},
	}
	if err := db.Create(&rentals).Error; err != nil {
		return fmt.Errorf("seed room rentals: %w", err)
	}
	return nil
}

func seedReceipts(db *gorm.DB) error {
	receipts := []models.Receipt{
		{ReceptionistID: 7, RentalRoomID: 1, TotalPrice: 5000000, CreatedDate: dt(2024, 5, 21, 12, 45, 0)},
		{ReceptionistID: 7, RentalRoomID: 2, TotalPrice: 3000000, CreatedDate: dt(2024, 3, 21, 21, 6, 0)},
		{ReceptionistID: 7, RentalRoomID: 3, TotalPrice: 21000000, CreatedDate: dt(2024, 5, 16, 9, 23, 0)},
		{ReceptionistID: 7, RentalRoomID: 4, TotalPrice: 8000000, CreatedDate: dt(2024, 2, 3, 21, 45, 0)},
		{ReceptionistID: 7, RentalRoomID: 5, TotalPrice: 12000000, CreatedDate: dt(2024, 8, 24, 8, 6, 0)},
		{ReceptionistID: 7, RentalRoomID: 6, TotalPrice: 3000000, CreatedDate: dt(2024, 2, 3, 9, 44, 0)},
		{ReceptionistID: 7, RentalRoomID: 7, TotalPrice: 21000000, CreatedDate: dt(2024, 4, 26, 9, 5, 0)},
		{ReceptionistID: 7, RentalRoomID: 8, TotalPrice: 3000000, CreatedDate: dt(2024, 3, 21, 9, 15, 0)},
		{ReceptionistID: 7, RentalRoomID: 9, TotalPrice: 15000000, CreatedDate: dt(2024, 3, 10, 20, 8, 0)},
	}
	if err := db.Create(&receipts).Error; err != nil {
		return fmt.Errorf("seed receipts: %w", err)
	}
	return nil
}

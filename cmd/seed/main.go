package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"jamtrips/internal/database"
	"jamtrips/internal/domain"
	"jamtrips/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "jamtrips.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM tours")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@jamtrips.uz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin create failed:", err)
	}

	// ================== TOURS ==================
	log.Println("Creating tours...")

	tourRepo := repository.NewTourRepository(db)
	ctx := context.Background()

	tours := []domain.Tour{
		{
			TitleRU:            "Самарканд за один день",
			TitleEN:            ptr("Samarkand in One Day"),
			ShortDescriptionRU: ptr("Регистан, Гур-Эмир и Шахи-Зинда с лицензированным гидом"),
			ShortDescriptionEN: ptr("Registan, Gur-Emir and Shah-i-Zinda with a licensed guide"),
			Price:              95,
			Currency:           domain.CurrencyUSD,
			Duration:           ptr("10 часов"),
			Location:           ptr("Самарканд"),
			TourType:           domain.TourIndividual,
			IncludedRU:         domain.StringList{"Транспорт", "Гид", "Вода"},
			IncludedEN:         domain.StringList{"Transport", "Guide", "Water"},
			ExcludedRU:         domain.StringList{"Входные билеты", "Обед"},
			ExcludedEN:         domain.StringList{"Entrance tickets", "Lunch"},
			IsPublished:        true,
			SortOrder:          1,
		},
		{
			TitleRU:            "Бухара: святая и древняя",
			TitleEN:            ptr("Bukhara: Sacred and Ancient"),
			ShortDescriptionRU: ptr("Прогулка по старому городу и торговым куполам"),
			ShortDescriptionEN: ptr("A walk through the old town and trading domes"),
			Price:              120,
			Currency:           domain.CurrencyUSD,
			Duration:           ptr("2 дня"),
			Location:           ptr("Бухара"),
			TourType:           domain.TourGroup,
			IncludedRU:         domain.StringList{"Транспорт", "Гид", "Отель"},
			IsPublished:        true,
			SortOrder:          2,
		},
		{
			TitleRU:   "Хива и крепости Хорезма",
			Price:     1500000,
			Currency:  domain.CurrencyUZS,
			Location:  ptr("Хива"),
			TourType:  domain.TourIndividual,
			SortOrder: 3,
			// not published yet, edited in the admin panel first
		},
	}

	for i := range tours {
		if err := tourRepo.Create(ctx, &tours[i]); err != nil {
			log.Fatal("tour create failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	bookingRepo := repository.NewBookingRepository(db)
	bookings := []domain.Booking{
		{
			TourID:        &tours[0].ID,
			CustomerName:  "Елена Морозова",
			CustomerPhone: "+998901234567",
			CustomerEmail: ptr("elena@example.com"),
			PreferredDate: ptr("2026-09-14"),
			GuestsCount:   2,
			Status:        domain.BookingNew,
		},
		{
			CustomerName:  "John Smith",
			CustomerPhone: "+447700900123",
			Message:       ptr("Interested in a multi-day trip across three cities"),
			GuestsCount:   4,
			Status:        domain.BookingConfirmed,
		},
	}

	for i := range bookings {
		if err := bookingRepo.Create(ctx, &bookings[i]); err != nil {
			log.Fatal("booking create failed:", err)
		}
	}

	log.Println("Seed complete.")
	log.Println("Admin login: admin@jamtrips.uz / admin123")
}

func ptr(s string) *string { return &s }

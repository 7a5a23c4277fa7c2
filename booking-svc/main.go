package main

import (
	"log"
	"time"

	"tablebook/auth"
	httpapi "tablebook/booking-svc/internal/api/http"
	"tablebook/booking-svc/internal/service"
	"tablebook/booking-svc/internal/storage"
	"tablebook/config"
)

func main() {
	config.Load()

	var repository service.BookingRepository
	switch config.GetEnv("STORAGE", "postgres") {
	case "memory":
		log.Println("Using in-memory booking store")
		repository = storage.NewMemoryRepository(storage.SeedTables())
	default:
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal(err)
		}
		repository = pg
	}

	writer := config.NewKafkaWriter(config.BookingsTopic)
	defer writer.Close()

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}
	bookings := service.NewBookingService(repository, storage.NewKafkaPublisher(writer), qr)

	signer := auth.NewSigner(config.GetEnv("JWT_SECRET", ""), 24*time.Hour)
	handler := httpapi.NewHandler(bookings, signer)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), httpapi.NewRouter(handler))
}

package main

import (
	"log"
	"time"

	"tablebook/auth"
	"tablebook/config"
	httpapi "tablebook/menu-svc/internal/api/http"
	"tablebook/menu-svc/internal/service"
	"tablebook/menu-svc/internal/storage"
)

func main() {
	config.Load()

	var repository service.MenuRepository
	switch config.GetEnv("STORAGE", "postgres") {
	case "memory":
		log.Println("Using in-memory menu store")
		repository = storage.NewMemoryRepository(storage.SeedItems("1"))
	default:
		db := config.MustInitPostgres()
		defer db.Close()
		repository = storage.NewPostgresRepository(db)
	}

	signer := auth.NewSigner(config.GetEnv("JWT_SECRET", ""), 24*time.Hour)
	handler := httpapi.NewHandler(service.NewMenuService(repository), signer)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(handler))
}

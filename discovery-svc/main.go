package main

import (
	"log"
	"time"

	"tablebook/auth"
	"tablebook/config"
	httpapi "tablebook/discovery-svc/internal/api/http"
	"tablebook/discovery-svc/internal/service"
	"tablebook/discovery-svc/internal/storage"
)

func main() {
	config.Load()

	var repository service.RestaurantRepository
	switch config.GetEnv("STORAGE", "postgres") {
	case "memory":
		log.Println("Using in-memory restaurant catalog")
		repository = storage.NewSeedCatalog()
	default:
		db := config.MustInitPostgres()
		defer db.Close()
		repository = storage.NewPostgresRepository(db)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, config.GetDuration("SEARCH_CACHE_TTL", 30*time.Second))

	signer := auth.NewSigner(config.GetEnv("JWT_SECRET", ""), 24*time.Hour)

	discovery := service.NewDiscoveryService(repository, cache, cache)
	handler := httpapi.NewHandler(discovery, signer)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebook/auth"
	"tablebook/config"
	httpapi "tablebook/stats-svc/internal/api/http"
	"tablebook/stats-svc/internal/service"
	"tablebook/stats-svc/internal/storage"
)

func main() {
	config.Load()

	rdb := config.MustInitRedis()
	defer rdb.Close()
	store := storage.NewRedisStore(rdb, config.GetDuration("STATS_TTL", 30*24*time.Hour))

	reader := config.NewKafkaReader(config.BookingsTopic, config.GetEnv("KAFKA_GROUP_ID", "stats-svc"))
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go service.NewConsumer(reader, store).Start(ctx)

	signer := auth.NewSigner(config.GetEnv("JWT_SECRET", ""), 24*time.Hour)
	handler := httpapi.NewHandler(service.NewStatsService(store), signer)

	log.Println("Stats consumer attached to topic", config.BookingsTopic)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8084"), httpapi.NewRouter(handler))
}

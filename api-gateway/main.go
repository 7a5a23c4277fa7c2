package main

import (
	"log"
	"net/http"
	"time"

	"tablebook/api-gateway/internal/gateway"
	"tablebook/config"

	"github.com/rs/cors"
)

func main() {
	config.Load()

	cfg := gateway.Config{
		DiscoverySvcURL: config.GetEnv("DISCOVERY_SVC_URL", "http://localhost:8081"),
		BookingSvcURL:   config.GetEnv("BOOKING_SVC_URL", "http://localhost:8082"),
		MenuSvcURL:      config.GetEnv("MENU_SVC_URL", "http://localhost:8083"),
		StatsSvcURL:     config.GetEnv("STATS_SVC_URL", "http://localhost:8084"),
	}

	client := &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 15*time.Second)}
	gw := gateway.NewGateway(cfg, client)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{config.GetEnv("ALLOWED_ORIGIN", "*")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Println("API Gateway starting on", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

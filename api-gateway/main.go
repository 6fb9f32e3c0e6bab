package main

import (
	"log"
	"net/http"
	"time"

	"food-ordering/api-gateway/internal/gateway"
	"food-ordering/config"
	"food-ordering/logger"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	logger := logger.New("api-gateway")

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: cfg.OrderSvcURL,
		SalesSvcURL: cfg.SalesSvcURL,
	}, &http.Client{Timeout: 30 * time.Second}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              cfg.GatewayHTTPAddr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("api gateway starting", "addr", cfg.GatewayHTTPAddr,
		"order_svc", cfg.OrderSvcURL, "sales_svc", cfg.SalesSvcURL)
	log.Fatal(server.ListenAndServe())
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"food-ordering/config"
	"food-ordering/logger"
	httpapi "food-ordering/sales-svc/internal/api/http"
	"food-ordering/sales-svc/internal/service"
	"food-ordering/sales-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := logger.New("sales-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaTopic, "sales-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store, logger)
	handler := httpapi.NewHandler(service.NewSalesService(store, nil), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Start(ctx)
	}()

	server := &http.Server{
		Addr:              cfg.SalesHTTPAddr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("sales service starting", "addr", cfg.SalesHTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Sales service failed:", err)
	}
	wg.Wait()
}

package main

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"takeaway/config"
	httpapi "takeaway/order-svc/internal/api/http"
	"takeaway/order-svc/internal/service"
	"takeaway/order-svc/internal/storage"

	"github.com/sirupsen/logrus"
)

func newServer(db *sql.DB, publisher service.OrderPublisher, publicBaseURL string) http.Handler {
	repo := storage.NewPostgresRepository(db)
	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo),
		service.NewDishService(repo),
		service.NewUserService(repo),
		service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: publicBaseURL}),
	)
	return httpapi.NewRouter(handler)
}

func main() {
	config.LoadEnv()
	config.InitLogger("order-svc")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	closers := []io.Closer{db}

	if err := storage.NewPostgresRepository(db).EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ensure schema")
	}
	logrus.Info("database schema ready")

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(config.OrdersTopic()); writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
		closers = append(closers, writer)
	} else {
		logrus.Warn("KAFKA_BROKER not set, order events disabled")
	}

	handler := newServer(db, publisher, config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"))
	if err := config.Serve(ctx, "Order Service", config.GetEnv("HTTP_ADDR", ":8081"), handler); err != nil {
		logrus.WithError(err).Error("server stopped")
	}

	if err := config.CloseAll(closers...); err != nil {
		logrus.WithError(err).Error("failed to release resources")
	}
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"takeaway/api-gateway/internal/gateway"
	"takeaway/config"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func newServer(cfg gateway.Config, client gateway.HTTPClient) http.Handler {
	gw := gateway.NewGateway(cfg, client)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	config.LoadEnv()
	config.InitLogger("api-gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := gateway.Config{
		OrderSvcURL: config.GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		StatsSvcURL: config.GetEnv("STATS_SVC_URL", "http://localhost:8082"),
	}
	client := &http.Client{Timeout: 30 * time.Second}

	if err := config.Serve(ctx, "API Gateway", config.GetEnv("HTTP_ADDR", ":8080"), newServer(cfg, client)); err != nil {
		logrus.WithError(err).Error("server stopped")
	}
}

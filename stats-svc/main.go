package main

import (
	"context"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"takeaway/config"
	httpapi "takeaway/stats-svc/internal/api/http"
	"takeaway/stats-svc/internal/service"
	"takeaway/stats-svc/internal/storage"

	"github.com/sirupsen/logrus"
)

func newServer(store service.StoreInterface) http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(service.NewStatsService(store)))
}

func main() {
	config.LoadEnv()
	config.InitLogger("stats-svc")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	closers := []io.Closer{rdb}
	store := storage.NewStore(rdb)

	consumerDone := make(chan struct{})
	if reader := config.NewKafkaReader(config.OrdersTopic(), "stats-svc"); reader != nil {
		closers = append(closers, reader)
		go func() {
			defer close(consumerDone)
			service.NewConsumer(reader, store).Start(ctx)
		}()
	} else {
		logrus.Warn("KAFKA_BROKER not set, stats will not be updated")
		close(consumerDone)
	}

	if err := config.Serve(ctx, "Stats Service", config.GetEnv("HTTP_ADDR", ":8082"), newServer(store)); err != nil {
		logrus.WithError(err).Error("server stopped")
		stop()
	}
	<-consumerDone

	if err := config.CloseAll(closers...); err != nil {
		logrus.WithError(err).Error("failed to release resources")
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"takeaway/stats-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is cancelled or the reader is closed.
// Messages that cannot be decoded or applied are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	logrus.Info("starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				logrus.Info("order event consumer stopped")
				return
			}
			logrus.WithError(err).Warn("failed to read order event")
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}
		c.handleMessage(ctx, message)
	}
}

func (c *Consumer) handleMessage(ctx context.Context, message kafka.Message) {
	var evt domain.OrderEvent
	if err := json.Unmarshal(message.Value, &evt); err != nil {
		logrus.WithError(err).WithField("offset", message.Offset).Warn("skipping malformed order event")
		return
	}
	if err := c.ProcessEvent(ctx, evt); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":    evt.Type,
			"order_id": evt.OrderID,
		}).Warn("failed to apply order event")
	}
}

// ProcessEvent applies one event to the counters. Unknown types are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) error {
	switch evt.Type {
	case domain.EventOrderCreated:
		return c.Store.RecordOrderCreated(ctx, evt)
	case domain.EventOrderStatusChanged:
		return c.Store.RecordStatusChange(ctx, evt)
	default:
		logrus.WithField("event", evt.Type).Debug("ignoring order event")
		return nil
	}
}

var _ ConsumerInterface = (*Consumer)(nil)

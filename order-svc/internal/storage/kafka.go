package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"takeaway/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishOrderEvent keys messages by restaurant so one restaurant's events
// stay ordered within a partition.
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Type, err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(evt.RestaurantID)),
		Value: payload,
	})
}

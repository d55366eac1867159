package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"takeaway/stats-svc/internal/domain"
	"takeaway/stats-svc/internal/mocks"
	"takeaway/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputEvent     domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
		wantErr        bool
	}{
		{
			name:       "order created",
			inputEvent: domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: 1, RestaurantID: 10, TotalPrice: 25},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderCreated", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()
			},
		},
		{
			name:       "status changed",
			inputEvent: domain.OrderEvent{Type: domain.EventOrderStatusChanged, OrderID: 1, RestaurantID: 10, Status: "completed"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordStatusChange", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()
			},
		},
		{
			name:       "redis error",
			inputEvent: domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: 1, RestaurantID: 10},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderCreated", mock.Anything, mock.Anything).Return(errors.New("redis error")).Once()
			},
			wantErr: true,
		},
		{
			name:           "unknown type",
			inputEvent:     domain.OrderEvent{Type: "order_refunded", OrderID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			err := consumer.ProcessEvent(context.Background(), testCase.inputEvent)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_StartSkipsMalformedAndStopsOnEOF(t *testing.T) {
	mockReader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	payload, _ := json.Marshal(domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: 4, RestaurantID: 2, TotalPrice: 12})
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{bad json")}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, io.EOF).Once()
	mockStore.On("RecordOrderCreated", mock.Anything, mock.MatchedBy(func(evt domain.OrderEvent) bool {
		return evt.OrderID == 4 && evt.RestaurantID == 2 && evt.TotalPrice == 12
	})).Return(nil).Once()

	consumer := service.NewConsumer(mockReader, mockStore)
	consumer.Start(context.Background())
}

func TestConsumer_StartKeepsGoingAfterStoreError(t *testing.T) {
	mockReader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	payload, _ := json.Marshal(domain.OrderEvent{Type: domain.EventOrderStatusChanged, OrderID: 4, RestaurantID: 2, Status: "completed"})
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Twice()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, io.EOF).Once()
	mockStore.On("RecordStatusChange", mock.Anything, mock.Anything).Return(errors.New("redis error")).Once()
	mockStore.On("RecordStatusChange", mock.Anything, mock.Anything).Return(nil).Once()

	consumer := service.NewConsumer(mockReader, mockStore)
	consumer.Start(context.Background())
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	mockReader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Once()

	consumer := service.NewConsumer(mockReader, mockStore)
	consumer.Start(ctx)
}

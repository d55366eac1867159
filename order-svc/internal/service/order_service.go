package service

import (
	"context"
	"time"

	"takeaway/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

// NewOrderService accepts a nil publisher, in which case no events are sent.
func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Create persists the order atomically and returns it re-read with its items.
// The total is stored as sent; it is not checked against the items.
func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if req.UserID <= 0 || req.RestaurantID <= 0 || len(req.Items) == 0 {
		return nil, domain.ErrInvalidOrder
	}

	orderID, err := s.repo.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventOrderCreated, &order.OrderHeader)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	header, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.OrderItem{}
	}
	return &domain.Order{OrderHeader: *header, Items: items}, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int) ([]domain.OrderHeader, error) {
	return s.repo.ListUserOrders(ctx, userID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*domain.OrderHeader, error) {
	order, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.EventOrderStatusChanged, order)
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

// publish is best effort: the order is already committed, so a broker
// failure is logged and swallowed.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.OrderHeader) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalPrice:   order.TotalPrice,
		Status:       order.Status,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(context.WithoutCancel(ctx), evt); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":    eventType,
			"order_id": order.ID,
		}).Warn("failed to publish order event")
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)

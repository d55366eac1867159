package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"takeaway/order-svc/internal/domain"
)

const orderColumns = `id, user_id, restaurant_id, COALESCE(restaurant_name, ''), total_price,
	COALESCE(status, ''), COALESCE(address, ''), COALESCE(phone, ''), created_at, updated_at`

func orderDest(order *domain.OrderHeader) []interface{} {
	return []interface{}{
		&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName, &order.TotalPrice,
		&order.Status, &order.Address, &order.Phone, &order.CreatedAt, &order.UpdatedAt,
	}
}

func scanOrder(row rowScanner) (*domain.OrderHeader, error) {
	var order domain.OrderHeader
	if err := row.Scan(orderDest(&order)...); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder writes the header and every line item in one transaction and
// returns the new order id. Items are stored exactly as the caller sent them.
func (r *PostgresRepository) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (int, error) {
	var orderID int
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, restaurant_id, restaurant_name, total_price, status, address, phone)
			VALUES ($1, $2, $3, $4, 'pending', $5, $6)
			RETURNING id`,
			req.UserID, req.RestaurantID, req.RestaurantName, req.TotalPrice, req.Address, req.Phone,
		).Scan(&orderID); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range req.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, dish_id, dish_name, dish_price, quantity)
				VALUES ($1, $2, $3, $4, $5)`,
				orderID, item.Dish.ID, item.Dish.Name, item.Dish.Price, item.Quantity,
			); err != nil {
				return fmt.Errorf("insert order item for dish %d: %w", item.Dish.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// GetOrderWithItems loads the header and its items in a single aggregated row.
func (r *PostgresRepository) GetOrderWithItems(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	var items []byte
	dest := append(orderDest(&order.OrderHeader), &items)

	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(o.restaurant_name, ''), o.total_price,
			COALESCE(o.status, ''), COALESCE(o.address, ''), COALESCE(o.phone, ''), o.created_at, o.updated_at,
			COALESCE(json_agg(json_build_object(
				'id', oi.id,
				'order_id', oi.order_id,
				'dish_id', oi.dish_id,
				'dish_name', oi.dish_name,
				'dish_price', oi.dish_price,
				'quantity', oi.quantity,
				'created_at', oi.created_at
			) ORDER BY oi.id) FILTER (WHERE oi.id IS NOT NULL), '[]'::json)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id`, id).Scan(dest...)
	if err != nil {
		return nil, notFound("order", err)
	}

	order.Items = []domain.OrderItem{}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.OrderHeader, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		return nil, notFound("order", err)
	}
	return order, nil
}

func (r *PostgresRepository) ListOrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, dish_id, COALESCE(dish_name, ''), COALESCE(dish_price, 0), quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.DishName, &item.DishPrice,
			&item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID int) ([]domain.OrderHeader, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.OrderHeader{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus overwrites the status with no transition rules.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int, status string) (*domain.OrderHeader, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns, status, id))
	if err != nil {
		return nil, notFound("order", err)
	}
	return order, nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"takeaway/order-svc/internal/domain"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// notFound turns sql.ErrNoRows into "<entity> not found" matching domain.ErrNotFound.
func notFound(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", entity, domain.ErrNotFound)
	}
	return err
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

const restaurantColumns = `id, name, COALESCE(image, ''), COALESCE(rating, 0), COALESCE(sales, 0),
	COALESCE(delivery_time, ''), COALESCE(delivery_fee, 0), COALESCE(min_price, 0),
	COALESCE(distance, ''), COALESCE(tags, ''), COALESCE(address, '')`

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var tags string
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Image, &rest.Rating, &rest.Sales,
		&rest.DeliveryTime, &rest.DeliveryFee, &rest.MinPrice,
		&rest.Distance, &tags, &rest.Address); err != nil {
		return nil, err
	}
	rest.Tags = splitTags(tags)
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (name, image, rating, sales, delivery_time, delivery_fee, min_price, distance, tags, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		rest.Name, rest.Image, rest.Rating, rest.Sales, rest.DeliveryTime, rest.DeliveryFee,
		rest.MinPrice, rest.Distance, strings.Join(rest.Tags, ","), rest.Address,
	).Scan(&rest.ID)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	if rest.Tags == nil {
		rest.Tags = []string{}
	}
	return nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants ORDER BY sales DESC")
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id))
	if err != nil {
		return nil, notFound("restaurant", err)
	}
	return rest, nil
}

const dishColumns = `id, restaurant_id, name, COALESCE(image, ''), price, COALESCE(description, ''),
	COALESCE(category, ''), COALESCE(stock, 0), created_at, updated_at`

func scanDish(row rowScanner) (*domain.Dish, error) {
	var dish domain.Dish
	if err := row.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Image, &dish.Price,
		&dish.Description, &dish.Category, &dish.Stock, &dish.CreatedAt, &dish.UpdatedAt); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO dishes (restaurant_id, name, image, price, description, category, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		dish.RestaurantID, dish.Name, dish.Image, dish.Price, dish.Description, dish.Category, dish.Stock,
	).Scan(&dish.ID, &dish.CreatedAt, &dish.UpdatedAt)
	if hasPQCode(err, pqForeignKeyViolation) {
		return fmt.Errorf("restaurant %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE restaurant_id = $1 ORDER BY category, id", restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, *dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	dish, err := scanDish(r.DB.QueryRowContext(ctx, "SELECT "+dishColumns+" FROM dishes WHERE id = $1", id))
	if err != nil {
		return nil, notFound("dish", err)
	}
	return dish, nil
}

package storage

import (
	"context"
	"fmt"
)

// Tables are created in foreign-key order. Existing tables are left untouched;
// there is no versioned migration.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		image VARCHAR(255),
		rating NUMERIC(3,1) DEFAULT 0,
		sales INT DEFAULT 0,
		delivery_time VARCHAR(20),
		delivery_fee NUMERIC(10,2) DEFAULT 0,
		min_price NUMERIC(10,2) DEFAULT 0,
		distance VARCHAR(20),
		tags VARCHAR(255),
		address VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dishes (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		image VARCHAR(255),
		price NUMERIC(10,2) NOT NULL,
		description TEXT,
		category VARCHAR(50),
		stock INT DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		phone VARCHAR(20) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		address VARCHAR(255),
		avatar VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id),
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		restaurant_name VARCHAR(100),
		total_price NUMERIC(10,2) NOT NULL,
		status TEXT DEFAULT 'pending',
		address VARCHAR(255),
		phone VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// dish_id has no cascade, so deleting a dish leaves historical items in place.
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		dish_id INT NOT NULL REFERENCES dishes(id),
		dish_name VARCHAR(100),
		dish_price NUMERIC(10,2),
		quantity INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	"CREATE INDEX IF NOT EXISTS idx_dishes_restaurant_id ON dishes (restaurant_id)",
	"CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)",
	"CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)",
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}

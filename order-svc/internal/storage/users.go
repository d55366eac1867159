package storage

import (
	"context"
	"fmt"

	"takeaway/order-svc/internal/domain"
)

const userColumns = "id, username, phone, COALESCE(address, ''), COALESCE(avatar, '')"

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.Phone, &user.Address, &user.Avatar); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `
		INSERT INTO users (username, phone, password, address)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		req.Username, req.Phone, req.Password, req.Address))
	if hasPQCode(err, pqUniqueViolation) {
		return nil, domain.ErrDuplicatePhone
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindUserByCredentials compares the stored password as plain text.
func (r *PostgresRepository) FindUserByCredentials(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE phone = $1 AND password = $2", phone, password))
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, id int, req domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `
		UPDATE users SET username = $1, address = $2, avatar = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING `+userColumns,
		req.Username, req.Address, req.Avatar, id))
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

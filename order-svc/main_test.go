package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupOrderTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return newServer(mockDB, nil, "http://localhost:8080"), mock
}

func TestHealthCheck(t *testing.T) {
	handler, _ := setupOrderTestServer(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["service"] != "order-svc" {
		t.Fatalf("unexpected service field: %v", body["service"])
	}
}

func TestGetOrderWiredToPostgres(t *testing.T) {
	handler, mock := setupOrderTestServer(t)
	now := time.Now()

	mock.ExpectQuery("FROM orders WHERE id").WithArgs(3).WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "restaurant_name", "total_price",
			"status", "address", "phone", "created_at", "updated_at"}).
			AddRow(3, 1, 2, "Noodle House", 56.0, "pending", "1 Main St", "13800000000", now, now),
	)
	mock.ExpectQuery("FROM order_items").WithArgs(3).WillReturnRows(
		sqlmock.NewRows([]string{"id", "order_id", "dish_id", "dish_name", "dish_price", "quantity", "created_at"}).
			AddRow(1, 3, 10, "Beef Noodles", 28.0, 2, now),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders/3", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Code int `json:"code"`
		Data struct {
			ID    int `json:"id"`
			Items []struct {
				DishName string `json:"dish_name"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.ID != 3 || len(body.Data.Items) != 1 || body.Data.Items[0].DishName != "Beef Noodles" {
		t.Fatalf("unexpected order payload: %+v", body.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetOrderMissingReturns404(t *testing.T) {
	handler, mock := setupOrderTestServer(t)
	mock.ExpectQuery("FROM orders WHERE id").WithArgs(404).WillReturnRows(
		sqlmock.NewRows([]string{"id"}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders/404", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

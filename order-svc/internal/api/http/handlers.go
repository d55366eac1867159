package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"takeaway/order-svc/internal/domain"
	"takeaway/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	Users       service.UserServiceInterface
	Orders      service.OrderServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, dishSvc service.DishServiceInterface,
	userSvc service.UserServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Dishes:      dishSvc,
		Users:       userSvc,
		Orders:      orderSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.getDish).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/orders", h.getUserOrders).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id:[0-9]+}", h.updateUser).Methods("PUT")
}

// pathID reads a numeric route variable. The route patterns only admit
// digits, so a failure here means the value overflowed int.
func pathID(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[key])
	if err != nil {
		writeJSON(w, http.StatusNotFound, nil, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, restaurants, "success")
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if !decode(w, r, &rest) {
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		fail(w, r, err)
		return
	}
	ok(w, rest, "restaurant created")
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, rest, "success")
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	dishes, err := h.Dishes.List(r.Context(), restaurantID)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, dishes, "success")
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var dish domain.Dish
	if !decode(w, r, &dish) {
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Dishes.Create(r.Context(), &dish); err != nil {
		fail(w, r, err)
		return
	}
	ok(w, dish, "dish created")
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	dish, err := h.Dishes.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, dish, "success")
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.Create(r.Context(), &req)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, order, "order created")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, order, "success")
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req domain.UpdateStatusRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, order, "order status updated")
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, valid := pathID(w, r, "userId")
	if !valid {
		return
	}
	orders, err := h.Orders.ListByUser(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, orders, "success")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.Users.Login(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, user, "login successful")
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.Users.Register(r.Context(), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, user, "registered")
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, user, "success")
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req domain.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.Users.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, user, "profile updated")
}

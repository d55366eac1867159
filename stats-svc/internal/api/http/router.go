package httpapi

import (
	"net/http"

	"takeaway/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog)
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"takeaway/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
	StatsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

// Connection-scoped headers are not forwarded in either direction.
var hopHeaders = map[string]bool{
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authenticate":  true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		dst[k] = v
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"code": status, "message": message})
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log := middleware.Log(r).WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"upstream": targetURL,
	})

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to build upstream request")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	copyHeaders(req.Header, r.Header)
	req.ContentLength = r.ContentLength
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("upstream unavailable")
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy upstream response")
	}
}

// RouteHandler sends /api/stats/* to stats-svc and every other API path to
// order-svc. Anything outside /api is not served.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/stats" || strings.HasPrefix(path, "/api/stats/"):
		g.ProxyRequest(w, r, g.config.StatsSvcURL)
	case strings.HasPrefix(path, "/api/"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog)
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

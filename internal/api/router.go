package api

import (
	"net/http"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc handlers.PredictionService) http.Handler {
	mux := http.NewServeMux()

	predictHandler := &handlers.PredictHandler{Service: svc}

	mux.HandleFunc("/api/health", handlers.Health)
	mux.HandleFunc("/api/predict", predictHandler.Predict)

	return corsMiddleware(loggingMiddleware(mux))
}

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/adapters/estimator"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/adapters/geocode"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/adapters/route"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/adapters/trafficctx"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/api"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/config"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, ORS, LLM, ML service) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.ORSAPIKey == "" {
		// Not fatal: health stays up, but every prediction will fail with a
		// configuration error until the key is set.
		logger.Warn("ORS_API_KEY not set; route distance lookups will fail")
	}

	predictor := &services.Predictor{
		Geocoder:  geocode.NewNominatimGeocoder(cfg.ContactEmail),
		Distance:  route.NewORSDirectionsProvider(cfg.ORSAPIKey),
		Context:   trafficctx.NewLLMContextProvider(cfg.LLMToken, cfg.LLMBaseURL, cfg.LLMModel),
		Estimator: estimator.NewHTTPEstimator(cfg.EstimatorURL),
	}

	router := api.NewRouter(predictor)

	// Write timeout covers the worst case of four sequential upstream calls.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/api/dto"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"go.uber.org/zap"
)

// PredictionService is the orchestrator contract the handler depends on.
type PredictionService interface {
	Predict(ctx context.Context, trip domain.Trip) (*domain.Prediction, error)
}

type PredictHandler struct {
	Service PredictionService
}

// Predict handles POST /api/predict. Request validation stops at field
// presence; everything else is the pipeline's job. Every pipeline failure
// collapses into one 500-class response carrying the error's message.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PredictRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" ||
		strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		writeError(w, r, http.StatusBadRequest, "from, to, date and time are required")
		return
	}

	trip := domain.Trip{
		From: req.From,
		To:   req.To,
		Date: req.Date,
		Time: req.Time,
	}

	// Detach from the request context so a client disconnect does not cancel
	// in-flight upstream calls; they finish or hit their own timeouts.
	ctx := context.WithoutCancel(r.Context())

	result, err := h.Service.Predict(ctx, trip)
	if err != nil {
		logger.Error("prediction failed",
			zap.String("from", trip.From),
			zap.String("to", trip.To),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	res := dto.PredictResponse{
		EstimatedTimeMinutes: result.EstimatedMinutes,
		Route: dto.RouteSummary{
			From:       result.Trip.From,
			To:         result.Trip.To,
			Date:       result.Trip.Date,
			Time:       result.Trip.Time,
			DistanceKm: result.DistanceKm,
		},
		Features:       result.Features,
		WeatherSummary: result.WeatherSummary,
	}

	writeJSON(w, r, http.StatusOK, res)
}

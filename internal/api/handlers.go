package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/omarwaleed/optionlens/internal/analytics"
	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/pkg/logger"
)

// AnalyticsHandler handles chain analytics endpoints
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// ListSymbols handles GET /api/v1/symbols
func (h *AnalyticsHandler) ListSymbols(w http.ResponseWriter, r *http.Request) {
	symbols, err := h.service.Symbols(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve symbols")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symbols": symbols,
		"count":   len(symbols),
	})
}

// ListExpirations handles GET /api/v1/symbols/{symbol}/expirations
func (h *AnalyticsHandler) ListExpirations(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	expirations, err := h.service.Expirations(r.Context(), symbol)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve expirations")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":      symbol,
		"expirations": expirations,
		"count":       len(expirations),
	})
}

// GetAnalytics handles GET /api/v1/analytics/{symbol}
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	query := r.URL.Query()

	expiration := query.Get("expiration")
	if expiration == "" {
		respondWithError(w, http.StatusBadRequest, "expiration query parameter is required")
		return
	}

	metric := query.Get("metric")
	if metric == "" {
		metric = models.MetricOpenInterest
	}

	params, err := parseParams(query.Get("params"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid params: "+err.Error())
		return
	}
	overrideIntParam(query, "sma_period", &params.SMAPeriod)
	overrideIntParam(query, "ema_period", &params.EMAPeriod)
	overrideIntParam(query, "rsi_period", &params.RSIPeriod)
	overrideIntParam(query, "dmi_period", &params.DMIPeriod)
	overrideIntParam(query, "bollinger_period", &params.BollingerPeriod)
	overrideFloatParam(query, "bollinger_k", &params.BollingerK)
	overrideIntParam(query, "keltner_period", &params.KeltnerPeriod)
	overrideFloatParam(query, "keltner_multiplier", &params.KeltnerMultiplier)
	overrideIntParam(query, "macd_fast", &params.MACDFast)
	overrideIntParam(query, "macd_slow", &params.MACDSlow)
	overrideIntParam(query, "macd_signal", &params.MACDSignal)
	overrideIntParam(query, "squeeze_period", &params.SqueezePeriod)
	overrideFloatParam(query, "overbought", &params.Overbought)
	overrideFloatParam(query, "oversold", &params.Oversold)
	overrideIntParam(query, "zone_lookback", &params.ZoneLookback)
	overrideFloatParam(query, "zone_tolerance", &params.ZoneTolerance)

	resp, err := h.service.Compute(r.Context(), analytics.Request{
		Symbol:     symbol,
		Expiration: expiration,
		Metric:     metric,
		Side:       query.Get("side"),
		StartDate:  query.Get("from"),
		EndDate:    query.Get("to"),
		Params:     params,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidMetric) || errors.Is(err, models.ErrInvalidSide) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Analytics computation failed",
			logger.ErrorField(err),
			logger.String("symbol", symbol),
			logger.String("expiration", expiration),
		)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// parseParams decodes an optional JSON params blob from the query string.
func parseParams(raw string) (analytics.Params, error) {
	params := analytics.Params{}
	if raw == "" {
		return params, nil
	}
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return params, err
	}
	return params, nil
}

// overrideIntParam replaces dst when the query carries a parseable value.
func overrideIntParam(query map[string][]string, key string, dst *int) {
	values := query[key]
	if len(values) == 0 {
		return
	}
	if v, err := strconv.Atoi(values[0]); err == nil {
		*dst = v
	}
}

// overrideFloatParam replaces dst when the query carries a parseable value.
func overrideFloatParam(query map[string][]string, key string, dst *float64) {
	values := query[key]
	if len(values) == 0 {
		return
	}
	if v, err := strconv.ParseFloat(values[0], 64); err == nil {
		*dst = v
	}
}

// IngestHandler handles chain-history ingest endpoints
type IngestHandler struct {
	service *analytics.Service
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *analytics.Service) *IngestHandler {
	return &IngestHandler{service: service}
}

// IngestRecords handles POST /api/v1/chains
func (h *IngestHandler) IngestRecords(w http.ResponseWriter, r *http.Request) {
	var records []*models.ChainRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(records) == 0 {
		respondWithError(w, http.StatusBadRequest, "No records provided")
		return
	}

	if err := h.service.Ingest(r.Context(), records); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSymbol),
			errors.Is(err, models.ErrInvalidExpiration),
			errors.Is(err, models.ErrInvalidTradeDate),
			errors.Is(err, models.ErrInvalidSide),
			errors.Is(err, models.ErrInvalidStrike):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Ingest failed", logger.ErrorField(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to store records")
		}
		return
	}

	logger.Info("Chain records ingested", logger.Int("count", len(records)))

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"count": len(records),
	})
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondWithJSON writes a JSON response with the given status code
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

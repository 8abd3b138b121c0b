package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/omarwaleed/optionlens/internal/analytics"
	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/internal/storage"
)

func newTestService(t *testing.T, days int) *analytics.Service {
	t.Helper()
	store := storage.NewMockChainStorage()

	records := make([]*models.ChainRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, &models.ChainRecord{
			Symbol:          "AAPL",
			Expiration:      "2024-06-21",
			Strike:          180,
			Side:            models.SideCall,
			TradeDate:       testDay(i),
			OpenInterest:    float64(1000 + 10*i),
			Premium:         4,
			Volume:          100,
			UnderlyingPrice: 180,
		})
	}
	if err := store.WriteRecords(context.Background(), records); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return analytics.NewService(store, nil)
}

func testDay(i int) string {
	return fmt.Sprintf("2024-01-%02d", i+1)
}

func TestAnalyticsHandler_GetAnalytics(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 30))

	req := httptest.NewRequest("GET", "/api/v1/analytics/AAPL?expiration=2024-06-21", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()

	handler.GetAnalytics(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var response models.AnalyticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Dates) != 30 {
		t.Errorf("Expected 30 dates, got %d", len(response.Dates))
	}
	if len(response.SMA) != 30 {
		t.Errorf("Expected 30 SMA points, got %d", len(response.SMA))
	}
	if response.Metric != models.MetricOpenInterest {
		t.Errorf("Expected default metric %q, got %q", models.MetricOpenInterest, response.Metric)
	}
	if response.Summaries["rsi"] == "" {
		t.Error("Expected RSI summary in response")
	}
}

func TestAnalyticsHandler_GetAnalytics_MissingExpiration(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 5))

	req := httptest.NewRequest("GET", "/api/v1/analytics/AAPL", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()

	handler.GetAnalytics(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAnalyticsHandler_GetAnalytics_UnknownMetric(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 5))

	req := httptest.NewRequest("GET", "/api/v1/analytics/AAPL?expiration=2024-06-21&metric=delta", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()

	handler.GetAnalytics(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAnalyticsHandler_GetAnalytics_ParamOverride(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 10))

	req := httptest.NewRequest("GET", "/api/v1/analytics/AAPL?expiration=2024-06-21&sma_period=3", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()

	handler.GetAnalytics(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var response models.AnalyticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	// With period 3 the third point is the first defined one.
	if response.SMA[1].Valid {
		t.Error("Expected SMA[1] to be absent with period 3")
	}
	if !response.SMA[2].Valid {
		t.Error("Expected SMA[2] to be defined with period 3")
	}
}

func TestAnalyticsHandler_ListSymbols(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 3))

	req := httptest.NewRequest("GET", "/api/v1/symbols", nil)
	w := httptest.NewRecorder()

	handler.ListSymbols(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	symbols, ok := response["symbols"].([]interface{})
	if !ok {
		t.Fatal("Expected 'symbols' array in response")
	}
	if len(symbols) != 1 || symbols[0] != "AAPL" {
		t.Errorf("Expected [AAPL], got %v", symbols)
	}
}

func TestAnalyticsHandler_ListExpirations(t *testing.T) {
	handler := NewAnalyticsHandler(newTestService(t, 3))

	req := httptest.NewRequest("GET", "/api/v1/symbols/AAPL/expirations", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	w := httptest.NewRecorder()

	handler.ListExpirations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	expirations, ok := response["expirations"].([]interface{})
	if !ok {
		t.Fatal("Expected 'expirations' array in response")
	}
	if len(expirations) != 1 || expirations[0] != "2024-06-21" {
		t.Errorf("Expected [2024-06-21], got %v", expirations)
	}
}

func TestIngestHandler_IngestRecords(t *testing.T) {
	store := storage.NewMockChainStorage()
	handler := NewIngestHandler(analytics.NewService(store, nil))

	records := []map[string]interface{}{
		{
			"symbol":        "SPY",
			"expiration":    "2024-09-20",
			"strike":        450.0,
			"side":          "put",
			"trade_date":    "2024-01-02",
			"open_interest": 1200.0,
			"premium":       3.5,
			"volume":        800.0,
		},
	}

	body, _ := json.Marshal(records)
	req := httptest.NewRequest("POST", "/api/v1/chains", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.IngestRecords(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	symbols, err := store.ListSymbols(context.Background())
	if err != nil {
		t.Fatalf("ListSymbols failed: %v", err)
	}
	if len(symbols) != 1 || symbols[0] != "SPY" {
		t.Errorf("Expected record to be stored, got symbols %v", symbols)
	}
}

func TestIngestHandler_IngestRecords_InvalidBody(t *testing.T) {
	handler := NewIngestHandler(analytics.NewService(storage.NewMockChainStorage(), nil))

	req := httptest.NewRequest("POST", "/api/v1/chains", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	handler.IngestRecords(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestIngestHandler_IngestRecords_ValidationFailure(t *testing.T) {
	handler := NewIngestHandler(analytics.NewService(storage.NewMockChainStorage(), nil))

	records := []map[string]interface{}{
		{"symbol": "", "expiration": "2024-09-20", "strike": 450.0, "side": "put", "trade_date": "2024-01-02"},
	}

	body, _ := json.Marshal(records)
	req := httptest.NewRequest("POST", "/api/v1/chains", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.IngestRecords(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// MockChainStorage is an in-memory ChainStorage for tests.
type MockChainStorage struct {
	mu      sync.RWMutex
	records []*models.ChainRecord

	// WriteErr and QueryErr force failures when set.
	WriteErr error
	QueryErr error
}

// NewMockChainStorage creates an empty in-memory store.
func NewMockChainStorage() *MockChainStorage {
	return &MockChainStorage{}
}

// WriteRecords appends records to the in-memory store.
func (m *MockChainStorage) WriteRecords(ctx context.Context, records []*models.ChainRecord) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, records...)
	return nil
}

// GetMetricSamples filters the stored records the way the SQL query would.
func (m *MockChainStorage) GetMetricSamples(ctx context.Context, q SampleQuery) ([]series.Sample, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	if !models.ValidMetric(q.Metric) {
		return nil, models.ErrInvalidMetric
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var samples []series.Sample
	for _, r := range m.records {
		if r.Symbol != q.Symbol || r.Expiration != q.Expiration {
			continue
		}
		if q.Side != "" && r.Side != q.Side {
			continue
		}
		if q.StartDate != "" && r.TradeDate < q.StartDate {
			continue
		}
		if q.EndDate != "" && r.TradeDate > q.EndDate {
			continue
		}
		var v float64
		switch q.Metric {
		case models.MetricOpenInterest:
			v = r.OpenInterest
		case models.MetricPremium:
			v = r.Premium
		case models.MetricVolume:
			v = r.Volume
		case models.MetricUnderlyingPrice:
			v = r.UnderlyingPrice
		}
		value := v
		samples = append(samples, series.Sample{Date: r.TradeDate, Value: &value})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date < samples[j].Date
	})
	return samples, nil
}

// ListSymbols returns the distinct stored symbols, sorted.
func (m *MockChainStorage) ListSymbols(ctx context.Context) ([]string, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var symbols []string
	for _, r := range m.records {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			symbols = append(symbols, r.Symbol)
		}
	}
	sort.Strings(symbols)
	return symbols, nil
}

// ListExpirations returns the distinct stored expirations for a symbol, sorted.
func (m *MockChainStorage) ListExpirations(ctx context.Context, symbol string) ([]string, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var expirations []string
	for _, r := range m.records {
		if r.Symbol == symbol && !seen[r.Expiration] {
			seen[r.Expiration] = true
			expirations = append(expirations, r.Expiration)
		}
	}
	sort.Strings(expirations)
	return expirations, nil
}

// Close is a no-op for the mock.
func (m *MockChainStorage) Close() error {
	return nil
}

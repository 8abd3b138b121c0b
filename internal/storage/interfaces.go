package storage

import (
	"context"

	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// SampleQuery selects the raw per-strike samples feeding one analytics
// computation. Dates are ISO formatted; empty StartDate/EndDate/Side mean
// unbounded.
type SampleQuery struct {
	Symbol     string
	Expiration string
	Metric     string
	Side       string
	StartDate  string
	EndDate    string
}

// ChainStorage defines the interface for chain-history storage operations
type ChainStorage interface {
	// WriteRecords writes chain records to storage (batch operation)
	WriteRecords(ctx context.Context, records []*models.ChainRecord) error

	// GetMetricSamples retrieves the raw samples matching a query, one per
	// strike/side per trade date, ordered by trade date
	GetMetricSamples(ctx context.Context, q SampleQuery) ([]series.Sample, error)

	// ListSymbols retrieves the distinct symbols present in storage
	ListSymbols(ctx context.Context) ([]string, error)

	// ListExpirations retrieves the distinct expirations stored for a symbol
	ListExpirations(ctx context.Context, symbol string) ([]string, error)

	// Close closes the storage connection
	Close() error
}

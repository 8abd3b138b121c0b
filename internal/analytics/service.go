// Package analytics turns raw chain-history samples into the full set of
// indicator series a dashboard charts: aggregation, every indicator, zones
// and summary strings. Computation is pure and always runs from the raw
// samples; nothing derived is cached or carried between calls.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/omarwaleed/optionlens/internal/cache"
	"github.com/omarwaleed/optionlens/internal/metrics"
	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/internal/storage"
	"github.com/omarwaleed/optionlens/pkg/indicator"
	"github.com/omarwaleed/optionlens/pkg/logger"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// Service computes chain analytics over a ChainStorage, with an optional
// read-through cache for the raw samples.
type Service struct {
	store storage.ChainStorage
	cache *cache.SampleCache
}

// NewService creates an analytics service. cache may be nil.
func NewService(store storage.ChainStorage, sampleCache *cache.SampleCache) *Service {
	return &Service{store: store, cache: sampleCache}
}

// Request identifies the series to analyze.
type Request struct {
	Symbol     string
	Expiration string
	Metric     string
	Side       string
	StartDate  string
	EndDate    string
	Params     Params
}

// Compute loads the raw samples for a request, aggregates them to one value
// per trade date, and computes every indicator over the aggregate. An empty
// result set is not an error: the response carries empty series and "N/A"
// summaries.
func (s *Service) Compute(ctx context.Context, req Request) (*models.AnalyticsResponse, error) {
	if !models.ValidMetric(req.Metric) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMetric, req.Metric)
	}
	if req.Side != "" && req.Side != models.SideCall && req.Side != models.SidePut {
		return nil, models.ErrInvalidSide
	}

	samples, err := s.loadSamples(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ps := series.Aggregate(samples)
	metrics.ComputeDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())

	p := req.Params.applyDefaults()
	resp := &models.AnalyticsResponse{
		Symbol:     req.Symbol,
		Expiration: req.Expiration,
		Metric:     req.Metric,
		Dates:      ps.Dates,
		Values:     ps.Values,
		Summaries:  make(map[string]string),
	}

	if err := s.computeIndicators(resp, ps, p); err != nil {
		return nil, err
	}

	logger.Debug("Analytics computed",
		logger.String("symbol", req.Symbol),
		logger.String("expiration", req.Expiration),
		logger.String("metric", req.Metric),
		logger.Int("periods", ps.Len()),
	)
	return resp, nil
}

// loadSamples reads samples through the cache when one is configured.
func (s *Service) loadSamples(ctx context.Context, req Request) ([]series.Sample, error) {
	q := storage.SampleQuery{
		Symbol:     req.Symbol,
		Expiration: req.Expiration,
		Metric:     req.Metric,
		Side:       req.Side,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	if samples, ok := s.cache.Get(ctx, q); ok {
		return samples, nil
	}

	start := time.Now()
	samples, err := s.store.GetMetricSamples(ctx, q)
	metrics.StorageQueryDuration.WithLabelValues("get_metric_samples").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}

	s.cache.Set(ctx, q, samples)
	return samples, nil
}

func (s *Service) computeIndicators(resp *models.AnalyticsResponse, ps series.PeriodSeries, p Params) error {
	var err error

	start := time.Now()
	resp.SMA, err = indicator.SMA(ps.Values, p.SMAPeriod)
	metrics.ComputeDuration.WithLabelValues("sma").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.EMA, err = indicator.EMA(ps.Values, p.EMAPeriod)
	metrics.ComputeDuration.WithLabelValues("ema").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.Bollinger, err = indicator.Bollinger(ps.Values, p.BollingerPeriod, p.BollingerK)
	metrics.ComputeDuration.WithLabelValues("bollinger").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.Keltner, err = indicator.Keltner(ps.Values, p.KeltnerPeriod, p.KeltnerMultiplier)
	metrics.ComputeDuration.WithLabelValues("keltner").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.RSI, err = indicator.RSI(ps.Values, p.RSIPeriod)
	metrics.ComputeDuration.WithLabelValues("rsi").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.MACD, err = indicator.MACD(ps.Values, p.MACDFast, p.MACDSlow, p.MACDSignal)
	metrics.ComputeDuration.WithLabelValues("macd").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.Squeeze, err = indicator.Squeeze(ps.Values, p.SqueezePeriod, p.SqueezeBBK, p.SqueezeKCK)
	metrics.ComputeDuration.WithLabelValues("squeeze").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	start = time.Now()
	resp.DMI, err = indicator.DMI(ps.Values, p.DMIPeriod)
	metrics.ComputeDuration.WithLabelValues("dmi").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	zoneCfg := indicator.ZoneConfig{
		Lookback:   p.ZoneLookback,
		Tolerance:  p.ZoneTolerance,
		MinTouches: indicator.DefaultZoneMinTouches,
		MaxZones:   indicator.DefaultZoneMax,
	}
	start = time.Now()
	resp.DemandZones, resp.SupplyZones, err = indicator.Zones(ps.Values, ps.Dates, zoneCfg)
	metrics.ComputeDuration.WithLabelValues("zones").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	resp.Summaries["rsi"] = indicator.RSISummary(resp.RSI, p.Overbought, p.Oversold)
	resp.Summaries["adx"] = indicator.ADXSummary(resp.DMI)
	resp.Summaries["macd"] = indicator.MACDSummary(resp.MACD)
	resp.Summaries["bollinger"] = indicator.BandsSummary(resp.Bollinger)
	resp.Summaries["keltner"] = indicator.BandsSummary(resp.Keltner)
	resp.Summaries["squeeze"] = indicator.SqueezeSummary(resp.Squeeze)
	return nil
}

// Symbols lists the symbols available in storage.
func (s *Service) Symbols(ctx context.Context) ([]string, error) {
	start := time.Now()
	symbols, err := s.store.ListSymbols(ctx)
	metrics.StorageQueryDuration.WithLabelValues("list_symbols").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}
	return symbols, nil
}

// Expirations lists the expirations stored for a symbol.
func (s *Service) Expirations(ctx context.Context, symbol string) ([]string, error) {
	start := time.Now()
	expirations, err := s.store.ListExpirations(ctx, symbol)
	metrics.StorageQueryDuration.WithLabelValues("list_expirations").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to list expirations: %w", err)
	}
	return expirations, nil
}

// Ingest validates and stores a batch of chain records.
func (s *Service) Ingest(ctx context.Context, records []*models.ChainRecord) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	start := time.Now()
	err := s.store.WriteRecords(ctx, records)
	metrics.StorageQueryDuration.WithLabelValues("write_records").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

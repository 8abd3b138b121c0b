package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/omarwaleed/optionlens/internal/config"
	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/pkg/logger"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// metricColumns whitelists the chartable metrics against their columns so a
// query can never interpolate caller input into SQL.
var metricColumns = map[string]string{
	models.MetricOpenInterest:    "open_interest",
	models.MetricPremium:         "premium",
	models.MetricVolume:          "volume",
	models.MetricUnderlyingPrice: "underlying_price",
}

// PostgresChainStorage implements ChainStorage on PostgreSQL
type PostgresChainStorage struct {
	db *sql.DB
}

// NewPostgresChainStorage opens a connection pool and verifies connectivity
func NewPostgresChainStorage(dbConfig config.DatabaseConfig) (*PostgresChainStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Database,
		dbConfig.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbConfig.MaxConnections)
	db.SetMaxIdleConns(dbConfig.MaxIdleConns)
	db.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Chain storage initialized",
		logger.String("host", dbConfig.Host),
		logger.Int("port", dbConfig.Port),
		logger.String("database", dbConfig.Database),
	)

	return &PostgresChainStorage{db: db}, nil
}

// WriteRecords inserts chain records in one transaction, upserting on the
// (symbol, expiration, strike, side, trade_date) key so backfills are
// re-runnable.
func (s *PostgresChainStorage) WriteRecords(ctx context.Context, records []*models.ChainRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chain_history
			(symbol, expiration, strike, side, trade_date,
			 open_interest, premium, volume, underlying_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (symbol, expiration, strike, side, trade_date)
		DO UPDATE SET
			open_interest = EXCLUDED.open_interest,
			premium = EXCLUDED.premium,
			volume = EXCLUDED.volume,
			underlying_price = EXCLUDED.underlying_price
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Symbol, r.Expiration, r.Strike, r.Side, r.TradeDate,
			r.OpenInterest, r.Premium, r.Volume, r.UnderlyingPrice,
		); err != nil {
			return fmt.Errorf("failed to insert record for %s %s: %w", r.Symbol, r.TradeDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// buildSamplesQuery assembles the filtered SELECT for GetMetricSamples.
// The metric has already been resolved to a whitelisted column name.
func buildSamplesQuery(column string, q SampleQuery) (string, []interface{}) {
	query := fmt.Sprintf(`
		SELECT to_char(trade_date, 'YYYY-MM-DD'), %s
		FROM chain_history
		WHERE symbol = $1 AND expiration = $2
	`, column)
	args := []interface{}{q.Symbol, q.Expiration}
	argIndex := 3

	if q.Side != "" {
		query += fmt.Sprintf(" AND side = $%d", argIndex)
		args = append(args, q.Side)
		argIndex++
	}

	if q.StartDate != "" {
		query += fmt.Sprintf(" AND trade_date >= $%d", argIndex)
		args = append(args, q.StartDate)
		argIndex++
	}

	if q.EndDate != "" {
		query += fmt.Sprintf(" AND trade_date <= $%d", argIndex)
		args = append(args, q.EndDate)
		argIndex++
	}

	query += " ORDER BY trade_date ASC"
	return query, args
}

// GetMetricSamples retrieves the raw samples for one metric, one row per
// stored strike/side per trade date.
func (s *PostgresChainStorage) GetMetricSamples(ctx context.Context, q SampleQuery) ([]series.Sample, error) {
	column, ok := metricColumns[q.Metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMetric, q.Metric)
	}

	query, args := buildSamplesQuery(column, q)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []series.Sample
	for rows.Next() {
		var date string
		var value sql.NullFloat64
		if err := rows.Scan(&date, &value); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		sample := series.Sample{Date: date}
		if value.Valid {
			v := value.Float64
			sample.Value = &v
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}
	return samples, nil
}

// ListSymbols retrieves the distinct symbols present in storage
func (s *PostgresChainStorage) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT symbol FROM chain_history ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate symbols: %w", err)
	}
	return symbols, nil
}

// ListExpirations retrieves the distinct expirations stored for a symbol
func (s *PostgresChainStorage) ListExpirations(ctx context.Context, symbol string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT to_char(expiration, 'YYYY-MM-DD')
		FROM chain_history
		WHERE symbol = $1
		ORDER BY 1
	`, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to query expirations: %w", err)
	}
	defer rows.Close()

	var expirations []string
	for rows.Next() {
		var expiration string
		if err := rows.Scan(&expiration); err != nil {
			return nil, fmt.Errorf("failed to scan expiration: %w", err)
		}
		expirations = append(expirations, expiration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expirations: %w", err)
	}
	return expirations, nil
}

// Close closes the storage connection
func (s *PostgresChainStorage) Close() error {
	return s.db.Close()
}

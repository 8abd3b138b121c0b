package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/omarwaleed/optionlens/internal/analytics"
	"github.com/omarwaleed/optionlens/internal/config"
	"github.com/omarwaleed/optionlens/internal/models"
	"github.com/omarwaleed/optionlens/internal/storage"
	"github.com/omarwaleed/optionlens/pkg/logger"
)

// Expected CSV header:
// symbol,expiration,strike,side,trade_date,open_interest,premium,volume,underlying_price
const expectedColumns = 9

func main() {
	filePath := flag.String("file", "", "Path to the chain-history CSV file")
	batchSize := flag.Int("batch", 500, "Records per storage batch")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: backfill -file <path> [-batch <n>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := storage.NewPostgresChainStorage(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize chain storage",
			logger.ErrorField(err),
		)
	}
	defer store.Close()

	service := analytics.NewService(store, nil)

	total, err := loadFile(context.Background(), service, *filePath, *batchSize)
	if err != nil {
		logger.Fatal("Backfill failed",
			logger.String("file", *filePath),
			logger.ErrorField(err),
		)
	}

	logger.Info("Backfill complete",
		logger.String("file", *filePath),
		logger.Int("records", total),
	)
}

func loadFile(ctx context.Context, service *analytics.Service, path string, batchSize int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = expectedColumns

	// Skip the header row.
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	total := 0
	line := 1
	batch := make([]*models.ChainRecord, 0, batchSize)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		record, err := parseRow(row)
		if err != nil {
			return total, fmt.Errorf("line %d: %w", line, err)
		}

		batch = append(batch, record)
		if len(batch) >= batchSize {
			if err := service.Ingest(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := service.Ingest(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}

	return total, nil
}

func parseRow(row []string) (*models.ChainRecord, error) {
	strike, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid strike %q: %w", row[2], err)
	}

	record := &models.ChainRecord{
		Symbol:     row[0],
		Expiration: row[1],
		Strike:     strike,
		Side:       row[3],
		TradeDate:  row[4],
	}

	numeric := []struct {
		value string
		dst   *float64
		name  string
	}{
		{row[5], &record.OpenInterest, "open_interest"},
		{row[6], &record.Premium, "premium"},
		{row[7], &record.Volume, "volume"},
		{row[8], &record.UnderlyingPrice, "underlying_price"},
	}
	for _, field := range numeric {
		if field.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(field.value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", field.name, field.value, err)
		}
		*field.dst = v
	}

	return record, nil
}

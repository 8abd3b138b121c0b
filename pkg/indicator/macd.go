package indicator

import (
	"fmt"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// MACDResult holds the three aligned MACD output series.
type MACDResult struct {
	Line      series.Series `json:"line"`
	Signal    series.Series `json:"signal"`
	Histogram series.Series `json:"histogram"`
}

// MACD computes the Moving Average Convergence Divergence.
// The line is EMA(fast) - EMA(slow) position-wise, absent wherever either
// EMA is absent. The signal line is an EMA over only the defined line
// values, realigned onto the line's mask. The histogram is line - signal
// where both are defined. A series shorter than the slow period yields
// all-absent output.
func MACD(values []float64, fast, slow, signal int) (*MACDResult, error) {
	if err := validatePeriod("MACD fast", fast, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod("MACD slow", slow, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod("MACD signal", signal, 1); err != nil {
		return nil, err
	}
	if fast >= slow {
		return nil, fmt.Errorf("MACD fast period must be less than slow period, got %d >= %d", fast, slow)
	}

	n := len(values)
	res := &MACDResult{Line: absent(n), Signal: absent(n), Histogram: absent(n)}
	if n < slow {
		return res, nil
	}

	fastEMA, err := EMA(values, fast)
	if err != nil {
		return nil, err
	}
	slowEMA, err := EMA(values, slow)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if fastEMA[i].Valid && slowEMA[i].Valid {
			res.Line[i] = series.Float(fastEMA[i].Float64 - slowEMA[i].Float64)
		}
	}

	res.Signal, err = emaAligned(res.Line, signal)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if res.Line[i].Valid && res.Signal[i].Valid {
			res.Histogram[i] = series.Float(res.Line[i].Float64 - res.Signal[i].Float64)
		}
	}
	return res, nil
}

package indicator

import (
	"github.com/omarwaleed/optionlens/pkg/series"
)

// WilderSmooth applies Wilder's smoothing, the recurrence RSI and DMI/ADX
// are built on. The first output, at position period-1, is the plain mean of
// the first period raw values; subsequent positions use
// s[i] = (s[i-1]*(period-1) + raw[i]) / period.
//
// The input is typically a delta-derived series (true range, directional
// movement, DX), one element shorter than the price series it came from;
// the caller is responsible for shifting the output back onto price indexes.
func WilderSmooth(values []float64, period int) (series.Series, error) {
	if err := validatePeriod("Wilder smoothing", period, 1); err != nil {
		return nil, err
	}

	out := absent(len(values))
	if len(values) < period {
		return out, nil
	}

	prev := windowMean(values[:period])
	out[period-1] = series.Float(prev)

	for i := period; i < len(values); i++ {
		prev = (prev*float64(period-1) + values[i]) / float64(period)
		out[i] = series.Float(prev)
	}
	return out, nil
}

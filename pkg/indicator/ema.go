package indicator

import (
	"github.com/omarwaleed/optionlens/pkg/series"
)

// EMA computes the Exponential Moving Average with multiplier 2/(period+1).
// The seed at position period-1 is the SMA of the first period values; every
// position before it is absent. When the input is shorter than period the
// whole output is absent.
func EMA(values []float64, period int) (series.Series, error) {
	if err := validatePeriod("EMA", period, 1); err != nil {
		return nil, err
	}

	out := absent(len(values))
	if len(values) < period {
		return out, nil
	}

	prev := windowMean(values[:period])
	out[period-1] = series.Float(prev)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		out[i] = series.Float(prev)
	}
	return out, nil
}

// emaAligned applies EMA to the defined subset of in and realigns the result
// onto in's original mask: consecutive EMA outputs land on consecutive
// originally-defined positions, and originally-absent positions stay absent.
// MACD uses this for its signal line, which smooths only the defined part of
// the MACD line.
func emaAligned(in series.Series, period int) (series.Series, error) {
	defined := make([]float64, 0, len(in))
	for _, v := range in {
		if v.Valid {
			defined = append(defined, v.Float64)
		}
	}

	ema, err := EMA(defined, period)
	if err != nil {
		return nil, err
	}

	out := absent(len(in))
	j := 0
	for i, v := range in {
		if !v.Valid {
			continue
		}
		out[i] = ema[j]
		j++
	}
	return out, nil
}

package indicator

import (
	"github.com/omarwaleed/optionlens/pkg/series"
)

// SMA computes the Simple Moving Average.
// Position i is the mean of values[i-period+1 .. i] and is defined only once
// the window has filled, i.e. for i >= period-1.
func SMA(values []float64, period int) (series.Series, error) {
	if err := validatePeriod("SMA", period, 1); err != nil {
		return nil, err
	}

	out := absent(len(values))
	for i := period - 1; i < len(values); i++ {
		out[i] = series.Float(windowMean(values[i-period+1 : i+1]))
	}
	return out, nil
}

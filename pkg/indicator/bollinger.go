package indicator

import (
	"math"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// Bands holds the three aligned output series of a band indicator
// (Bollinger or Keltner).
type Bands struct {
	Upper  series.Series `json:"upper"`
	Middle series.Series `json:"middle"`
	Lower  series.Series `json:"lower"`
}

// Bollinger computes Bollinger Bands: middle = SMA, upper/lower =
// middle +/- k standard deviations. The deviation is the population standard
// deviation of the window (divisor = period, not period-1). All three bands
// are absent before the window fills.
func Bollinger(values []float64, period int, k float64) (*Bands, error) {
	if err := validatePeriod("Bollinger", period, 1); err != nil {
		return nil, err
	}

	n := len(values)
	bands := &Bands{Upper: absent(n), Middle: absent(n), Lower: absent(n)}

	for i := period - 1; i < n; i++ {
		window := values[i-period+1 : i+1]
		mean := windowMean(window)

		var variance float64
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		variance /= float64(period)
		sd := math.Sqrt(variance)

		bands.Middle[i] = series.Float(mean)
		bands.Upper[i] = series.Float(mean + k*sd)
		bands.Lower[i] = series.Float(mean - k*sd)
	}
	return bands, nil
}

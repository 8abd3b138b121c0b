package indicator

import (
	"math"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// Keltner computes Keltner Channels over a price-only series: middle = SMA,
// upper/lower = middle +/- multiplier * ATR proxy. With no high/low feed the
// true range is approximated by |price[j]-price[j-1]|, averaged over the
// period-1 consecutive deltas inside the window. All bands are absent before
// the window fills.
func Keltner(values []float64, period int, multiplier float64) (*Bands, error) {
	if err := validatePeriod("Keltner", period, 1); err != nil {
		return nil, err
	}

	n := len(values)
	bands := &Bands{Upper: absent(n), Middle: absent(n), Lower: absent(n)}

	for i := period - 1; i < n; i++ {
		window := values[i-period+1 : i+1]
		mean := windowMean(window)

		var atr float64
		if period > 1 {
			var sum float64
			for j := 1; j < len(window); j++ {
				sum += math.Abs(window[j] - window[j-1])
			}
			atr = sum / float64(period-1)
		}

		bands.Middle[i] = series.Float(mean)
		bands.Upper[i] = series.Float(mean + multiplier*atr)
		bands.Lower[i] = series.Float(mean - multiplier*atr)
	}
	return bands, nil
}

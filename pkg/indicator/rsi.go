package indicator

import (
	"github.com/omarwaleed/optionlens/pkg/series"
)

// RSI computes the Relative Strength Index.
// Per-step gains and losses come from consecutive price deltas. The first
// defined position is at index period (one past the first period deltas),
// seeded from the plain average of those gains and losses; later positions
// use Wilder's smoothing update. When the average loss is zero the RSI is
// exactly 100, never a division by zero.
func RSI(values []float64, period int) (series.Series, error) {
	if err := validatePeriod("RSI", period, 2); err != nil {
		return nil, err
	}

	out := absent(len(values))
	if len(values) < period+1 {
		return out, nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += -delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = series.Float(rsiValue(avgGain, avgLoss))

	p := float64(period)
	for i := period + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		var gain, loss float64
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = series.Float(rsiValue(avgGain, avgLoss))
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

package indicator

import (
	"math"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// DMIResult holds the Directional Movement Index output series, aligned to
// the input price series. +DI/-DI first become defined at input index
// period; ADX, being Wilder-smoothed DX, first becomes defined at input
// index 2*period-1.
type DMIResult struct {
	PlusDI  series.Series `json:"plus_di"`
	MinusDI series.Series `json:"minus_di"`
	ADX     series.Series `json:"adx"`
}

// DMI computes +DI, -DI and ADX over a price-only series, approximating the
// true range by |price[i]-price[i-1]|. Per step, up = price[i]-price[i-1]
// and down = its negation; +DM is up when up > down and up > 0, -DM is down
// when down > up and down > 0, and the two are never both nonzero. TR, +DM
// and -DM are Wilder-smoothed independently. A zero smoothed TR yields
// DI = 0 rather than an absent or NaN position, and a zero +DI + -DI sum
// yields DX = 0.
func DMI(values []float64, period int) (*DMIResult, error) {
	if err := validatePeriod("DMI", period, 1); err != nil {
		return nil, err
	}

	n := len(values)
	res := &DMIResult{PlusDI: absent(n), MinusDI: absent(n), ADX: absent(n)}
	if n < period+1 {
		return res, nil
	}

	// Delta series: index j corresponds to price index j+1.
	tr := make([]float64, n-1)
	plusDM := make([]float64, n-1)
	minusDM := make([]float64, n-1)
	for i := 1; i < n; i++ {
		up := values[i] - values[i-1]
		down := values[i-1] - values[i]
		tr[i-1] = math.Abs(up)
		if up > down && up > 0 {
			plusDM[i-1] = up
		}
		if down > up && down > 0 {
			minusDM[i-1] = down
		}
	}

	smTR, err := WilderSmooth(tr, period)
	if err != nil {
		return nil, err
	}
	smPlus, err := WilderSmooth(plusDM, period)
	if err != nil {
		return nil, err
	}
	smMinus, err := WilderSmooth(minusDM, period)
	if err != nil {
		return nil, err
	}

	dx := make([]float64, 0, n-period)
	for j := period - 1; j < n-1; j++ {
		var pdi, mdi float64
		if smTR[j].Float64 != 0 {
			pdi = 100 * smPlus[j].Float64 / smTR[j].Float64
			mdi = 100 * smMinus[j].Float64 / smTR[j].Float64
		}
		res.PlusDI[j+1] = series.Float(pdi)
		res.MinusDI[j+1] = series.Float(mdi)

		var d float64
		if sum := pdi + mdi; sum != 0 {
			d = 100 * math.Abs(pdi-mdi) / sum
		}
		dx = append(dx, d)
	}

	// dx index m corresponds to price index period+m, so the first ADX
	// value, seeded from the mean of the first period DX values, lands at
	// price index 2*period-1.
	smDX, err := WilderSmooth(dx, period)
	if err != nil {
		return nil, err
	}
	for m, v := range smDX {
		if v.Valid {
			res.ADX[period+m] = v
		}
	}
	return res, nil
}

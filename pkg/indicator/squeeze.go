package indicator

import (
	"github.com/omarwaleed/optionlens/pkg/series"
)

// BarColor classifies a squeeze-momentum bar for display. It is a pure
// function of the momentum sign and whether momentum rose versus the
// previous position.
type BarColor string

const (
	ColorLime   BarColor = "lime"   // positive and rising
	ColorGreen  BarColor = "green"  // positive and falling
	ColorRed    BarColor = "red"    // negative and rising
	ColorMaroon BarColor = "maroon" // negative and falling
	ColorGray   BarColor = "gray"   // no momentum value
)

// SqueezeResult holds the aligned TTM-Squeeze output series.
type SqueezeResult struct {
	Momentum series.Series `json:"momentum"`
	On       series.Flags  `json:"on"`
	Colors   []BarColor    `json:"colors"`
}

// Squeeze computes the TTM-Squeeze momentum oscillator and squeeze state.
//
// For each position with a full period-length window, the base value at each
// inner position k is price[k] minus the midpoint of the Donchian middle and
// the SMA, each taken over the window ending at k (clamped to the start of
// the series while history is short). Momentum is the value at the last
// point of an ordinary least-squares line fitted through the window's base
// values. The squeeze flag is set when the Bollinger band (multiplier bbK)
// lies strictly inside the Keltner channel (multiplier kcK) for the same
// window.
func Squeeze(values []float64, period int, bbK, kcK float64) (*SqueezeResult, error) {
	if err := validatePeriod("Squeeze", period, 2); err != nil {
		return nil, err
	}

	n := len(values)
	res := &SqueezeResult{
		Momentum: absent(n),
		On:       make(series.Flags, n),
		Colors:   make([]BarColor, n),
	}
	for i := range res.Colors {
		res.Colors[i] = ColorGray
	}
	if n < period {
		return res, nil
	}

	bb, err := Bollinger(values, period, bbK)
	if err != nil {
		return nil, err
	}
	kc, err := Keltner(values, period, kcK)
	if err != nil {
		return nil, err
	}

	base := make([]float64, period)
	for i := period - 1; i < n; i++ {
		for j := 0; j < period; j++ {
			k := i - period + 1 + j
			base[j] = values[k] - midpointAt(values, k, period)
		}
		res.Momentum[i] = series.Float(linRegLast(base))

		inside := bb.Upper[i].Float64 < kc.Upper[i].Float64 &&
			bb.Lower[i].Float64 > kc.Lower[i].Float64
		res.On[i] = series.On(inside)
	}

	classifyBars(res)
	return res, nil
}

// midpointAt averages the Donchian middle and the SMA of the window ending
// at index k.
func midpointAt(values []float64, k, period int) float64 {
	start := k - period + 1
	if start < 0 {
		start = 0
	}
	window := values[start : k+1]

	hi, lo := window[0], window[0]
	for _, v := range window[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	donchianMid := (hi + lo) / 2
	return (donchianMid + windowMean(window)) / 2
}

// linRegLast fits an ordinary least-squares line through ys (x = 0..n-1) and
// returns the fitted value at the last point. A degenerate denominator falls
// back to the last input value.
func linRegLast(ys []float64) float64 {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	den := n*sumXX - sumX*sumX
	if den == 0 {
		return ys[len(ys)-1]
	}
	slope := (n*sumXY - sumX*sumY) / den
	intercept := (sumY - slope*sumX) / n
	return intercept + slope*(n-1)
}

// classifyBars assigns a display color per position from the momentum sign
// and direction. The first defined position counts as rising, having no
// prior value to compare against.
func classifyBars(res *SqueezeResult) {
	for i, m := range res.Momentum {
		if !m.Valid {
			continue
		}
		rising := true
		if i > 0 && res.Momentum[i-1].Valid {
			rising = m.Float64 > res.Momentum[i-1].Float64
		}
		switch {
		case m.Float64 >= 0 && rising:
			res.Colors[i] = ColorLime
		case m.Float64 >= 0:
			res.Colors[i] = ColorGreen
		case rising:
			res.Colors[i] = ColorRed
		default:
			res.Colors[i] = ColorMaroon
		}
	}
}

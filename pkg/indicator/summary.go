package indicator

import (
	"fmt"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// Summary formatters render the latest defined point of a computed series as
// a fixed-format display string. Every formatter reports "N/A" when the
// series has no defined value anywhere.

const notAvailable = "N/A"

// RSISummary formats the latest RSI value with its overbought/oversold
// status against the given thresholds.
func RSISummary(rsi series.Series, overbought, oversold float64) string {
	v, ok := rsi.Last()
	if !ok {
		return notAvailable
	}
	status := "Neutral"
	switch {
	case v >= overbought:
		status = "Overbought"
	case v <= oversold:
		status = "Oversold"
	}
	return fmt.Sprintf("Current: %.2f%% | Status: %s", v, status)
}

// ADXSummary formats the latest ADX with its trend-strength band and the
// latest directional index values.
func ADXSummary(dmi *DMIResult) string {
	adx, ok := dmi.ADX.Last()
	if !ok {
		return notAvailable
	}
	pdi, _ := dmi.PlusDI.Last()
	mdi, _ := dmi.MinusDI.Last()
	return fmt.Sprintf("ADX: %.2f (%s) | +DI: %.2f | -DI: %.2f", adx, adxStrength(adx), pdi, mdi)
}

// adxStrength maps an ADX value onto the conventional strength bands.
func adxStrength(adx float64) string {
	switch {
	case adx < 20:
		return "Weak"
	case adx < 25:
		return "Moderate"
	case adx < 50:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// MACDSummary formats the latest MACD line, signal and histogram values with
// a bullish/bearish reading from the histogram sign.
func MACDSummary(macd *MACDResult) string {
	hist, ok := macd.Histogram.Last()
	if !ok {
		return notAvailable
	}
	line, _ := macd.Line.Last()
	sig, _ := macd.Signal.Last()
	trend := "Bullish"
	if hist < 0 {
		trend = "Bearish"
	}
	return fmt.Sprintf("MACD: %.4f | Signal: %.4f | Histogram: %.4f | %s", line, sig, hist, trend)
}

// BandsSummary formats the latest band values of a Bollinger or Keltner
// result.
func BandsSummary(bands *Bands) string {
	mid, ok := bands.Middle.Last()
	if !ok {
		return notAvailable
	}
	upper, _ := bands.Upper.Last()
	lower, _ := bands.Lower.Last()
	return fmt.Sprintf("Upper: %.2f | Middle: %.2f | Lower: %.2f", upper, mid, lower)
}

// SqueezeSummary formats the latest momentum value and squeeze state.
func SqueezeSummary(sq *SqueezeResult) string {
	m, ok := sq.Momentum.Last()
	if !ok {
		return notAvailable
	}
	state := "OFF"
	for i := len(sq.On) - 1; i >= 0; i-- {
		if sq.On[i].Valid {
			if sq.On[i].Bool {
				state = "ON"
			}
			break
		}
	}
	return fmt.Sprintf("Momentum: %.4f | Squeeze: %s", m, state)
}

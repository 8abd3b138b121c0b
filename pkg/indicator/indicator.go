// Package indicator implements batch technical-indicator computations over a
// date-aggregated price series. Every function is pure: it consumes a flat
// []float64 (one value per period) plus its parameters and returns one or
// more series.Series positionally aligned with the input. Positions where
// the lookback window has not yet filled, or where an upstream input was
// absent, are absent rather than zero. Numerical edge cases (zero
// denominators, degenerate regressions) map to defined fallback values,
// never NaN or Inf.
package indicator

import (
	"fmt"

	"github.com/omarwaleed/optionlens/pkg/series"
)

// Default parameters follow common technical-analysis conventions.
const (
	DefaultSMAPeriod       = 20
	DefaultEMAPeriod       = 20
	DefaultRSIPeriod       = 14
	DefaultDMIPeriod       = 14
	DefaultBollingerPeriod = 20
	DefaultKeltnerPeriod   = 20
	DefaultMACDFast        = 12
	DefaultMACDSlow        = 26
	DefaultMACDSignal      = 9
	DefaultSqueezePeriod   = 20
	DefaultZoneLookback    = 5
	DefaultZoneMinTouches  = 2
	DefaultZoneMax         = 5
)

const (
	DefaultBollingerK        = 2.0
	DefaultKeltnerMultiplier = 2.0
	DefaultSqueezeBBK        = 2.0
	DefaultSqueezeKCK        = 1.5
	DefaultZoneTolerance     = 0.02
	DefaultOverbought        = 70.0
	DefaultOversold          = 30.0
)

func validatePeriod(name string, period, min int) error {
	if period < min {
		return fmt.Errorf("%s period must be at least %d, got %d", name, min, period)
	}
	return nil
}

// absent returns an all-absent series of the given length.
func absent(n int) series.Series {
	return make(series.Series, n)
}

// windowMean is the arithmetic mean of a full window slice.
func windowMean(window []float64) float64 {
	var sum float64
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}

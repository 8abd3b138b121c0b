package analytics

import (
	"github.com/omarwaleed/optionlens/pkg/indicator"
)

// Params carries the per-request indicator configuration. Zero values are
// replaced by the conventional defaults before computation.
type Params struct {
	SMAPeriod int
	EMAPeriod int
	RSIPeriod int
	DMIPeriod int

	BollingerPeriod int
	BollingerK      float64

	KeltnerPeriod     int
	KeltnerMultiplier float64

	MACDFast   int
	MACDSlow   int
	MACDSignal int

	SqueezePeriod int
	SqueezeBBK    float64
	SqueezeKCK    float64

	Overbought float64
	Oversold   float64

	ZoneLookback  int
	ZoneTolerance float64
}

// DefaultParams returns the conventional indicator configuration.
func DefaultParams() Params {
	return Params{
		SMAPeriod:         indicator.DefaultSMAPeriod,
		EMAPeriod:         indicator.DefaultEMAPeriod,
		RSIPeriod:         indicator.DefaultRSIPeriod,
		DMIPeriod:         indicator.DefaultDMIPeriod,
		BollingerPeriod:   indicator.DefaultBollingerPeriod,
		BollingerK:        indicator.DefaultBollingerK,
		KeltnerPeriod:     indicator.DefaultKeltnerPeriod,
		KeltnerMultiplier: indicator.DefaultKeltnerMultiplier,
		MACDFast:          indicator.DefaultMACDFast,
		MACDSlow:          indicator.DefaultMACDSlow,
		MACDSignal:        indicator.DefaultMACDSignal,
		SqueezePeriod:     indicator.DefaultSqueezePeriod,
		SqueezeBBK:        indicator.DefaultSqueezeBBK,
		SqueezeKCK:        indicator.DefaultSqueezeKCK,
		Overbought:        indicator.DefaultOverbought,
		Oversold:          indicator.DefaultOversold,
		ZoneLookback:      indicator.DefaultZoneLookback,
		ZoneTolerance:     indicator.DefaultZoneTolerance,
	}
}

// applyDefaults fills any unset field from DefaultParams.
func (p Params) applyDefaults() Params {
	d := DefaultParams()
	if p.SMAPeriod == 0 {
		p.SMAPeriod = d.SMAPeriod
	}
	if p.EMAPeriod == 0 {
		p.EMAPeriod = d.EMAPeriod
	}
	if p.RSIPeriod == 0 {
		p.RSIPeriod = d.RSIPeriod
	}
	if p.DMIPeriod == 0 {
		p.DMIPeriod = d.DMIPeriod
	}
	if p.BollingerPeriod == 0 {
		p.BollingerPeriod = d.BollingerPeriod
	}
	if p.BollingerK == 0 {
		p.BollingerK = d.BollingerK
	}
	if p.KeltnerPeriod == 0 {
		p.KeltnerPeriod = d.KeltnerPeriod
	}
	if p.KeltnerMultiplier == 0 {
		p.KeltnerMultiplier = d.KeltnerMultiplier
	}
	if p.MACDFast == 0 {
		p.MACDFast = d.MACDFast
	}
	if p.MACDSlow == 0 {
		p.MACDSlow = d.MACDSlow
	}
	if p.MACDSignal == 0 {
		p.MACDSignal = d.MACDSignal
	}
	if p.SqueezePeriod == 0 {
		p.SqueezePeriod = d.SqueezePeriod
	}
	if p.SqueezeBBK == 0 {
		p.SqueezeBBK = d.SqueezeBBK
	}
	if p.SqueezeKCK == 0 {
		p.SqueezeKCK = d.SqueezeKCK
	}
	if p.Overbought == 0 {
		p.Overbought = d.Overbought
	}
	if p.Oversold == 0 {
		p.Oversold = d.Oversold
	}
	if p.ZoneLookback == 0 {
		p.ZoneLookback = d.ZoneLookback
	}
	if p.ZoneTolerance == 0 {
		p.ZoneTolerance = d.ZoneTolerance
	}
	return p
}

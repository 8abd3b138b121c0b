package models

import (
	"github.com/omarwaleed/optionlens/pkg/indicator"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// Option sides.
const (
	SideCall = "call"
	SidePut  = "put"
)

// Metrics a chain series can be charted on.
const (
	MetricOpenInterest    = "open_interest"
	MetricPremium         = "premium"
	MetricVolume          = "volume"
	MetricUnderlyingPrice = "underlying_price"
)

// ValidMetric reports whether name is a chartable metric.
func ValidMetric(name string) bool {
	switch name {
	case MetricOpenInterest, MetricPremium, MetricVolume, MetricUnderlyingPrice:
		return true
	}
	return false
}

// ChainRecord is one historical options-chain observation: a single
// strike/side on a trade date. Dates are ISO formatted (YYYY-MM-DD).
type ChainRecord struct {
	Symbol          string  `json:"symbol"`
	Expiration      string  `json:"expiration"`
	Strike          float64 `json:"strike"`
	Side            string  `json:"side"`
	TradeDate       string  `json:"trade_date"`
	OpenInterest    float64 `json:"open_interest"`
	Premium         float64 `json:"premium"`
	Volume          float64 `json:"volume"`
	UnderlyingPrice float64 `json:"underlying_price"`
}

// Validate checks the fields required to store a record.
func (r *ChainRecord) Validate() error {
	if r.Symbol == "" {
		return ErrInvalidSymbol
	}
	if r.Expiration == "" {
		return ErrInvalidExpiration
	}
	if r.TradeDate == "" {
		return ErrInvalidTradeDate
	}
	if r.Side != SideCall && r.Side != SidePut {
		return ErrInvalidSide
	}
	if r.Strike <= 0 {
		return ErrInvalidStrike
	}
	return nil
}

// AnalyticsResponse carries the aggregated metric series and every computed
// indicator, all positionally aligned to Dates. Absent indicator positions
// serialize as null.
type AnalyticsResponse struct {
	Symbol     string `json:"symbol"`
	Expiration string `json:"expiration"`
	Metric     string `json:"metric"`

	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`

	SMA       series.Series            `json:"sma"`
	EMA       series.Series            `json:"ema"`
	Bollinger *indicator.Bands         `json:"bollinger"`
	Keltner   *indicator.Bands         `json:"keltner"`
	RSI       series.Series            `json:"rsi"`
	MACD      *indicator.MACDResult    `json:"macd"`
	Squeeze   *indicator.SqueezeResult `json:"squeeze"`
	DMI       *indicator.DMIResult     `json:"dmi"`

	DemandZones []indicator.Zone `json:"demand_zones"`
	SupplyZones []indicator.Zone `json:"supply_zones"`

	Summaries map[string]string `json:"summaries"`
}

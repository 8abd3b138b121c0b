package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() ChainRecord {
	return ChainRecord{
		Symbol:          "AAPL",
		Expiration:      "2024-06-21",
		Strike:          180,
		Side:            SideCall,
		TradeDate:       "2024-01-02",
		OpenInterest:    1500,
		Premium:         4.2,
		Volume:          320,
		UnderlyingPrice: 182.5,
	}
}

func TestChainRecord_Validate(t *testing.T) {
	r := validRecord()
	assert.NoError(t, r.Validate())

	r = validRecord()
	r.Symbol = ""
	assert.ErrorIs(t, r.Validate(), ErrInvalidSymbol)

	r = validRecord()
	r.Expiration = ""
	assert.ErrorIs(t, r.Validate(), ErrInvalidExpiration)

	r = validRecord()
	r.TradeDate = ""
	assert.ErrorIs(t, r.Validate(), ErrInvalidTradeDate)

	r = validRecord()
	r.Side = "straddle"
	assert.ErrorIs(t, r.Validate(), ErrInvalidSide)

	r = validRecord()
	r.Strike = 0
	assert.ErrorIs(t, r.Validate(), ErrInvalidStrike)
}

func TestValidMetric(t *testing.T) {
	assert.True(t, ValidMetric(MetricOpenInterest))
	assert.True(t, ValidMetric(MetricPremium))
	assert.True(t, ValidMetric(MetricVolume))
	assert.True(t, ValidMetric(MetricUnderlyingPrice))
	assert.False(t, ValidMetric("delta"))
	assert.False(t, ValidMetric(""))
}

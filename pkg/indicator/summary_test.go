package indicator

import (
	"strings"
	"testing"

	"github.com/omarwaleed/optionlens/pkg/series"
)

func TestRSISummary(t *testing.T) {
	cases := []struct {
		value  float64
		status string
	}{
		{85, "Overbought"},
		{70, "Overbought"},
		{50, "Neutral"},
		{30, "Oversold"},
		{12, "Oversold"},
	}

	for _, tc := range cases {
		s := RSISummary(series.Series{series.Float(tc.value)}, DefaultOverbought, DefaultOversold)
		if !strings.Contains(s, tc.status) {
			t.Errorf("RSI %f: expected status %s in %q", tc.value, tc.status, s)
		}
	}

	if got := RSISummary(series.Series{{}, {}}, DefaultOverbought, DefaultOversold); got != "N/A" {
		t.Errorf("Expected N/A for an all-absent series, got %q", got)
	}
}

func TestADXSummary_StrengthBands(t *testing.T) {
	cases := []struct {
		adx   float64
		label string
	}{
		{10, "Weak"},
		{22, "Moderate"},
		{35, "Strong"},
		{60, "Very Strong"},
	}

	for _, tc := range cases {
		dmi := &DMIResult{
			PlusDI:  series.Series{series.Float(25)},
			MinusDI: series.Series{series.Float(15)},
			ADX:     series.Series{series.Float(tc.adx)},
		}
		s := ADXSummary(dmi)
		if !strings.Contains(s, "("+tc.label+")") {
			t.Errorf("ADX %f: expected band %s in %q", tc.adx, tc.label, s)
		}
	}

	empty := &DMIResult{PlusDI: absent(3), MinusDI: absent(3), ADX: absent(3)}
	if got := ADXSummary(empty); got != "N/A" {
		t.Errorf("Expected N/A, got %q", got)
	}
}

func TestMACDSummary(t *testing.T) {
	bullish := &MACDResult{
		Line:      series.Series{series.Float(1.5)},
		Signal:    series.Series{series.Float(1.0)},
		Histogram: series.Series{series.Float(0.5)},
	}
	if s := MACDSummary(bullish); !strings.Contains(s, "Bullish") {
		t.Errorf("Expected Bullish in %q", s)
	}

	bearish := &MACDResult{
		Line:      series.Series{series.Float(-1.5)},
		Signal:    series.Series{series.Float(-1.0)},
		Histogram: series.Series{series.Float(-0.5)},
	}
	if s := MACDSummary(bearish); !strings.Contains(s, "Bearish") {
		t.Errorf("Expected Bearish in %q", s)
	}

	empty := &MACDResult{Line: absent(2), Signal: absent(2), Histogram: absent(2)}
	if got := MACDSummary(empty); got != "N/A" {
		t.Errorf("Expected N/A, got %q", got)
	}
}

func TestBandsSummary(t *testing.T) {
	bands := &Bands{
		Upper:  series.Series{series.Float(110)},
		Middle: series.Series{series.Float(100)},
		Lower:  series.Series{series.Float(90)},
	}
	s := BandsSummary(bands)
	if !strings.Contains(s, "Upper: 110.00") || !strings.Contains(s, "Lower: 90.00") {
		t.Errorf("Unexpected bands summary %q", s)
	}

	empty := &Bands{Upper: absent(1), Middle: absent(1), Lower: absent(1)}
	if got := BandsSummary(empty); got != "N/A" {
		t.Errorf("Expected N/A, got %q", got)
	}
}

func TestSqueezeSummary(t *testing.T) {
	sq := &SqueezeResult{
		Momentum: series.Series{series.Float(0.25)},
		On:       series.Flags{series.On(true)},
		Colors:   []BarColor{ColorLime},
	}
	if s := SqueezeSummary(sq); !strings.Contains(s, "Squeeze: ON") {
		t.Errorf("Expected ON in %q", s)
	}

	sq.On = series.Flags{series.On(false)}
	if s := SqueezeSummary(sq); !strings.Contains(s, "Squeeze: OFF") {
		t.Errorf("Expected OFF in %q", s)
	}

	empty := &SqueezeResult{Momentum: absent(2), On: make(series.Flags, 2), Colors: []BarColor{ColorGray, ColorGray}}
	if got := SqueezeSummary(empty); got != "N/A" {
		t.Errorf("Expected N/A, got %q", got)
	}
}

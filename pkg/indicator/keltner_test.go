package indicator

import (
	"testing"
)

func TestKeltner_BandOrdering(t *testing.T) {
	prices := []float64{10, 12, 11, 13, 15, 14, 13, 12, 11, 13}

	bands, err := Keltner(prices, 5, 2)
	if err != nil {
		t.Fatalf("Keltner failed: %v", err)
	}

	for i := range prices {
		if i < 4 {
			if bands.Middle[i].Valid {
				t.Errorf("Position %d should be absent before the window fills", i)
			}
			continue
		}
		if !bands.Middle[i].Valid {
			t.Errorf("Position %d should be defined", i)
			continue
		}
		if bands.Upper[i].Float64 < bands.Middle[i].Float64 || bands.Middle[i].Float64 < bands.Lower[i].Float64 {
			t.Errorf("Position %d: band ordering violated: %f / %f / %f",
				i, bands.Upper[i].Float64, bands.Middle[i].Float64, bands.Lower[i].Float64)
		}
	}
}

func TestKeltner_FlatSeriesCollapses(t *testing.T) {
	prices := []float64{5, 5, 5, 5, 5, 5}

	bands, err := Keltner(prices, 3, 2)
	if err != nil {
		t.Fatalf("Keltner failed: %v", err)
	}

	last := len(prices) - 1
	if bands.Upper[last].Float64 != 5 || bands.Middle[last].Float64 != 5 || bands.Lower[last].Float64 != 5 {
		t.Errorf("Flat series should collapse all bands to the price, got %f / %f / %f",
			bands.Upper[last].Float64, bands.Middle[last].Float64, bands.Lower[last].Float64)
	}
}

func TestKeltner_ATRProxy(t *testing.T) {
	// Window [10, 12, 11]: deltas |2| and |1|, ATR proxy 1.5, SMA 11.
	prices := []float64{10, 12, 11}

	bands, err := Keltner(prices, 3, 2)
	if err != nil {
		t.Fatalf("Keltner failed: %v", err)
	}

	if bands.Middle[2].Float64 != 11 {
		t.Errorf("Expected middle 11, got %f", bands.Middle[2].Float64)
	}
	if bands.Upper[2].Float64 != 14 {
		t.Errorf("Expected upper 14 (11 + 2*1.5), got %f", bands.Upper[2].Float64)
	}
	if bands.Lower[2].Float64 != 8 {
		t.Errorf("Expected lower 8 (11 - 2*1.5), got %f", bands.Lower[2].Float64)
	}
}

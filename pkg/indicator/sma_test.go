package indicator

import (
	"testing"
)

func TestSMA_InvalidPeriod(t *testing.T) {
	if _, err := SMA([]float64{1, 2, 3}, 0); err == nil {
		t.Error("Expected error for period < 1")
	}
}

func TestSMA_WindowBoundary(t *testing.T) {
	prices := []float64{10, 11, 12, 11, 10, 9, 10, 11, 12, 13, 12, 11, 10, 9, 8}

	out, err := SMA(prices, 3)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	if len(out) != len(prices) {
		t.Fatalf("Expected %d positions, got %d", len(prices), len(out))
	}

	for i := 0; i < 2; i++ {
		if out[i].Valid {
			t.Errorf("Position %d should be absent before the window fills", i)
		}
	}
	for i := 2; i < len(out); i++ {
		if !out[i].Valid {
			t.Errorf("Position %d should be defined", i)
		}
	}

	// (10+11+12)/3
	if out[2].Float64 != 11 {
		t.Errorf("Expected SMA 11 at index 2, got %f", out[2].Float64)
	}
}

func TestSMA_ShortSeries(t *testing.T) {
	out, err := SMA([]float64{1, 2}, 5)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	for i, v := range out {
		if v.Valid {
			t.Errorf("Position %d should be absent for a series shorter than the period", i)
		}
	}
}

func TestSMA_Idempotent(t *testing.T) {
	prices := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	a, err := SMA(prices, 4)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	b, err := SMA(prices, 4)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Position %d differs between identical calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

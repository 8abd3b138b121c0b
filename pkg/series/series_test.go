package series

import (
	"encoding/json"
	"testing"
)

func fp(f float64) *float64 {
	return &f
}

func TestAggregate_AveragesSameDate(t *testing.T) {
	samples := []Sample{
		{Date: "2024-01-02", Value: fp(10)},
		{Date: "2024-01-02", Value: fp(20)},
		{Date: "2024-01-03", Value: fp(30)},
	}

	ps := Aggregate(samples)

	if ps.Len() != 2 {
		t.Fatalf("Expected 2 periods, got %d", ps.Len())
	}
	if ps.Dates[0] != "2024-01-02" || ps.Dates[1] != "2024-01-03" {
		t.Errorf("Unexpected dates: %v", ps.Dates)
	}
	if ps.Values[0] != 15 {
		t.Errorf("Expected average 15 for 2024-01-02, got %f", ps.Values[0])
	}
	if ps.Values[1] != 30 {
		t.Errorf("Expected 30 for 2024-01-03, got %f", ps.Values[1])
	}
}

func TestAggregate_SortsByDate(t *testing.T) {
	samples := []Sample{
		{Date: "2024-03-01", Value: fp(3)},
		{Date: "2024-01-01", Value: fp(1)},
		{Date: "2024-02-01", Value: fp(2)},
	}

	ps := Aggregate(samples)

	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i, date := range want {
		if ps.Dates[i] != date {
			t.Errorf("Position %d: expected %s, got %s", i, date, ps.Dates[i])
		}
	}
	if ps.Values[0] != 1 || ps.Values[1] != 2 || ps.Values[2] != 3 {
		t.Errorf("Values not aligned with sorted dates: %v", ps.Values)
	}
}

func TestAggregate_DropsMalformedSamples(t *testing.T) {
	samples := []Sample{
		{Date: "", Value: fp(1)},
		{Date: "2024-01-02", Value: nil},
		{Date: "2024-01-02", Value: fp(5)},
	}

	ps := Aggregate(samples)

	if ps.Len() != 1 {
		t.Fatalf("Expected 1 period, got %d", ps.Len())
	}
	if ps.Values[0] != 5 {
		t.Errorf("Expected 5, got %f", ps.Values[0])
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	ps := Aggregate(nil)
	if ps.Len() != 0 {
		t.Errorf("Expected empty series, got %d periods", ps.Len())
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	s := Series{Float(1.5), {}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[1.5,null]" {
		t.Errorf("Expected [1.5,null], got %s", data)
	}

	var back Series
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back[0].Valid || back[0].Float64 != 1.5 {
		t.Errorf("Position 0 lost: %+v", back[0])
	}
	if back[1].Valid {
		t.Errorf("Position 1 should be absent: %+v", back[1])
	}
}

func TestFlag_JSONRoundTrip(t *testing.T) {
	f := Flags{On(true), {}}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[true,null]" {
		t.Errorf("Expected [true,null], got %s", data)
	}

	var back Flags
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back[0].Valid || !back[0].Bool {
		t.Errorf("Position 0 lost: %+v", back[0])
	}
	if back[1].Valid {
		t.Errorf("Position 1 should be absent: %+v", back[1])
	}
}

func TestSeries_Last(t *testing.T) {
	s := Series{Float(1), Float(2), {}}
	v, ok := s.Last()
	if !ok || v != 2 {
		t.Errorf("Expected (2, true), got (%f, %v)", v, ok)
	}

	empty := Series{{}, {}}
	if _, ok := empty.Last(); ok {
		t.Error("Expected no defined value in all-absent series")
	}
}

// Package series holds the value types shared by all indicator computations:
// raw samples, date-aggregated period series, and nullable output positions.
package series

import (
	"encoding/json"
	"sort"
)

// Sample is one raw observation (price, open interest, volume, ...) on a
// trade date. Multiple samples may share a date, e.g. one per strike/side;
// they are averaged into a single value per date by Aggregate.
type Sample struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// PeriodSeries is the aggregation output: one averaged value per distinct
// date, sorted ascending. Dates and Values are always the same length.
type PeriodSeries struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// Len returns the number of periods in the series.
func (p PeriodSeries) Len() int {
	return len(p.Values)
}

// Aggregate groups samples by date and averages same-date values.
// Samples with an empty date or a missing value are dropped. The result is
// sorted ascending by date; ISO-formatted dates make the lexicographic
// order chronological. Empty input yields an empty series, not an error.
func Aggregate(samples []Sample) PeriodSeries {
	type bucket struct {
		sum   float64
		count int
	}

	buckets := make(map[string]*bucket)
	for _, s := range samples {
		if s.Date == "" || s.Value == nil {
			continue
		}
		b, ok := buckets[s.Date]
		if !ok {
			b = &bucket{}
			buckets[s.Date] = b
		}
		b.sum += *s.Value
		b.count++
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	values := make([]float64, len(dates))
	for i, date := range dates {
		b := buckets[date]
		values[i] = b.sum / float64(b.count)
	}

	return PeriodSeries{Dates: dates, Values: values}
}

// Value is one position of a derived series. Valid is false where the
// lookback window has not filled or an upstream input was itself absent.
// The zero Value is absent.
type Value struct {
	Float64 float64
	Valid   bool
}

// Float returns a defined Value.
func Float(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// MarshalJSON encodes a defined Value as a number and an absent one as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float64)
}

// UnmarshalJSON decodes null as an absent Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	if err := json.Unmarshal(data, &v.Float64); err != nil {
		return err
	}
	v.Valid = true
	return nil
}

// Series is a sequence of nullable values positionally aligned with the
// PeriodSeries it was derived from.
type Series []Value

// Last returns the most recent defined value, scanning from the end.
func (s Series) Last() (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Valid {
			return s[i].Float64, true
		}
	}
	return 0, false
}

// Flag is one position of a boolean series, absent where the underlying
// computation had no defined value.
type Flag struct {
	Bool  bool
	Valid bool
}

// On returns a defined true/false Flag.
func On(b bool) Flag {
	return Flag{Bool: b, Valid: true}
}

// MarshalJSON encodes a defined Flag as a boolean and an absent one as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Bool)
}

// UnmarshalJSON decodes null as an absent Flag.
func (f *Flag) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Flag{}
		return nil
	}
	if err := json.Unmarshal(data, &f.Bool); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Flags is a sequence of nullable booleans aligned to a PeriodSeries.
type Flags []Flag

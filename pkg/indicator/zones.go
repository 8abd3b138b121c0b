package indicator

import (
	"fmt"
	"math"
	"sort"
)

// ZoneType distinguishes demand (support) zones built from swing lows and
// supply (resistance) zones built from swing highs.
type ZoneType string

const (
	ZoneDemand ZoneType = "demand"
	ZoneSupply ZoneType = "supply"
)

// Zone is a clustered price level repeatedly touched by swing points. The
// price anchor is fixed by the first swing point that opened the zone;
// later touches increment Touches and advance EndDate but never re-center
// the price.
type Zone struct {
	Type      ZoneType `json:"type"`
	Price     float64  `json:"price"`
	Touches   int      `json:"touches"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// ZoneConfig parameterizes swing-point detection and clustering.
type ZoneConfig struct {
	// Lookback is the number of strictly-dominated neighbors required on
	// each side of a swing point.
	Lookback int
	// Tolerance is the relative price band, against the zone's anchor,
	// within which a later swing point counts as a touch.
	Tolerance float64
	// MinTouches drops weaker zones after clustering.
	MinTouches int
	// MaxZones caps how many zones are kept per type, most recent first.
	MaxZones int
}

// DefaultZoneConfig returns the conventional parameters: lookback 5, 2%
// tolerance, at least 2 touches, top 5 zones per type.
func DefaultZoneConfig() ZoneConfig {
	return ZoneConfig{
		Lookback:   DefaultZoneLookback,
		Tolerance:  DefaultZoneTolerance,
		MinTouches: DefaultZoneMinTouches,
		MaxZones:   DefaultZoneMax,
	}
}

type swingPoint struct {
	index int
	price float64
}

// Zones detects swing highs and lows and clusters them into supply and
// demand zones. values and dates must be positionally aligned; mismatched
// lengths fail fast. An index is a swing high (low) when its price is
// strictly greater (less) than every price within the symmetric lookback
// window; an index can never be both. Zones with fewer than MinTouches
// touches are discarded, the rest are sorted by most recent end date and
// capped at MaxZones per type.
func Zones(values []float64, dates []string, cfg ZoneConfig) (demand, supply []Zone, err error) {
	if len(values) != len(dates) {
		return nil, nil, fmt.Errorf("values and dates must have equal length, got %d and %d", len(values), len(dates))
	}
	if cfg.Lookback < 1 {
		return nil, nil, fmt.Errorf("zone lookback must be at least 1, got %d", cfg.Lookback)
	}

	var highs, lows []swingPoint
	for i := cfg.Lookback; i < len(values)-cfg.Lookback; i++ {
		isHigh, isLow := true, true
		for j := i - cfg.Lookback; j <= i+cfg.Lookback; j++ {
			if j == i {
				continue
			}
			if values[j] >= values[i] {
				isHigh = false
			}
			if values[j] <= values[i] {
				isLow = false
			}
		}
		switch {
		case isHigh:
			highs = append(highs, swingPoint{index: i, price: values[i]})
		case isLow:
			lows = append(lows, swingPoint{index: i, price: values[i]})
		}
	}

	demand = clusterZones(lows, dates, ZoneDemand, cfg)
	supply = clusterZones(highs, dates, ZoneSupply, cfg)
	return demand, supply, nil
}

// clusterZones scans swing points in index order, matching each against the
// open zones by relative distance to the zone's anchor price.
func clusterZones(points []swingPoint, dates []string, typ ZoneType, cfg ZoneConfig) []Zone {
	var zones []*Zone
	for _, p := range points {
		matched := false
		for _, z := range zones {
			if math.Abs(p.price-z.Price) <= cfg.Tolerance*z.Price {
				z.Touches++
				z.EndDate = dates[p.index]
				matched = true
				break
			}
		}
		if !matched {
			zones = append(zones, &Zone{
				Type:      typ,
				Price:     p.price,
				Touches:   1,
				StartDate: dates[p.index],
				EndDate:   dates[p.index],
			})
		}
	}

	kept := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if z.Touches >= cfg.MinTouches {
			kept = append(kept, *z)
		}
	}

	// ISO dates sort chronologically as strings.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].EndDate > kept[j].EndDate
	})
	if cfg.MaxZones > 0 && len(kept) > cfg.MaxZones {
		kept = kept[:cfg.MaxZones]
	}
	return kept
}

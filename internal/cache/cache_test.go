package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarwaleed/optionlens/internal/storage"
)

func TestSampleKey(t *testing.T) {
	q := storage.SampleQuery{
		Symbol:     "AAPL",
		Expiration: "2024-06-21",
		Metric:     "open_interest",
		Side:       "call",
		StartDate:  "2024-01-01",
		EndDate:    "2024-03-31",
	}

	key := sampleKey(q)
	assert.Equal(t, "chain:samples:AAPL:2024-06-21:open_interest:call:2024-01-01:2024-03-31", key)

	// Unset filters must still produce distinct keys.
	q.Side = ""
	assert.NotEqual(t, key, sampleKey(q))
}

func TestNilCacheIsPassThrough(t *testing.T) {
	var c *SampleCache

	_, ok := c.Get(context.Background(), storage.SampleQuery{})
	assert.False(t, ok)

	// Set and Close on a nil cache are no-ops.
	c.Set(context.Background(), storage.SampleQuery{}, nil)
	assert.NoError(t, c.Close())
}

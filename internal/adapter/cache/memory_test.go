package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecb-rates/internal/domain/model"
	"ecb-rates/pkg/logger"
)

func TestMemoryCache_LookupAndBefore(t *testing.T) {
	c := NewMemoryCache(logger.Discard())
	c.Store(model.Batch{
		110: {"JPY": 3},
		100: {"JPY": 1},
		103: {"JPY": 2},
	})

	require.Equal(t, 3, c.Len())

	table, found := c.Lookup(103)
	require.True(t, found)
	assert.Equal(t, 2.0, table["JPY"])

	_, found = c.Lookup(104)
	assert.False(t, found)

	testCases := []struct {
		name    string
		day     model.Day
		wantDay model.Day
		found   bool
	}{
		{name: "between entries", day: 105, wantDay: 103, found: true},
		{name: "on an entry returns the one before", day: 103, wantDay: 100, found: true},
		{name: "after newest", day: 500, wantDay: 110, found: true},
		{name: "on earliest", day: 100, found: false},
		{name: "before earliest", day: 50, found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			day, table, found := c.Before(tc.day)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.wantDay, day)
				assert.NotNil(t, table)
			}
		})
	}
}

func TestMemoryCache_StoreLastWriterWins(t *testing.T) {
	c := NewMemoryCache(logger.Discard())
	c.Store(model.Batch{100: {"JPY": 1}})
	c.Store(model.Batch{100: {"JPY": 9}, 101: {"JPY": 2}})

	assert.Equal(t, 2, c.Len())

	table, found := c.Lookup(100)
	require.True(t, found)
	assert.Equal(t, 9.0, table["JPY"])
}

func TestMemoryCache_SkipsInvalidDays(t *testing.T) {
	c := NewMemoryCache(logger.Discard())
	c.Store(model.Batch{model.InvalidDay: {"JPY": 1}})

	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_ResolveDate(t *testing.T) {
	c := NewMemoryCache(logger.Discard())
	c.Store(model.Batch{100: {"JPY": 1}, 103: {"JPY": 2}})

	day, _, err := model.ResolveDate(c, 102, false)
	require.NoError(t, err)
	assert.Equal(t, model.Day(100), day)

	_, _, err = model.ResolveDate(c, 102, true)
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestMemoryCache_ConcurrentStore(t *testing.T) {
	c := NewMemoryCache(logger.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Store(model.Batch{model.Day(i % 10): {"JPY": float64(i)}})
			c.Before(model.Day(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
	for d := model.Day(1); d < 10; d++ {
		prev, _, found := c.Before(d)
		require.True(t, found)
		assert.Equal(t, d-1, prev)
	}
}

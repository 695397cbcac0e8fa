package cache

import (
	"slices"
	"sync"

	"ecb-rates/internal/domain/model"
	"ecb-rates/pkg/logger"
)

// MemoryCache holds one rate table per day for the life of the process.
// Entries are never evicted.
type MemoryCache struct {
	tables map[model.Day]model.RateTable
	days   []model.Day // ascending
	mutex  sync.RWMutex
	log    *logger.Logger
}

func NewMemoryCache(log *logger.Logger) *MemoryCache {
	return &MemoryCache{
		tables: make(map[model.Day]model.RateTable),
		log:    log,
	}
}

func (c *MemoryCache) Lookup(day model.Day) (model.RateTable, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	table, found := c.tables[day]
	if found {
		c.log.Debug("Cache hit", "day", day.String())
	}
	return table, found
}

func (c *MemoryCache) Before(day model.Day) (model.Day, model.RateTable, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	// index of the first day >= day; everything left of it is earlier
	i, _ := slices.BinarySearch(c.days, day)
	if i == 0 {
		c.log.Debug("Cache miss", "day", day.String())
		return model.InvalidDay, nil, false
	}

	prev := c.days[i-1]
	c.log.Debug("Cache fallback hit", "day", day.String(), "served", prev.String())
	return prev, c.tables[prev], true
}

func (c *MemoryCache) Store(batch model.Batch) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for day, table := range batch {
		if !day.Valid() {
			continue
		}
		if _, exists := c.tables[day]; !exists {
			i, _ := slices.BinarySearch(c.days, day)
			c.days = slices.Insert(c.days, i, day)
		}
		c.tables[day] = table
	}

	c.log.Debug("Cache set", "days", len(batch), "total", len(c.days))
}

func (c *MemoryCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.days)
}

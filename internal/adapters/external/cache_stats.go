package external

import (
	"sync/atomic"
	"time"

	"weathermap.app/internal/ports"
)

// hitCounter tracks hits and misses for the cache providers
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (c *hitCounter) RecordHit() {
	c.hits.Add(1)
}

func (c *hitCounter) RecordMiss() {
	c.misses.Add(1)
}

func (c *hitCounter) GetStats() ports.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

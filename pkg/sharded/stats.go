package sharded

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/Borislavv/go-sharded-map/pkg/config"
	"github.com/Borislavv/go-sharded-map/pkg/utils"
	"github.com/rs/zerolog/log"
)

// RunStatsLogger emits a stats line about map occupancy, shard fill spread
// and GC activity on every interval while debugging is enabled. Returns
// immediately when debug is off.
func RunStatsLogger[K comparable, V any](ctx context.Context, cfg *config.Config, smap *Map[K, V]) {
	if !cfg.IsDebugOn() {
		return
	}
	interval := cfg.StatsInterval
	if interval <= 0 {
		interval = config.DefaultStatsInterval
	}
	go func() {
		ticker := utils.NewTicker(ctx, interval)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker:
				logStats(smap, interval)
			}
		}
	}()
}

func logStats[K comparable, V any](smap *Map[K, V], interval time.Duration) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	minLen, maxLen := -1, 0
	smap.WalkShards(func(_ uint64, shard *Shard[K, V]) {
		n := shard.Len()
		if minLen < 0 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	})
	if minLen < 0 {
		minLen = 0
	}

	var (
		length     = strconv.FormatInt(smap.Len(), 10)
		shards     = strconv.FormatUint(smap.ShardCount(), 10)
		gc         = strconv.Itoa(int(m.NumGC))
		goroutines = strconv.Itoa(runtime.NumGoroutine())
		alloc      = utils.FmtMemory(uintptr(m.Alloc))
	)

	log.
		Info().
		Msgf(
			"[sharded][%s] map (len: %s, shards: %s, fill: min %d / max %d), "+
				"sys (alloc: %s, goroutines: %s, GC: %s)",
			interval, length, shards, minLen, maxLen, alloc, goroutines, gc,
		)
}

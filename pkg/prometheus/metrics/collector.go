package metrics

import (
	"context"
	"time"

	"github.com/Borislavv/go-sharded-map/pkg/sharded"
	"github.com/Borislavv/go-sharded-map/pkg/utils"
)

// RunCollector samples map length and shard fill spread into the meter on
// every interval until ctx is done. One shard lock is held at a time during
// sampling, so the gauges are an interleaved view, not a snapshot.
func RunCollector[K comparable, V any](
	ctx context.Context,
	meter Meter,
	smap *sharded.Map[K, V],
	interval time.Duration,
) {
	go func() {
		ticker := utils.NewTicker(ctx, interval)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker:
				sample(meter, smap)
			}
		}
	}()
}

func sample[K comparable, V any](meter Meter, smap *sharded.Map[K, V]) {
	meter.SetLength(smap.Len())

	minLen, maxLen := -1, 0
	smap.WalkShards(func(_ uint64, shard *sharded.Shard[K, V]) {
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
	meter.SetShardFill(minLen, maxLen)
}

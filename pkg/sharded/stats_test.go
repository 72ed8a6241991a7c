package sharded_test

import (
	"context"
	"testing"
	"time"

	"github.com/Borislavv/go-sharded-map/pkg/config"
	"github.com/Borislavv/go-sharded-map/pkg/sharded"
)

func TestStatsLoggerSmoke(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	smap := sharded.NewMap[string, int](sharded.HashString, 8, 4)
	for i, key := range []string{"a", "b", "c"} {
		i := i
		smap.TryEmplace(key, func() int { return i })
	}

	cfg := config.Default()
	cfg.AppDebug = true
	cfg.StatsInterval = 10 * time.Millisecond

	sharded.RunStatsLogger(ctx, cfg, smap)
	time.Sleep(50 * time.Millisecond)

	// Debug off must be a no-op.
	sharded.RunStatsLogger(ctx, config.Default(), smap)
}

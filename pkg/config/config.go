package config

import (
	"errors"
	"time"
)

const (
	DefaultShardCount      uint64 = 1024
	DefaultInitLenPerShard        = 128
	DefaultStatsInterval          = 5 * time.Second
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	AppDebug bool   `mapstructure:"APP_DEBUG"`
	// ShardCount is fixed at construction: the map is never resharded.
	// More shards means less lock contention but a larger fixed footprint.
	ShardCount uint64 `mapstructure:"SHARD_COUNT"`
	// InitLenPerShard is the capacity hint for each shard's lazily
	// allocated storage (paid on the shard's first write, not up front).
	InitLenPerShard int           `mapstructure:"INIT_LEN_PER_SHARD"`
	StatsInterval   time.Duration `mapstructure:"STATS_INTERVAL"`
}

func Default() *Config {
	return &Config{
		AppEnv:          "dev",
		ShardCount:      DefaultShardCount,
		InitLenPerShard: DefaultInitLenPerShard,
		StatsInterval:   DefaultStatsInterval,
	}
}

func (c *Config) IsDebugOn() bool {
	return c.AppDebug
}

func (c *Config) Validate() error {
	if c.ShardCount == 0 {
		return errors.New("config: SHARD_COUNT must be >= 1")
	}
	if c.InitLenPerShard < 0 {
		return errors.New("config: INIT_LEN_PER_SHARD must not be negative")
	}
	if c.StatsInterval <= 0 {
		return errors.New("config: STATS_INTERVAL must be positive")
	}
	return nil
}

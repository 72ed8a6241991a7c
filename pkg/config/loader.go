package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Load reads the configuration from environment variables, with optional
// overrides from .env and .env.local files. Unset values fall back to
// defaults before validation.
func Load() (*Config, error) {
	if err := godotenv.Overload(".env", ".env.local"); err != nil {
		log.Debug().Msgf("[config] no .env overrides loaded: %s", err.Error())
	}

	viper.AutomaticEnv()
	_ = viper.BindEnv("APP_ENV")
	_ = viper.BindEnv("APP_DEBUG")
	_ = viper.BindEnv("SHARD_COUNT")
	_ = viper.BindEnv("INIT_LEN_PER_SHARD")
	_ = viper.BindEnv("STATS_INTERVAL")

	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		log.Err(err).Msg("[config] failed to unmarshal config from envs")
		return nil, err
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		log.Err(err).Msg("[config] invalid configuration")
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults clobbered by empty env values: viper
// unmarshals an unset numeric env as zero, which is never a usable setting
// for these knobs.
func applyDefaults(cfg *Config) {
	if cfg.ShardCount == 0 {
		cfg.ShardCount = DefaultShardCount
	}
	if cfg.InitLenPerShard == 0 {
		cfg.InitLenPerShard = DefaultInitLenPerShard
	}
	if cfg.StatsInterval == 0 {
		cfg.StatsInterval = DefaultStatsInterval
	}
}

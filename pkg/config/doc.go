// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type CLIConfig struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		CacheSize int    `env:"PATH_CACHE_SIZE" envDefault:"512"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//		return err
//	}
//
// Each struct type (and prefix) is parsed once per process and cached;
// ResetCache clears the cache, which tests use together with t.Setenv.
// LoadEnv reads additional env files, overriding variables already set.
package config

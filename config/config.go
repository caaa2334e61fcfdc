package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Schedule proxy upstream (Mindbody marketplace gateway).
	MindbodyAPIURL    string        `mapstructure:"MINDBODY_API_URL"`
	MindbodyLocation  string        `mapstructure:"MINDBODY_LOCATION_SLUG"`
	UpstreamTimeout   time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	UpstreamRetryMax  int           `mapstructure:"UPSTREAM_RETRY_MAX"`
	MaxScheduleDays   int           `mapstructure:"MAX_SCHEDULE_DAYS"`
	RateLimitMax      int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	ScheduleCacheCtrl string        `mapstructure:"SCHEDULE_CACHE_CONTROL"`
	EntityCacheTTL    time.Duration `mapstructure:"ENTITY_CACHE_TTL"`

	// Redis configuration. Leave REDIS_ADDR empty to keep entity caching
	// in process memory.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Contact form relay.
	ContactFormEndpoint string `mapstructure:"CONTACT_FORM_ENDPOINT"`
	ContactRedirectPath string `mapstructure:"CONTACT_REDIRECT_PATH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MINDBODY_API_URL", "https://prod-mkt-gateway.mindbody.io/v1/search/class_times")
	viper.SetDefault("MINDBODY_LOCATION_SLUG", "different-breed-sports-academy")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("UPSTREAM_RETRY_MAX", 0)
	viper.SetDefault("MAX_SCHEDULE_DAYS", 14)
	viper.SetDefault("RATE_LIMIT_MAX", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW", "60s")
	viper.SetDefault("SCHEDULE_CACHE_CONTROL", "s-maxage=60, stale-while-revalidate=300")
	viper.SetDefault("ENTITY_CACHE_TTL", "24h")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("CONTACT_FORM_ENDPOINT", "")
	viper.SetDefault("CONTACT_REDIRECT_PATH", "/contact")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

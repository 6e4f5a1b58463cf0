package model

import "time"

// ----------------------------------------------------
// ================ Config ================

// LogConfig holds configuration for the global logger
type LogConfig struct {
	Level      string `envconfig:"level" default:"info"`
	Format     string `envconfig:"format" default:"json"`   // json, console
	Output     string `envconfig:"output" default:"stdout"` // stdout, stderr, file
	FilePath   string `envconfig:"file_path" default:"logs/topologia.log"`
	TimeFormat string `envconfig:"time_format" default:"rfc3339"` // rfc3339, unix, iso8601
}

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Addr            string        `envconfig:"addr" default:"127.0.0.1:5000"`
	ReadTimeout     time.Duration `envconfig:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"write_timeout" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"shutdown_timeout" default:"15s"`
	MaxBodyBytes    int64         `envconfig:"max_body_bytes" default:"1048576"`
}

// StorageConfig selects and configures the quiz attempt store
type StorageConfig struct {
	Kind       string        `envconfig:"kind" default:"memory"` // memory, redis, sqlite
	RedisURL   string        `envconfig:"redis_url"`
	SQLitePath string        `envconfig:"sqlite_path" default:"data/topologia.db"`
	TTL        time.Duration `envconfig:"ttl" default:"720h"`
}

// DiagramConfig controls the in-process diagram cache
type DiagramConfig struct {
	CacheTTL time.Duration `envconfig:"cache_ttl" default:"1h"`
}

package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Keys     KeysConfig     `yaml:"keys"`
	Sync     SyncConfig     `yaml:"sync"`
	TempCred TempCredConfig `yaml:"tempcred"`
}

// ServerConfig holds the ops HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// KeyCheckPerMinute limits access-key authenticated requests per client
	// IP. Zero disables the limit.
	KeyCheckPerMinute int `yaml:"key_check_per_minute" env:"SERVER_KEY_CHECK_PER_MINUTE" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// TxMaxRetries bounds retries of serializable transactions that fail
	// with a serialization conflict.
	TxMaxRetries uint `yaml:"tx_max_retries" env:"DATABASE_TX_MAX_RETRIES" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// KeysConfig holds access key policy.
type KeysConfig struct {
	MaxPerAccount int `yaml:"max_per_account" env:"KEYS_MAX_PER_ACCOUNT" env-default:"20"`
	MaxNameLength int `yaml:"max_name_length" env:"KEYS_MAX_NAME_LENGTH" env-default:"64"`
}

// SyncConfig holds tracker maintenance settings.
type SyncConfig struct {
	TeardownBatchSize int           `yaml:"teardown_batch_size" env:"SYNC_TEARDOWN_BATCH_SIZE" env-default:"500"`
	DeleteRetention   time.Duration `yaml:"delete_retention"    env:"SYNC_DELETE_RETENTION"    env-default:"24h"`
	HistoryMaxLimit   int           `yaml:"history_max_limit"   env:"SYNC_HISTORY_MAX_LIMIT"   env-default:"1000"`
}

// TempCredConfig holds temporary credential settings.
type TempCredConfig struct {
	SigningSecret string        `yaml:"signing_secret" env:"TEMPCRED_SIGNING_SECRET" env-required:"true"`
	Issuer        string        `yaml:"issuer"         env:"TEMPCRED_ISSUER"         env-default:"synctrack"`
	TTL           time.Duration `yaml:"ttl"            env:"TEMPCRED_TTL"            env-default:"10m"`
	ReapInterval  time.Duration `yaml:"reap_interval"  env:"TEMPCRED_REAP_INTERVAL"  env-default:"5m"`
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// SQLiteDriver stores lists in a local SQLite file.
	SQLiteDriver = "sqlite"
	// PostgresDriver stores lists in PostgreSQL.
	PostgresDriver = "postgres"

	// DefaultHTTPAddr is the listen address when neither HTTP_ADDR nor PORT is set.
	DefaultHTTPAddr = ":10000"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// the Discord bot, presentation limits and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on. When
		// empty, ":$PORT" is used, or DefaultHTTPAddr if PORT is unset.
		Addr string `env:"HTTP_ADDR" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Storage selects and tunes the list store backend
	Storage struct {
		// Driver is either "sqlite" or "postgres"
		Driver string `env:"STORAGE_DRIVER" env-default:"sqlite" yaml:"driver"`
		// AutoMigrate applies pending migrations when the serve command starts
		AutoMigrate bool `env:"STORAGE_AUTO_MIGRATE" env-default:"true" yaml:"autoMigrate"`

		// SQLite contains the settings of the sqlite driver
		SQLite struct {
			// Path is the database file
			Path string `env:"SQLITE_PATH" env-default:"manga.db" yaml:"path"`
			// BusyTimeout is how long a writer waits on a locked database
			BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" env-default:"5s" yaml:"busyTimeout"`
			// MaxOpenConnections limits the number of open connections to the database file
			MaxOpenConnections int `env:"SQLITE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		} `yaml:"sqlite"`
	} `yaml:"storage"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"mangatrade" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MinConnections is the number of connections the pool keeps open even when idle
		MinConnections int `env:"DATABASE_MIN_CONNECTIONS" env-default:"0" yaml:"minConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RSA key pair used for API tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Discord contains the bot connection settings
	Discord struct {
		// Enabled starts the bot together with the HTTP server
		Enabled bool `env:"DISCORD_ENABLED" env-default:"true" yaml:"enabled"`
		// Token is the bot token
		Token string `env:"DISCORD_TOKEN" yaml:"token"`
		// GuildID scopes command registration to one guild; empty registers globally
		GuildID string `env:"GUILD_ID" yaml:"guildId"`
	} `yaml:"discord"`

	// Lists contains presentation limits for list replies
	Lists struct {
		// DisplayLimit is the number of titles shown by list and search replies
		DisplayLimit int `env:"LISTS_DISPLAY_LIMIT" env-default:"50" yaml:"displayLimit"`
		// DuplicatesDisplayLimit is the number of lines shown per duplicates section
		DuplicatesDisplayLimit int `env:"LISTS_DUPLICATES_DISPLAY_LIMIT" env-default:"30" yaml:"duplicatesDisplayLimit"` //nolint: lll
	} `yaml:"lists"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case SQLiteDriver, PostgresDriver:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Lists.DisplayLimit <= 0 || c.Lists.DuplicatesDisplayLimit <= 0 {
		return errors.New("list display limits must be positive")
	}

	return nil
}

// ValidateBot reports whether the Discord bot can be started. It is only
// checked by commands that run the bot.
func (c *Config) ValidateBot() error {
	if c.Discord.Enabled && c.Discord.Token == "" {
		return errors.New("discord is enabled but DISCORD_TOKEN is empty")
	}

	return nil
}

// applyDefaults fills settings whose default depends on other variables.
func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultHTTPAddr
		if port := os.Getenv("PORT"); port != "" {
			c.HTTP.Addr = ":" + port
		}
	}
}

// Load receives the path for a yaml or .env config file and returns a filled
// Config struct. When the file does not exist, the configuration is read from
// environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

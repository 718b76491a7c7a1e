package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the remote scanning service, blob storage and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"2m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Uploads resolve synchronously and may poll for tens of seconds, so this
		// must comfortably exceed Scanner.MaxPollAttempts * Scanner.PollInterval.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes caps the size of one uploaded file
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"33554432" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"filescan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Scanner configures the remote malware analysis service and the polling policy.
	Scanner struct {
		// APIKey authenticates requests against the scanning service
		APIKey string `env:"SCANNER_API_KEY" yaml:"apiKey"`
		// BaseURL overrides the API root of the scanning service; empty selects the public endpoint
		BaseURL string `env:"SCANNER_BASE_URL" yaml:"baseURL"`
		// PollInterval is the wait between two analysis polls; at a quota of
		// 4 requests per minute anything below 8s starves the budget
		PollInterval time.Duration `env:"SCANNER_POLL_INTERVAL" env-default:"8s" yaml:"pollInterval"`
		// MaxPollAttempts bounds the polling loop of one upload
		MaxPollAttempts int `env:"SCANNER_MAX_POLL_ATTEMPTS" env-default:"3" yaml:"maxPollAttempts"`
		// FailClosed makes degraded scans default to UNKNOWN instead of CLEAN
		FailClosed bool `env:"SCANNER_FAIL_CLOSED" env-default:"false" yaml:"failClosed"`
		// RescanMaxAttempts bounds the polling loop of one background rescan job
		RescanMaxAttempts int `env:"SCANNER_RESCAN_MAX_ATTEMPTS" env-default:"3" yaml:"rescanMaxAttempts"`
		// RescanPendingDeadline bounds how long a rescan job waits for an
		// analysis that never completes before recording UNKNOWN
		RescanPendingDeadline time.Duration `env:"SCANNER_RESCAN_PENDING_DEADLINE" env-default:"10m" yaml:"rescanPendingDeadline"` //nolint: lll
	} `yaml:"scanner"`

	// Blob configures the S3-compatible object store holding accepted files.
	Blob struct {
		// Endpoint is the host:port or full URL of the S3-compatible service
		Endpoint string `env:"BLOB_ENDPOINT" yaml:"endpoint"`
		// Region of the bucket
		Region string `env:"BLOB_REGION" env-default:"us-east-1" yaml:"region"`
		// Bucket that stores uploaded files
		Bucket string `env:"BLOB_BUCKET" env-default:"filescan" yaml:"bucket"`
		// AccessKey / SecretKey are static credentials for the endpoint
		AccessKey string `env:"BLOB_ACCESS_KEY" yaml:"accessKey"`
		SecretKey string `env:"BLOB_SECRET_KEY" yaml:"secretKey"`
		// ForcePathStyle toggles path-style addressing, required by most
		// self-hosted S3 implementations
		ForcePathStyle bool `env:"BLOB_FORCE_PATH_STYLE" env-default:"true" yaml:"forcePathStyle"`
		// PresignTTL is the validity window of generated download URLs
		PresignTTL time.Duration `env:"BLOB_PRESIGN_TTL" env-default:"15m" yaml:"presignTTL"`
	} `yaml:"blob"`

	// JWT holds the RS256 key pair used to verify (and, for the jwt
	// subcommand, issue) caller identity tokens.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"

	StorageDriverMinio = "minio"
	StorageDriverS3    = "s3"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Minio    MinioConfig
	S3       S3Config
	Redis    RedisConfig
	NATS     NATSConfig
}

type Env struct {
	Env       string `envconfig:"ENV" default:"DEV"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	// TrustProxyHeaders honors X-Forwarded-Proto/Host when building share urls
	TrustProxyHeaders bool `envconfig:"TRUST_PROXY_HEADERS" default:"true"`
}

type DatabaseConfig struct {
	Driver         string        `envconfig:"DB_DRIVER" default:"postgres"`
	SQLitePath     string        `envconfig:"DB_SQLITE_PATH" default:"vidshare.db"`
	Host           string        `envconfig:"DB_HOST"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER"`
	Password       string        `envconfig:"DB_PASSWORD"`
	Name           string        `envconfig:"DB_NAME"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"minio"`
}

// MinioConfig configures the minio object store; PublicBaseURL overrides the
// scheme://endpoint prefix of public object URLs (CDN, reverse proxy)
type MinioConfig struct {
	Endpoint        string `envconfig:"MINIO_ENDPOINT"`
	AccessKey       string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey       string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL          bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	VideoBucket     string `envconfig:"MINIO_VIDEO_BUCKET" default:"videos"`
	ThumbnailBucket string `envconfig:"MINIO_THUMBNAIL_BUCKET" default:"thumbnails"`
	PublicBaseURL   string `envconfig:"MINIO_PUBLIC_BASE_URL"`
}

type S3Config struct {
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	VideoBucket     string `envconfig:"S3_VIDEO_BUCKET" default:"videos"`
	ThumbnailBucket string `envconfig:"S3_THUMBNAIL_BUCKET" default:"thumbnails"`
	PublicBaseURL   string `envconfig:"S3_PUBLIC_BASE_URL"`
}

type RedisConfig struct {
	// Addr enables the share lookup cache when set
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"STORAGE_EVENTS"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"vidshare-uploadwatcher"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"storage.events"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings required by the selected drivers
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DatabaseDriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return errors.New("DB_HOST, DB_USER and DB_NAME are required for the postgres driver")
		}
	case DatabaseDriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("DB_SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case StorageDriverMinio:
		if c.Minio.Endpoint == "" || c.Minio.AccessKey == "" || c.Minio.SecretKey == "" {
			return errors.New("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio driver")
		}
	case StorageDriverS3:
		if c.S3.Region == "" {
			return errors.New("S3_REGION is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}

// Validate checks the settings the upload watcher needs
func (n NATSConfig) Validate() error {
	if n.URL == "" || n.StreamName == "" || n.ConsumerName == "" || n.Subject == "" {
		return errors.New("NATS_URL, NATS_STREAM_NAME, NATS_CONSUMER_NAME and NATS_SUBJECT are required")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
// Значения читаются из config.toml, затем из .env и переменных окружения (BARBERBOOK_*)
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Tracing   TracingConfig   `toml:"tracing"`
	Auth      AuthConfig      `toml:"auth"`
	Redis     RedisConfig     `toml:"redis"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Cache     CacheConfig     `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"BARBERBOOK_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver "postgres" (lib/pq) или "pgx" (pgx stdlib)
	Driver          string `toml:"driver" env:"BARBERBOOK_DATABASE_DRIVER"`
	URL             string `toml:"url" env:"BARBERBOOK_DATABASE_DSN"`
	Host            string `toml:"host" env:"BARBERBOOK_DATABASE_HOST"`
	Port            int    `toml:"port" env:"BARBERBOOK_DATABASE_PORT"`
	User            string `toml:"user" env:"BARBERBOOK_DATABASE_USER"`
	Password        string `toml:"password" env:"BARBERBOOK_DATABASE_PASSWORD"`
	DBName          string `toml:"dbname" env:"BARBERBOOK_DATABASE_NAME"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к PostgreSQL
// Если задан URL, он используется как есть
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file" env:"BARBERBOOK_LOG_FILE"`
	Level string `toml:"level" env:"BARBERBOOK_LOG_LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"BARBERBOOK_METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	Enabled      bool    `toml:"enabled" env:"BARBERBOOK_TRACING_ENABLED"`
	OTLPEndpoint string  `toml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

type AuthConfig struct {
	// PublicAPIKey ключ, который публичные клиенты передают в заголовке apikey
	PublicAPIKey string `toml:"public_api_key" env:"BARBERBOOK_PUBLIC_API_KEY"`
	JWTSecret    string `toml:"jwt_secret" env:"BARBERBOOK_JWT_SECRET"`
	SessionTTL   int    `toml:"session_ttl_minutes"`
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure" env:"BARBERBOOK_COOKIE_SECURE"`
}

type RedisConfig struct {
	// Пустой Addr означает хранение отозванных сессий в памяти процесса
	Addr     string `toml:"addr" env:"BARBERBOOK_REDIS_ADDR"`
	Password string `toml:"password" env:"BARBERBOOK_REDIS_PASSWORD"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type BookingConfig struct {
	ClientCancelLeadMinutes int    `toml:"client_cancel_lead_minutes"`
	Timezone                string `toml:"timezone" env:"BARBERBOOK_TIMEZONE"`
}

// Location часовой пояс, в котором интерпретируются дата и время записей
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// TrustedProxies CIDR балансировщиков, которым доверяем X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies"`
}

type CacheConfig struct {
	BusinessSize int `toml:"business_size"`
	// BusinessTTLSeconds срок жизни записи: другие инстансы видят новое расписание не позже чем через TTL
	BusinessTTLSeconds int `toml:"business_ttl_seconds"`
}

// BusinessTTL срок жизни записи кэша барбершопов
func (c CacheConfig) BusinessTTL() time.Duration {
	return time.Duration(c.BusinessTTLSeconds) * time.Second
}

// Load загружает конфигурацию из TOML файла и переопределяет её из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// .env опционален, уже заданные переменные окружения не перезаписываются
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barberbook",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barberbook",
		},
		Tracing: TracingConfig{
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
		Auth: AuthConfig{
			SessionTTL: 12 * 60,
			CookieName: "barberbook_session",
		},
		Redis: RedisConfig{
			Prefix: "barberbook:",
		},
		Booking: BookingConfig{
			ClientCancelLeadMinutes: 120,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
		Cache: CacheConfig{
			BusinessSize:       512,
			BusinessTTLSeconds: 60,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	if c.Auth.PublicAPIKey == "" {
		return errors.New("config: auth.public_api_key is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("config: invalid auth.session_ttl_minutes %d", c.Auth.SessionTTL)
	}
	if c.Booking.ClientCancelLeadMinutes < 0 {
		return fmt.Errorf("config: invalid booking.client_cancel_lead_minutes %d", c.Booking.ClientCancelLeadMinutes)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("config: invalid booking.timezone: %w", err)
	}
	if c.Cache.BusinessSize <= 0 {
		return fmt.Errorf("config: invalid cache.business_size %d", c.Cache.BusinessSize)
	}
	if c.Cache.BusinessTTLSeconds <= 0 {
		return fmt.Errorf("config: invalid cache.business_ttl_seconds %d", c.Cache.BusinessTTLSeconds)
	}
	for _, cidr := range c.RateLimit.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("config: invalid rate_limit.trusted_proxies entry %q: %w", cidr, err)
		}
	}
	return nil
}

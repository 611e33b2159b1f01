package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера, все таймауты в секундах
type ServerConfig struct {
	HTTPPort              int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout           int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout          int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout           int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout       int `toml:"shutdown_timeout" validate:"min=0"`
	RequestTimeoutSeconds int `toml:"request_timeout_seconds" validate:"min=0"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

// RedisConfig настройки Redis (кеш часов работы и сессии)
type RedisConfig struct {
	Addr                   string `toml:"addr" validate:"required,hostname_port"`
	Password               string `toml:"password"`
	DB                     int    `toml:"db" validate:"min=0"`
	OpeningHoursTTLSeconds int    `toml:"opening_hours_ttl_seconds" validate:"min=1"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// AuthConfig учётная запись администратора и сессии
type AuthConfig struct {
	Username           string  `toml:"username" validate:"required"`
	PasswordHash       string  `toml:"password_hash" validate:"required,startswith=$2"`
	SessionTTLMinutes  int     `toml:"session_ttl_minutes" validate:"min=1"`
	LoginRatePerMinute float64 `toml:"login_rate_per_minute" validate:"gt=0"`
	LoginBurst         int     `toml:"login_burst" validate:"min=1"`
}

// ScheduleConfig часовой пояс салона и допуск на "прошлое"
type ScheduleConfig struct {
	Timezone         string `toml:"timezone" validate:"required"`
	PastGraceSeconds int    `toml:"past_grace_seconds" validate:"min=0"`
}

// Location загружает часовой пояс салона
func (c ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// PastGrace допуск на рассинхрон часов при проверке "в прошлом"
func (c ScheduleConfig) PastGrace() time.Duration {
	return time.Duration(c.PastGraceSeconds) * time.Second
}

// Load читает .env (если есть), затем TOML файл; ${VAR} подставляются из окружения
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(expandEnv(string(raw)))
}

// Подставляются только ${VAR}: bcrypt хеш содержит "$2a$10$..."
var envPlaceholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(data string) string {
	return envPlaceholder.ReplaceAllStringFunc(data, func(m string) string {
		return os.Getenv(envPlaceholder.FindStringSubmatch(m)[1])
	})
}

// Parse разбирает TOML, заполняет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode toml: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	if _, err := cfg.Schedule.Location(); err != nil {
		return nil, fmt.Errorf("config: invalid schedule.timezone %q: %w", cfg.Schedule.Timezone, err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:              8080,
			ReadTimeout:           15,
			WriteTimeout:          30,
			IdleTimeout:           60,
			ShutdownTimeout:       10,
			RequestTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			OpeningHoursTTLSeconds: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "grooming-service",
		},
		Auth: AuthConfig{
			Username:           "admin",
			SessionTTLMinutes:  720,
			LoginRatePerMinute: 5,
			LoginBurst:         5,
		},
		Schedule: ScheduleConfig{
			Timezone:         "America/Sao_Paulo",
			PastGraceSeconds: 60,
		},
	}
}

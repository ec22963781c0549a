package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	Migrate         bool   `toml:"migrate"`
	MigrationsDir   string `toml:"migrations_dir"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig политика резолвера доступности
type SchedulingConfig struct {
	// HorizonDays горизонт проверки доступных дат (в днях)
	HorizonDays int `toml:"horizon_days"`
	// MarkerStepMinutes шаг временных маркеров исполнителей (гранулярность расписания)
	MarkerStepMinutes int `toml:"marker_step_minutes"`
	// DayEndHour час окончания рабочего дня в UTC (24 = конец календарного дня)
	DayEndHour int `toml:"day_end_hour"`
	// MinNoticeMinutes минимальное время до начала заказа при бронировании на сегодня
	MinNoticeMinutes int `toml:"min_notice_minutes"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из TOML файла
// Секреты могут быть переопределены через переменные окружения
// (.env подхватывается, если присутствует)
func Load(path string) (*Config, error) {
	// .env опционален, отсутствие файла не является ошибкой
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Переопределения из окружения (для секретов вне config.toml)
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationsDir == "" {
		cfg.Database.MigrationsDir = "migrations"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "availability-service"
	}
	if cfg.Scheduling.HorizonDays == 0 {
		cfg.Scheduling.HorizonDays = 30
	}
	if cfg.Scheduling.MarkerStepMinutes == 0 {
		cfg.Scheduling.MarkerStepMinutes = 60
	}
	if cfg.Scheduling.DayEndHour == 0 {
		cfg.Scheduling.DayEndHour = 24
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Scheduling.MarkerStepMinutes <= 0 {
		return fmt.Errorf("config: scheduling.marker_step_minutes must be positive")
	}
	if cfg.Scheduling.DayEndHour < 1 || cfg.Scheduling.DayEndHour > 24 {
		return fmt.Errorf("config: scheduling.day_end_hour must be within 1..24")
	}
	if cfg.Scheduling.HorizonDays <= 0 {
		return fmt.Errorf("config: scheduling.horizon_days must be positive")
	}
	return nil
}

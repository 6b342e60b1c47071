package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения
type Config struct {
	Server         ServerConfig   `toml:"server"`
	Logs           LogsConfig     `toml:"logs"`
	Metrics        MetricsConfig  `toml:"metrics"`
	AuthService    UpstreamConfig `toml:"auth_service"`
	CatalogService UpstreamConfig `toml:"catalog_service"`
	BookingService UpstreamConfig `toml:"booking_service"`
	Sessions       SessionsConfig `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// UpstreamConfig настройки внешнего сервиса (URL и таймаут в секундах)
type UpstreamConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SessionsConfig настройки хранилища сессий бронирования
type SessionsConfig struct {
	// TTLMinutes время жизни незавершённой сессии в минутах
	TTLMinutes int `toml:"ttl_minutes"`
	// CleanupIntervalMinutes интервал фоновой очистки истёкших сессий
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.AuthService.URL == "" {
		return fmt.Errorf("config: auth_service.url is required")
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("config: catalog_service.url is required")
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("config: booking_service.url is required")
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("config: sessions.ttl_minutes must be positive")
	}
	return nil
}

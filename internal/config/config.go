package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	External ExternalConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig содержит настройки сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig содержит настройки хранилища курсов
type DatabaseConfig struct {
	Driver   string // postgres или sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // файл sqlite
}

// ExternalConfig содержит настройки внешнего источника курсов
type ExternalConfig struct {
	APIKey  string
	BaseURL string // пустой адрес отключает обновление курсов
	Timeout time.Duration
}

// WorkerConfig содержит настройки фонового воркера
type WorkerConfig struct {
	RefreshInterval time.Duration
	SweepInterval   time.Duration
}

// LoggingConfig содержит настройки логирования
type LoggingConfig struct {
	Level  string
	Format string
}

// AppConfig содержит общие настройки приложения
type AppConfig struct {
	ShutdownTimeout time.Duration
	BaseCurrency    string
	DefaultTarget   string
	SessionTTL      time.Duration
	AllowedOrigins  []string
	EnableSwagger   bool
	MaxSessions     int
}

// Load загружает конфигурацию из переменных окружения
// Сначала пытается загрузить .env файл, затем использует системные env vars
func Load() *Config {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файл не найден)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables: %v", err)
	}
	return FromEnv()
}

// FromEnv собирает конфигурацию только из переменных окружения
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "exchange_rates"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "data/rates.db"),
		},
		External: ExternalConfig{
			APIKey:  getEnv("RATES_API_KEY", ""),
			BaseURL: getEnv("RATES_API_URL", ""),
			Timeout: getDurationEnv("RATES_API_TIMEOUT", 10*time.Second),
		},
		Worker: WorkerConfig{
			RefreshInterval: getDurationEnv("RATES_REFRESH_INTERVAL", 5*time.Minute),
			SweepInterval:   getDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		App: AppConfig{
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
			BaseCurrency:    strings.ToUpper(getEnv("BASE_CURRENCY", "AMD")),
			DefaultTarget:   strings.ToUpper(getEnv("DEFAULT_TARGET_CURRENCY", "USD")),
			SessionTTL:      getDurationEnv("SESSION_TTL", 30*time.Minute),
			AllowedOrigins:  getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			EnableSwagger:   getBoolEnv("ENABLE_SWAGGER", true),
			MaxSessions:     getIntEnv("MAX_SESSIONS", 10000),
		},
	}
}

// Адрес для http.Server
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv получает значение переменной окружения как duration или возвращает значение по умолчанию
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv получает значение переменной окружения как int или возвращает значение по умолчанию
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv получает значение переменной окружения как bool или возвращает значение по умолчанию
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getStringSliceEnv получает значение переменной окружения как slice строк или возвращает значение по умолчанию
func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	}
	return defaultValue
}

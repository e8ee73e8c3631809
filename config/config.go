package config

import (
	"errors"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// minSaltLength argon2 拒絕少於 8 bytes 的 salt
const minSaltLength = 8

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Security SecurityConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// SecurityConfig 密碼雜湊使用的固定 salt
type SecurityConfig struct {
	Salt string
}

type LogConfig struct {
	Level string
}

// LoadConfig 讀取 .env（若存在）與環境變數。回傳的 Config 啟動後不再修改。
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Security: SecurityConfig{
			Salt: getEnv("SALT", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Enabled:  true,
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           "3000",
			AllowedOrigins: []string{"*"},
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Security: SecurityConfig{Salt: "test-salt-0123456789"},
		Log:      LogConfig{Level: "debug"},
	}
}

// Validate 檢查必要設定
func (c *Config) Validate() error {
	if c.Security.Salt == "" {
		return errors.New("SALT is required")
	}
	if len(c.Security.Salt) < minSaltLength {
		return errors.New("SALT must be at least 8 bytes")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.New("PORT must be numeric")
	}
	return nil
}

// Addr 回傳 gin 監聽位址
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Enabled:  getBoolEnv("REDIS_ENABLED", false),
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getSliceEnv(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

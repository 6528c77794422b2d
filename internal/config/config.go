package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string `mapstructure:"PORT"`      // サーバーポート（8080）
	GoEnv    string `mapstructure:"GO_ENV"`    // dev/prod
	LogLevel string `mapstructure:"LOG_LEVEL"` // debug/info/warn/error

	DBDriver    string `mapstructure:"DB_DRIVER"`    // sqlite/postgres
	DatabaseURL string `mapstructure:"DATABASE_URL"` // あれば最優先
	SQLitePath  string `mapstructure:"SQLITE_PATH"`

	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     int    `mapstructure:"POSTGRES_PORT"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`

	JWTSecret      string        `mapstructure:"JWT_SECRET"` // JWT署名シークレット
	AccessTokenTTL time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	BcryptCost     int           `mapstructure:"BCRYPT_COST"`

	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"` // 空ならイベント送信しない
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`
}

var defaults = map[string]any{
	"PORT":              "8080",
	"GO_ENV":            "dev",
	"LOG_LEVEL":         "info",
	"DB_DRIVER":         DriverSQLite,
	"DATABASE_URL":      "",
	"SQLITE_PATH":       "oroshop.db",
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "postgres",
	"POSTGRES_DB":       "oroshop",
	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     5432,
	"POSTGRES_SSLMODE":  "disable",
	"JWT_SECRET":        "",
	"ACCESS_TOKEN_TTL":  "15m",
	"BCRYPT_COST":       12,
	"KAFKA_BROKERS":     "",
	"KAFKA_TOPIC":       "order-events",
}

// Loadは.envと環境変数から設定を読む。
// envFileが存在しなくてもエラーにしない（環境変数だけで動かせる）。
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.KafkaBrokers = csv(cfg.KafkaBrokers)
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return Config{}, fmt.Errorf("SQLITE_PATH is required")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" && cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("DATABASE_URL or POSTGRES_HOST is required")
		}
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}

	return cfg, nil
}

// PostgresDSNはpostgres用の接続文字列を返す。
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// "a, b" のような値も分割して空要素を落とす
func csv(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, p := range strings.Split(item, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

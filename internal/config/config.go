package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret      string // JWT署名シークレット
	JWTIssuer      string
	JWTAudience    string
	JWTExpiresHour int

	// 会員登録時に付与するロールID（未設定なら起動しない）
	DefaultRoleID int64

	GoEnv       string   // development/production
	CORSOrigins []string // フロントのオリジン

	RedisAddr       string // 空ならキャッシュ無効
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration

	KafkaBrokers     []string // 空ならイベント送信しない
	OrderEventsTopic string

	AuthRateLimit float64 // 1秒あたり
	AuthRateBurst int
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	jwtHours, err := atoiDefault("JWT_EXPIRES_HOURS", 24)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := atoiDefault("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	burst, err := atoiDefault("AUTH_RATE_BURST", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "fashionstore"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      getenv("JWT_ISSUER", "fashionstore"),
		JWTAudience:    getenv("JWT_AUDIENCE", "fashionstore-web"),
		JWTExpiresHour: jwtHours,

		GoEnv:       getenv("GO_ENV", "development"),
		CORSOrigins: splitCSV(getenv("CORS_ORIGINS", "*")),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		KafkaBrokers:     splitCSV(os.Getenv("KAFKA_BROKERS")),
		OrderEventsTopic: getenv("ORDER_EVENTS_TOPIC", "order.placed"),

		AuthRateBurst: burst,
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTExpiresHour <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_HOURS must be > 0")
	}

	// ロールIDを推測しない
	v := os.Getenv("DEFAULT_ROLE_ID")
	if v == "" {
		return Config{}, fmt.Errorf("DEFAULT_ROLE_ID is required")
	}
	roleID, err := strconv.ParseInt(v, 10, 64)
	if err != nil || roleID <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_ROLE_ID must be a positive number")
	}
	cfg.DefaultRoleID = roleID

	ttl, err := time.ParseDuration(getenv("CATALOG_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("CATALOG_CACHE_TTL must be duration: %w", err)
	}
	cfg.CatalogCacheTTL = ttl

	rl, err := strconv.ParseFloat(getenv("AUTH_RATE_LIMIT", "2"), 64)
	if err != nil || rl <= 0 {
		return Config{}, fmt.Errorf("AUTH_RATE_LIMIT must be a positive number")
	}
	cfg.AuthRateLimit = rl

	return cfg, nil
}

// DSNはgorm用の接続文字列
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func (c Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

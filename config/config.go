package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	BaseURL   string
	UserAgent string

	MaxRetries     int
	RetryDelayMs   int
	RequestTimeout int

	Keywords      []string
	CategoryPaths []string
	PinnedIDs     []string

	SearchLimit       int
	CategoryLimit     int
	ReviewsPerProduct int
	CollectReviews    bool
	ProgressEvery     int

	ProductPauseMinMs int
	ProductPauseMaxMs int
	EnrichPauseMinMs  int
	EnrichPauseMaxMs  int
	Seed              int64

	OutputDir       string
	ProductsCSVPath string

	CategoryRender bool
	ChromeBin      string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL: getEnv("TIKI_BASE_URL", "https://tiki.vn"),
		UserAgent: getEnv("USER_AGENT",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
				"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		RetryDelayMs:   getEnvInt("RETRY_DELAY_MS", 1000),
		RequestTimeout: getEnvInt("REQUEST_TIMEOUT_MS", 30000),

		Keywords:      getEnvList("SEARCH_KEYWORDS", defaultKeywords),
		CategoryPaths: getEnvList("CATEGORY_PATHS", defaultCategories),
		PinnedIDs:     getEnvList("PINNED_PRODUCT_IDS", nil),

		SearchLimit:       getEnvInt("SEARCH_LIMIT", 1000),
		CategoryLimit:     getEnvInt("CATEGORY_LIMIT", 1000),
		ReviewsPerProduct: getEnvInt("REVIEWS_PER_PRODUCT", 100),
		CollectReviews:    getEnvBool("COLLECT_REVIEWS", true),
		ProgressEvery:     getEnvInt("PROGRESS_EVERY", 10),

		ProductPauseMinMs: getEnvInt("PRODUCT_PAUSE_MIN_MS", 0),
		ProductPauseMaxMs: getEnvInt("PRODUCT_PAUSE_MAX_MS", 0),
		EnrichPauseMinMs:  getEnvInt("ENRICH_PAUSE_MIN_MS", 1000),
		EnrichPauseMaxMs:  getEnvInt("ENRICH_PAUSE_MAX_MS", 3000),
		Seed:              int64(getEnvInt("RANDOM_SEED", 0)),

		OutputDir:       getEnv("OUTPUT_DIR", "./data"),
		ProductsCSVPath: getEnv("PRODUCTS_CSV_PATH", "./data/merged_tiki_products.csv"),

		CategoryRender: getEnvBool("CATEGORY_RENDER", false),
		ChromeBin:      getEnv("CHROME_BIN", ""),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "tiki_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// defaultKeywords and defaultCategories seed discovery when no lists are
// configured. Both can be replaced wholesale through the environment.
var defaultKeywords = []string{
	"điện thoại", "điện thoại thông minh", "smartphone cao cấp",
	"laptop", "laptop gaming", "laptop văn phòng",
	"tai nghe", "tai nghe bluetooth", "loa bluetooth",
	"máy giặt", "tủ lạnh inverter", "nồi chiên không dầu",
	"tivi", "tivi 4K", "máy ảnh", "máy quay phim",
}

var defaultCategories = []string{
	"dien-thoai-smartphone/c1795", "laptop/c1846", "tivi/c1882",
	"may-giat/c1883", "may-anh/c1801", "tai-nghe/c1788",
	"may-tinh-bang/c1803", "loa-bluetooth/c1811",
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

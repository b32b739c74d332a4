package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoyaltyTier: ยอดสะสมถึง MinSpend → ได้ส่วนลด Pct เปอร์เซ็นต์
type LoyaltyTier struct {
	MinSpend float64
	Pct      int
}

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	LoyaltyTiers      []LoyaltyTier
	CurrencyPrecision int
	CommentsLimit     int
	OrdersLimit       int

	SeedStaffName     string
	SeedStaffEmail    string
	SeedStaffPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "cafe.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		LoyaltyTiers:      parseTiers(getEnv("LOYALTY_TIERS", "500:3,1000:5,2000:7,5000:10")),
		CurrencyPrecision: getEnvInt("CURRENCY_PRECISION", 2),
		CommentsLimit:     getEnvInt("COMMENTS_LIMIT", 10),
		OrdersLimit:       getEnvInt("ORDERS_LIMIT", 100),

		SeedStaffName:     os.Getenv("SEED_STAFF_NAME"),
		SeedStaffEmail:    os.Getenv("SEED_STAFF_EMAIL"),
		SeedStaffPassword: os.Getenv("SEED_STAFF_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// รูปแบบ "500:3,1000:5" → เรียงจากน้อยไปมาก
func parseTiers(raw string) []LoyaltyTier {
	var tiers []LoyaltyTier
	for _, part := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) != 2 {
			continue
		}
		min, err1 := strconv.ParseFloat(kv[0], 64)
		pct, err2 := strconv.Atoi(kv[1])
		if err1 != nil || err2 != nil {
			log.Printf("skip invalid loyalty tier: %q", part)
			continue
		}
		tiers = append(tiers, LoyaltyTier{MinSpend: min, Pct: pct})
	}
	return tiers
}

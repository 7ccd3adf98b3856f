package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost string
	RedisPort string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3Bucket    string

	UploadFolder   string
	AllowedFormats []string
	ImageMaxWidth  int
	ImageMaxHeight int
	ImageCrop      string

	AutoMigrate bool
}

func LoadConfig() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", ":8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASSWORD", "postgres"),
		DBName: getEnv("DB_NAME", "foodbabes"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minio"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minio123"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
		S3Bucket:    getEnv("S3_BUCKET_NAME", "food-bucket"),

		UploadFolder:   getEnv("UPLOAD_FOLDER", "food"),
		AllowedFormats: splitList(getEnv("ALLOWED_FORMATS", "jpg,jpeg,png")),
		ImageMaxWidth:  getEnvInt("IMAGE_MAX_WIDTH", 500),
		ImageMaxHeight: getEnvInt("IMAGE_MAX_HEIGHT", 500),
		ImageCrop:      getEnv("IMAGE_CROP", "limit"),

		AutoMigrate: getEnv("AUTO_MIGRATE", "true") == "true",
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

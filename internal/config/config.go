package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	OCR     OCRConfig
	Storage StorageConfig
	CORS    CORSConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SessionConfig struct {
	Secret string
}

type OCRConfig struct {
	Pdftoppm  string
	Tesseract string
	Lang      string
	DPI       int
	MaxPages  int
}

type StorageConfig struct {
	TmpDir string
}

type CORSConfig struct {
	Origins []string
}

type UploadConfig struct {
	MaxBytes int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := getEnvInt("SERVER_PORT", 5001)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	dpi, err := getEnvInt("OCR_DPI", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_DPI: %w", err)
	}

	maxPages, err := getEnvInt("OCR_MAX_PAGES", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_MAX_PAGES: %w", err)
	}

	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", 32)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-this-in-production"),
		},
		OCR: OCRConfig{
			Pdftoppm:  getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract: getEnv("OCR_TESSERACT", "tesseract"),
			Lang:      getEnv("OCR_LANG", "eng"),
			DPI:       dpi,
			MaxPages:  maxPages,
		},
		Storage: StorageConfig{
			TmpDir: getEnv("TMP_DIR", ""),
		},
		CORS: CORSConfig{
			Origins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Upload: UploadConfig{
			MaxBytes: int64(maxUploadMB) << 20,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

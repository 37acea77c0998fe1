// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT signing secret (required in production).
	JWTSecret string
	// Usernames treated as admins even without the users.admin flag.
	AdminUsers []string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Standings sort key used when a request does not pass ?sort=.
	DefaultSort string

	// Logo uploads. Disabled unless a bucket is configured.
	S3 S3Config

	// MySQL – legacy portal database, used only by cmd/migrate.
	MySQLDSN string
}

// S3Config addresses an S3-compatible bucket.
type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKeyID   string
	SecretKey     string
	PublicBaseURL string
}

// Enabled reports whether logo uploads can be served.
func (s S3Config) Enabled() bool {
	return s.Bucket != "" && s.PublicBaseURL != ""
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := fromViper(newViper())
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func fromViper(v *viper.Viper) *Config {
	// Defaults
	v.SetDefault("DB_USER", "paddock")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "paddock")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("ADMIN_USERS", "")
	v.SetDefault("DEFAULT_SORT", "points")
	v.SetDefault("S3_REGION", "auto")

	return &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		AdminUsers:  splitTrimmed(strings.ToLower(v.GetString("ADMIN_USERS"))),
		Debug:       v.GetBool("DEBUG"),
		Port:        v.GetString("PORT"),
		TLSDomains:  splitTrimmed(v.GetString("TLS_DOMAINS")),
		DefaultSort: v.GetString("DEFAULT_SORT"),
		S3: S3Config{
			Endpoint:      v.GetString("S3_ENDPOINT"),
			Region:        v.GetString("S3_REGION"),
			Bucket:        v.GetString("S3_BUCKET"),
			AccessKeyID:   v.GetString("S3_ACCESS_KEY_ID"),
			SecretKey:     v.GetString("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL: v.GetString("S3_PUBLIC_BASE_URL"),
		},
		MySQLDSN: v.GetString("MYSQL_DSN"),
	}
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// IsAdmin reports whether username is listed in ADMIN_USERS.
func (c *Config) IsAdmin(username string) bool {
	name := strings.ToLower(strings.TrimSpace(username))
	for _, admin := range c.AdminUsers {
		if name == admin {
			return true
		}
	}
	return false
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DBPass == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASS must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return fmt.Errorf("TLS_DOMAINS must be set outside debug mode")
	}
	if c.S3.Bucket != "" && c.S3.PublicBaseURL == "" {
		return fmt.Errorf("S3_PUBLIC_BASE_URL must be set when S3_BUCKET is")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

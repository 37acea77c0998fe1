package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "points", cfg.DefaultSort)
	assert.Empty(t, cfg.AdminUsers, "no implicit admins")
	assert.False(t, cfg.IsAdmin("admin"))
	assert.Empty(t, cfg.TLSDomains)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, "postgres://paddock:@localhost:5432/paddock?sslmode=disable", cfg.PostgresDSN())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("ADMIN_USERS", "Alice, bob ,,")
	v.Set("TLS_DOMAINS", "paddock.example, www.paddock.example")
	v.Set("S3_BUCKET", "logos")
	v.Set("S3_PUBLIC_BASE_URL", "https://cdn.example")

	cfg := fromViper(v)

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.PostgresDSN())
	assert.Equal(t, []string{"alice", "bob"}, cfg.AdminUsers)
	assert.Equal(t, []string{"paddock.example", "www.paddock.example"}, cfg.TLSDomains)
	assert.True(t, cfg.S3.Enabled())
	assert.True(t, cfg.IsAdmin(" ALICE "))
	assert.False(t, cfg.IsAdmin("carol"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{DBPass: "pw", JWTSecret: "s", Debug: true}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no database credentials", func(c *Config) { c.DBPass = "" }},
		{"no jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"production without tls domains", func(c *Config) { c.Debug = false }},
		{"bucket without public url", func(c *Config) { c.S3.Bucket = "logos" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

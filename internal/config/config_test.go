package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:           "8080",
		JWTSecret:      "secure-secret-at-least-32-chars-long!",
		JWTExpiryHours: 168,
		DBPassword:     "secure-password",
		DBSSLMode:      "require",
		Env:            "development",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid Development", func(c *Config) {}, false},
		{"Missing Port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT Secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Zero Expiry", func(c *Config) { c.JWTExpiryHours = 0 }, true},
		{"Short Secret OK In Dev", func(c *Config) { c.JWTSecret = "short" }, false},
		{"Production Default Secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production Short Secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "too-short"
		}, true},
		{"Production Weak DB Password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production SSL Disabled", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "disable"
		}, true},
		{"Production Valid", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMTPConfigured(t *testing.T) {
	c := validConfig()
	assert.False(t, c.SMTPConfigured(), "no SMTP settings means mock transport")

	c.SMTPHost = "smtp.example.com"
	c.SMTPPort = 587
	c.SMTPUser = "mailer"
	assert.False(t, c.SMTPConfigured(), "password still missing")

	c.SMTPPass = "secret"
	assert.True(t, c.SMTPConfigured())
}

package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090
request_timeout_seconds = 5

[database]
host = "localhost"
user = "grooming"
password = "${GROOMING_DB_PASSWORD}"
dbname = "grooming"

[redis]
addr = "localhost:6379"

[auth]
password_hash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZsAtIa3ZfnMQ1jQ5DZ4Qe2"

[schedule]
timezone = "America/Sao_Paulo"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.RequestTimeoutSeconds)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, 60*time.Second, cfg.Schedule.PastGrace())
	assert.Equal(t, 300, cfg.Redis.OpeningHoursTTLSeconds)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")

	loc, err := cfg.Schedule.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("GROOMING_DB_PASSWORD", "s3cret")
	path := t.TempDir() + "/config.toml"
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.True(t, strings.HasPrefix(cfg.Auth.PasswordHash, "$2a$10$"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[server"},
		{"missing database host", `
[redis]
addr = "localhost:6379"
[auth]
password_hash = "$2a$10$abc"
[database]
user = "u"
dbname = "d"
`},
		{"unknown timezone", strings.Replace(sample, "America/Sao_Paulo", "Mars/Olympus", 1)},
		{"plain password", `
[database]
host = "h"
user = "u"
dbname = "d"
[redis]
addr = "localhost:6379"
[auth]
password_hash = "secret"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

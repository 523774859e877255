package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":           "job-board",
		"APP_ENV":            "test",
		"HTTP_PORT":          "8080",
		"DB_HOST":            "localhost",
		"DB_PORT":            "5432",
		"DB_NAME":            "jobs",
		"DB_USER":            "postgres",
		"JWT_ACCESS_SECRET":  "access",
		"JWT_REFRESH_SECRET": "refresh",
	}
}

func getter(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(getter(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "set", cfg.Matching.ScoreMode)
	assert.False(t, cfg.Database.RunSeeders)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	env := baseEnv()
	delete(env, "APP_NAME")
	delete(env, "JWT_ACCESS_SECRET")

	_, err := FromEnv(getter(env))
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["JWT_ACCESS_EXPIRES_IN"] = "soon"
	env["MATCH_SCORE_MODE"] = "fuzzy"

	_, err := FromEnv(getter(env))
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "JWT_ACCESS_EXPIRES_IN")
	assert.Contains(t, err.Error(), "MATCH_SCORE_MODE")
}

func TestFromEnv_Lists(t *testing.T) {
	env := baseEnv()
	env["CORS_ALLOWED_ORIGINS"] = "https://a.example, ,https://b.example"
	env["MATCH_SCORE_MODE"] = "MULTISET"
	env["DB_RUN_SEEDERS"] = "true"

	cfg, err := FromEnv(getter(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "multiset", cfg.Matching.ScoreMode)
	assert.True(t, cfg.Database.RunSeeders)
}

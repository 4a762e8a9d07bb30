package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "cars")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cars_db")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("STORAGE_ENDPOINT", "http://localhost:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "minio")
	t.Setenv("STORAGE_SECRET_KEY", "minio123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, "http://localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "minio", cfg.Storage.AccessKey)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, "car-listings", cfg.Storage.Bucket)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "cars",
		Password: "secret",
		DBName:   "cars_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=cars password=secret dbname=cars_db sslmode=disable",
		cfg.DSN(),
	)
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FUELPOS_APP_NAME":                os.Getenv("FUELPOS_APP_NAME"),
		"FUELPOS_APP_ENV":                 os.Getenv("FUELPOS_APP_ENV"),
		"FUELPOS_APP_PORT":                os.Getenv("FUELPOS_APP_PORT"),
		"FUELPOS_DATABASE_DRIVER":         os.Getenv("FUELPOS_DATABASE_DRIVER"),
		"FUELPOS_DATABASE_HOST":           os.Getenv("FUELPOS_DATABASE_HOST"),
		"FUELPOS_DATABASE_PORT":           os.Getenv("FUELPOS_DATABASE_PORT"),
		"FUELPOS_DATABASE_USER":           os.Getenv("FUELPOS_DATABASE_USER"),
		"FUELPOS_DATABASE_PASSWORD":       os.Getenv("FUELPOS_DATABASE_PASSWORD"),
		"FUELPOS_DATABASE_DBNAME":         os.Getenv("FUELPOS_DATABASE_DBNAME"),
		"FUELPOS_DATABASE_SSLMODE":        os.Getenv("FUELPOS_DATABASE_SSLMODE"),
		"FUELPOS_DATABASE_SQLITE_PATH":    os.Getenv("FUELPOS_DATABASE_SQLITE_PATH"),
		"FUELPOS_DATABASE_MAX_OPEN_CONNS": os.Getenv("FUELPOS_DATABASE_MAX_OPEN_CONNS"),
		"FUELPOS_DATABASE_MAX_IDLE_CONNS": os.Getenv("FUELPOS_DATABASE_MAX_IDLE_CONNS"),
		"FUELPOS_JWT_SECRET":              os.Getenv("FUELPOS_JWT_SECRET"),
		"FUELPOS_HTTP_CORS_ALLOW_ORIGINS": os.Getenv("FUELPOS_HTTP_CORS_ALLOW_ORIGINS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fuelpos-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "fuelpos", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment variables with FUELPOS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_APP_NAME", "test-app")
		os.Setenv("FUELPOS_APP_ENV", "testing")
		os.Setenv("FUELPOS_APP_PORT", "9000")
		os.Setenv("FUELPOS_DATABASE_HOST", "testdb.local")
		os.Setenv("FUELPOS_DATABASE_PORT", "5433")
		os.Setenv("FUELPOS_DATABASE_USER", "testuser")
		os.Setenv("FUELPOS_DATABASE_PASSWORD", "testpass")
		os.Setenv("FUELPOS_DATABASE_DBNAME", "testdb")
		os.Setenv("FUELPOS_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
	})

	t.Run("accepts sqlite driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_DATABASE_DRIVER", "sqlite")
		os.Setenv("FUELPOS_DATABASE_SQLITE_PATH", "/tmp/station.db")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "/tmp/station.db", cfg.Database.SQLitePath)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("FUELPOS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires a real JWT secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_APP_ENV", "production")
		os.Setenv("FUELPOS_DATABASE_PASSWORD", "prodpass")
		os.Setenv("FUELPOS_DATABASE_SSLMODE", "require")
		os.Setenv("FUELPOS_HTTP_CORS_ALLOW_ORIGINS", "https://pos.example.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects wildcard CORS origin", func(t *testing.T) {
		clearEnv()
		os.Setenv("FUELPOS_APP_ENV", "production")
		os.Setenv("FUELPOS_JWT_SECRET", "an-actually-long-production-secret-key")
		os.Setenv("FUELPOS_DATABASE_PASSWORD", "prodpass")
		os.Setenv("FUELPOS_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("postgres DSN escapes credentials", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "db.internal",
			Port:     5432,
			User:     "fuel",
			Password: "p@ss/word",
			DBName:   "fuelpos",
			SSLMode:  "require",
		}

		dsn := cfg.DSN()

		assert.Contains(t, dsn, "postgres://")
		assert.Contains(t, dsn, "db.internal:5432")
		assert.Contains(t, dsn, "sslmode=require")
		assert.NotContains(t, dsn, "p@ss/word", "password must be URL-escaped")
	})

	t.Run("sqlite DSN is the file path", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: "/var/lib/fuelpos/station.db",
		}

		assert.Equal(t, "/var/lib/fuelpos/station.db", cfg.DSN())
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
}

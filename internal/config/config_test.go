package config

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv restores the previous value when the test ends
			t.Setenv(tt.key, tt.envValue)

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "false")

	assert.Equal(t, 42, GetEnvAsType("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsType("TEST_BAD_INT", 7))
	assert.Equal(t, false, GetEnvAsType("TEST_BOOL", true))
	assert.Equal(t, true, GetEnvAsType("TEST_UNSET_BOOL", true))
}

// clearEnv blanks every variable LoadConfig reads
func clearEnv(t *testing.T) {
	for _, v := range []string{"APP_PORT", "APP_HOST", "APP_ENV", "DB_URI", "DB_MAX_RETRIES", "APP_SEED", "LOG_LEVEL"} {
		t.Setenv(v, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_URI", "postgres://pizza:s3cret@db:5432/pizzas?sslmode=disable")
		t.Setenv("DB_MAX_RETRIES", "2")
		t.Setenv("APP_SEED", "false")
		t.Setenv("LOG_LEVEL", "warn")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "0.0.0.0:9000", config.Addr())
		assert.False(t, config.Seed)
		assert.Equal(t, logrus.WarnLevel, config.Level())

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, database.DriverPostgres, dbConfig.Driver)
		assert.Equal(t, 2, dbConfig.MaxRetries)

		assert.NotContains(t, config.String(), "s3cret")
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported database scheme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_URI", "mysql://user:pw@localhost/pizzas")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "loud")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "development", config.Environment)
		assert.True(t, config.Seed)
		assert.Equal(t, logrus.DebugLevel, config.Level())

		dbConfig, err := config.Database()
		require.NoError(t, err)
		assert.Equal(t, database.DriverSQLite, dbConfig.Driver)
		assert.Equal(t, "app.db", dbConfig.Path)
		assert.Equal(t, 5, dbConfig.MaxRetries)
	})
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, levelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, levelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, levelForEnvironment("staging"))
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	b.Setenv("BENCH_KEY", "test_value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 100, cfg.Shifts.RecurringMaxOccurrences)
}

func TestFromViper_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "30")
	t.Setenv("HTTP_WRITE_TIMEOUT", "2m")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("JWT_SECRET", "s3cr3t")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.WriteTimeout)
	assert.False(t, cfg.Storage.AutoMigrate)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	v := viper.New()
	v.AutomaticEnv()

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "turnos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/turnos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

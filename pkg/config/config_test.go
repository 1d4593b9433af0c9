package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 24, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.interna:27017")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db.interna:27017", cfg.Mongo.URI)
	assert.Equal(t, 12, cfg.JWT.Expiration)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_EnteroMalformado_UsaElDefault(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	t.Setenv("HTTP_PORT", "ochenta")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.JWT.Expiration, "un valor ilegible no puede dejar tokens sin vigencia")
	assert.Equal(t, 4000, cfg.HTTP.Port)
}

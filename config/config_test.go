package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadTrimsCredentialWhitespace(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("user", "  postgres ")
	t.Setenv("password", "hunter2\n")
	t.Setenv("host", "db.example.com")
	t.Setenv("port", "5432")
	t.Setenv("dbname", "jokes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "hunter2", cfg.DBPassword)
	assert.Equal(t, ":8080", cfg.Addr)
}

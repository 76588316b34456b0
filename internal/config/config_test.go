package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.DatabaseDSN, "recipes.db")
	assert.Equal(t, c.AdminPassword, "")
	assert.Equal(t, c.SessionSecret, "")
	assert.Equal(t, c.SessionTokenValidity, 720*time.Hour)
	assert.Equal(t, c.SessionFile, ".recipekeeper_session")
	assert.Equal(t, c.S3RootUser, "admin")
	assert.Equal(t, c.S3RootPassword, "secretpassword")
	assert.Equal(t, c.S3Bucket, "recipes")
	assert.Equal(t, c.S3Region, "us-east-1")
	assert.Equal(t, c.S3BaseEndpoint, "")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.DatabaseDSN, "recipes.db")
	assert.Equal(t, c.AdminPassword, "")
	assert.Equal(t, c.SessionSecret, "")
	assert.Equal(t, c.SessionTokenValidity, 720*time.Hour)
	assert.Equal(t, c.SessionFile, ".recipekeeper_session")
	assert.Equal(t, c.S3Bucket, "recipes")
}

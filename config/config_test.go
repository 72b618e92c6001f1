package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, "debug", c.Env.Mode)
	assert.Empty(t, c.Env.Log)
	assert.Equal(t, "six", c.Sanmei.Layout)
	assert.Equal(t, "nijuhachigen", c.Sanmei.HiddenStems)
	assert.False(t, c.Sanmei.Transform)
	assert.Equal(t, 10*time.Minute, c.Sanmei.CacheTTL)
	assert.Equal(t, "ja", c.I18n.Default)
}

func TestLoadFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sanmei.yaml")
	body := "http:\n  port: \"9090\"\nsanmei:\n  layout: five\n  cache_ttl: 30s\n"
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))
	t.Setenv("SANMEI_SANMEI_TRANSFORM", "true")
	t.Setenv("SANMEI_I18N_DEFAULT", "zh")

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, "five", c.Sanmei.Layout)
	assert.Equal(t, 30*time.Second, c.Sanmei.CacheTTL)
	assert.True(t, c.Sanmei.Transform)
	assert.Equal(t, "zh", c.I18n.Default)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

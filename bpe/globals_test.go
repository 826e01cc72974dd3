package internal

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, dir, configHome())

	t.Setenv("XDG_CONFIG_HOME", "relative/path")
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".config"), configHome(), "relative XDG_CONFIG_HOME is ignored")
}

func TestGetLeveledLogger(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, GetLeveledLogger("ERROR").GetLevel())
	assert.Equal(t, zerolog.DebugLevel, GetLeveledLogger(" debug ").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, GetLeveledLogger("loud").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, GetLeveledLogger("").GetLevel())
}

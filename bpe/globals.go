package internal

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultConfigPath is the default path to the config file
	DefaultAppName          = "bpe"
	DefaultConfigPath       = filepath.Join(configHome(), DefaultAppName)
	DefaultGlobalConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")
	DefaultIgnoreFile       = "." + DefaultAppName + "ignore"

	// Default trainer settings
	DefaultMaxMerges     = 1000
	DefaultStrategy      = "incremental"
	DefaultWorkers       = 1
	DefaultProgressEvery = 100

	// Default corpus settings. The split pattern matches whitespace and
	// sentence punctuation; empty fragments are dropped by the splitter.
	DefaultSplitPattern = `\s|\.|\!|\?`
	DefaultPreTokenizer = "regex"
	DefaultLogLevel     = "info"
)

// configHome is $XDG_CONFIG_HOME, else ~/.config, else the temp directory.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return os.TempDir()
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// GetLeveledLogger returns GetLogger filtered at the named level. Unknown
// level names fall back to info.
func GetLeveledLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return GetLogger().Level(lvl)
}

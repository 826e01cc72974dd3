package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/ZanzyTHEbar/subword-bpe/bpe"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Trainer TrainerConfig `mapstructure:"trainer"`
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Log     LogConfig     `mapstructure:"log"`
}

// TrainerConfig stores merge-learning settings.
type TrainerConfig struct {
	MaxMerges     int    `mapstructure:"maxMerges"`
	Strategy      string `mapstructure:"strategy"`
	Workers       int    `mapstructure:"workers"`
	ProgressEvery int    `mapstructure:"progressEvery"`
	Verbose       bool   `mapstructure:"verbose"`
}

// CorpusConfig stores settings for turning raw text into words.
type CorpusConfig struct {
	Column       int    `mapstructure:"column"`
	Lowercase    bool   `mapstructure:"lowercase"`
	SplitPattern string `mapstructure:"splitPattern"`
	PreTokenizer string `mapstructure:"pretokenizer"`
	IgnoreFile   string `mapstructure:"ignoreFile"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("..")
		v.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("trainer.maxMerges", internal.DefaultMaxMerges)
	v.SetDefault("trainer.strategy", internal.DefaultStrategy)
	v.SetDefault("trainer.workers", internal.DefaultWorkers)
	v.SetDefault("trainer.progressEvery", internal.DefaultProgressEvery)
	v.SetDefault("trainer.verbose", false)

	v.SetDefault("corpus.column", 0)
	v.SetDefault("corpus.lowercase", true)
	v.SetDefault("corpus.splitPattern", internal.DefaultSplitPattern)
	v.SetDefault("corpus.pretokenizer", internal.DefaultPreTokenizer)
	v.SetDefault("corpus.ignoreFile", internal.DefaultIgnoreFile)

	v.SetDefault("log.level", internal.DefaultLogLevel)

	v.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // trainer.maxMerges becomes BPE_TRAINER_MAXMERGES

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return &cfg, nil
}

// Validate rejects settings the trainer and corpus loader cannot honour.
func (c *Config) Validate() error {
	if c.Trainer.MaxMerges < 0 {
		return fmt.Errorf("trainer.maxMerges must be >= 0, got %d", c.Trainer.MaxMerges)
	}
	switch strings.ToLower(c.Trainer.Strategy) {
	case "naive", "incremental":
	default:
		return fmt.Errorf("trainer.strategy must be naive or incremental, got %q", c.Trainer.Strategy)
	}
	if c.Trainer.Workers < 1 {
		return fmt.Errorf("trainer.workers must be >= 1, got %d", c.Trainer.Workers)
	}
	if c.Corpus.Column < 0 {
		return fmt.Errorf("corpus.column must be >= 0, got %d", c.Corpus.Column)
	}
	switch strings.ToLower(c.Corpus.PreTokenizer) {
	case "regex", "bert":
	default:
		return fmt.Errorf("corpus.pretokenizer must be regex or bert, got %q", c.Corpus.PreTokenizer)
	}
	return nil
}

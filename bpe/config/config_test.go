package config

import (
	"os"
	"path/filepath"
	"testing"

	internal "github.com/ZanzyTHEbar/subword-bpe/bpe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	tempDir, err := os.MkdirTemp("", "bpe-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	// Run from an empty directory so no stray config.yaml is picked up
	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) writeConfig(name, content string) string {
	path := filepath.Join(suite.tempDir, name)
	require.NoError(suite.T(), os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), internal.DefaultMaxMerges, cfg.Trainer.MaxMerges)
	assert.Equal(suite.T(), internal.DefaultStrategy, cfg.Trainer.Strategy)
	assert.Equal(suite.T(), internal.DefaultWorkers, cfg.Trainer.Workers)
	assert.Equal(suite.T(), internal.DefaultProgressEvery, cfg.Trainer.ProgressEvery)
	assert.False(suite.T(), cfg.Trainer.Verbose)

	assert.Equal(suite.T(), 0, cfg.Corpus.Column)
	assert.True(suite.T(), cfg.Corpus.Lowercase)
	assert.Equal(suite.T(), internal.DefaultSplitPattern, cfg.Corpus.SplitPattern)
	assert.Equal(suite.T(), internal.DefaultPreTokenizer, cfg.Corpus.PreTokenizer)
	assert.Equal(suite.T(), internal.DefaultIgnoreFile, cfg.Corpus.IgnoreFile)
	assert.Equal(suite.T(), internal.DefaultLogLevel, cfg.Log.Level)
}

func (suite *ConfigTestSuite) TestLoadConfigWithFile() {
	configFile := suite.writeConfig("config.yaml", `
trainer:
  maxMerges: 40
  strategy: naive
  workers: 4
  progressEvery: 10
  verbose: true
corpus:
  column: 1
  lowercase: false
  splitPattern: "\\s+"
  pretokenizer: bert
  ignoreFile: ".corpusignore"
log:
  level: debug
`)

	cfg, err := LoadConfig(configFile)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), 40, cfg.Trainer.MaxMerges)
	assert.Equal(suite.T(), "naive", cfg.Trainer.Strategy)
	assert.Equal(suite.T(), 4, cfg.Trainer.Workers)
	assert.Equal(suite.T(), 10, cfg.Trainer.ProgressEvery)
	assert.True(suite.T(), cfg.Trainer.Verbose)

	assert.Equal(suite.T(), 1, cfg.Corpus.Column)
	assert.False(suite.T(), cfg.Corpus.Lowercase)
	assert.Equal(suite.T(), `\s+`, cfg.Corpus.SplitPattern)
	assert.Equal(suite.T(), "bert", cfg.Corpus.PreTokenizer)
	assert.Equal(suite.T(), ".corpusignore", cfg.Corpus.IgnoreFile)
	assert.Equal(suite.T(), "debug", cfg.Log.Level)
}

func (suite *ConfigTestSuite) TestLoadConfigFromSearchPath() {
	suite.writeConfig("config.yaml", "trainer:\n  maxMerges: 7\n")

	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, cfg.Trainer.MaxMerges)
	assert.Equal(suite.T(), internal.DefaultStrategy, cfg.Trainer.Strategy)
}

func (suite *ConfigTestSuite) TestLoadConfigEnvOverride() {
	suite.T().Setenv("BPE_TRAINER_MAXMERGES", "42")

	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, cfg.Trainer.MaxMerges)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidFile() {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigMalformedFile() {
	configFile := suite.writeConfig("malformed.yaml", `
trainer:
  maxMerges: 10
  invalid_yaml: [unclosed bracket
`)

	cfg, err := LoadConfig(configFile)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigRejectsInvalidValues() {
	cases := map[string]string{
		"negative budget":  "trainer:\n  maxMerges: -1\n",
		"unknown strategy": "trainer:\n  strategy: greedy\n",
		"zero workers":     "trainer:\n  workers: 0\n",
		"negative column":  "corpus:\n  column: -2\n",
		"unknown splitter": "corpus:\n  pretokenizer: whitespace\n",
	}
	for name, content := range cases {
		configFile := suite.writeConfig("bad.yaml", content)
		cfg, err := LoadConfig(configFile)
		assert.Error(suite.T(), err, name)
		assert.Nil(suite.T(), cfg, name)
	}
}

func (suite *ConfigTestSuite) TestAppConfigGlobal() {
	cfg, err := LoadConfig("")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), cfg.Trainer.MaxMerges, AppConfig.Trainer.MaxMerges)
	assert.Equal(suite.T(), cfg.Corpus.SplitPattern, AppConfig.Corpus.SplitPattern)
}

// BenchmarkLoadConfig benchmarks config loading performance
func BenchmarkLoadConfig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		cfg, err := LoadConfig("")
		if err != nil {
			b.Fatal(err)
		}
		_ = cfg
	}
}

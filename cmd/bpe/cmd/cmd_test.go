package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T) (configPath, corpusPath string) {
	t.Helper()
	dir := t.TempDir()

	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: error\n"), 0o644))

	corpusPath = filepath.Join(dir, "corpus.tsv")
	require.NoError(t, os.WriteFile(corpusPath, []byte("low lower\tbas plus bas\nhard harder\tdur plus dur\n"), 0o644))
	return configPath, corpusPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrainCommand(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	out, err := run(t, "--config", configPath, "train", "--merges", "6", "--show", "2", corpusPath)
	require.NoError(t, err)

	assert.Contains(t, out, "6 merges, vocabulary 14")
	assert.Contains(t, out, "chars/token")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "MERGED")
	assert.NotContains(t, out, "hard")
}

func TestTrainCommandPrefix(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	out, err := run(t, "--config", configPath, "train", "--merges", "6", "--show", "0", "--prefix", "ha", corpusPath)
	require.NoError(t, err)
	assert.Contains(t, out, "CONTENT")
	assert.Contains(t, out, "hard")
	assert.NotContains(t, out, "MERGED")
}

func TestTrainCommandColumn(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	out, err := run(t, "--config", configPath, "train", "--merges", "0", "--column", "1", corpusPath)
	require.NoError(t, err)
	// bas plus bas dur plus dur: b a s p l u d r
	assert.Contains(t, out, "0 merges, vocabulary 8")
}

func TestTrainCommandErrors(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	_, err := run(t, "--config", configPath, "train")
	assert.Error(t, err, "corpus argument is required")

	_, err = run(t, "--config", configPath, "train", "--strategy", "greedy", corpusPath)
	assert.Error(t, err)

	_, err = run(t, "--config", configPath, "train", "--merges=-3", corpusPath)
	assert.Error(t, err)

	_, err = run(t, "--config", configPath, "train", filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestEncodeCommand(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	for _, strategy := range []string{"naive", "incremental"} {
		t.Run(strategy, func(t *testing.T) {
			out, err := run(t, "--config", configPath, "encode",
				"--train", corpusPath, "--merges", "6", "--strategy", strategy, "Lower", "HARD")
			require.NoError(t, err)

			assert.Contains(t, out, "ids:     [12 9 13]")
			assert.Contains(t, out, "pieces:  low | er | hard")
			assert.Contains(t, out, "decoded: lower hard")
		})
	}
}

func TestEncodeCommandUnknownCharacter(t *testing.T) {
	configPath, corpusPath := writeFixture(t)

	_, err := run(t, "--config", configPath, "encode", "--train", corpusPath, "--merges", "6", "zebra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode")
}

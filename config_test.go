package defaultgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaultgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{Packages: []string{"./..."}}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{}).Validate(), "packages are required")
	assert.Error(t, (&Config{Packages: []string{}}).Validate())
	assert.Error(t, (&Config{Packages: []string{""}}).Validate(), "empty pattern")
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "packages:\n  - ./...\nout_dir: gen\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./..."}, cfg.Packages)
	assert.Equal(t, "gen", cfg.OutDir)
	assert.Empty(t, cfg.Dir)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "packages:\n  - ./...\noutdir: gen\n")
	_, err := LoadConfig(path)
	assert.Error(t, err, "a misspelled key must not silently disappear")
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	base := t.TempDir()

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "0.1", cfg.Version)
	assert.Equal(t, "low", cfg.DefaultRiskLevel)
	assert.True(t, cfg.RequireHumanApproval)
	assert.Equal(t, filepath.Join(base, "index.db"), cfg.Index.Path)
}

func TestLoadReadsFile(t *testing.T) {
	base := t.TempDir()
	data := `{"version":"0.2","defaultRiskLevel":"high","requireHumanApproval":false,"index":{"path":"/var/tmp/idx.db"}}`
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte(data), 0644))

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "0.2", cfg.Version)
	assert.Equal(t, "high", cfg.DefaultRiskLevel)
	assert.False(t, cfg.RequireHumanApproval)
	assert.Equal(t, "/var/tmp/idx.db", cfg.Index.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv("AI_LEDGER_DEFAULT_RISK_LEVEL", "medium")
	t.Setenv("AI_LEDGER_INDEX_PATH", "search.db")

	cfg, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.DefaultRiskLevel)
	assert.Equal(t, filepath.Join(base, "search.db"), cfg.Index.Path)
}

func TestLoadInvalidFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, FileName), []byte("{not json"), 0644))

	_, err := Load(base)
	assert.Error(t, err)
}

func TestMarshalMatchesInitFormat(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"version\": \"0.1\",\n  \"defaultRiskLevel\": \"low\",\n  \"requireHumanApproval\": true\n}\n", string(data))
}

func TestJSONIncludesIndexPath(t *testing.T) {
	base := t.TempDir()
	cfg, err := Load(base)
	require.NoError(t, err)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	index, ok := got["index"].(map[string]interface{})
	require.True(t, ok, "index should be an object in %s", data)
	assert.Equal(t, filepath.Join(base, "index.db"), index["path"])
}

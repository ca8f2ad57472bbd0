package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcell/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.InDelta(t, 0.8, cfg.Cell.SpecialDist, 1e-12)
	assert.Equal(t, "CA", cfg.Contacts.Atom)
	assert.InDelta(t, 8.0, cfg.Contacts.Cutoff, 1e-12)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Equal(t, 10, cfg.Batch.MaxErr)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
}

func TestEnv(t *testing.T) {
	t.Setenv("PDBCELL_BATCH_WORKERS", "7")
	t.Setenv("PDBCELL_LOG_LEVEL", "debug")
	t.Setenv("PDBCELL_CONTACTS_CUTOFF", "4.5")
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 4.5, cfg.Contacts.Cutoff, 1e-12)
}

func write(t *testing.T, name, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(s), 0o644))
	return path
}

func TestYaml(t *testing.T) {
	path := write(t, "pdbcell.yaml", `
log:
  format: json
contacts:
  atom: SG
  cutoff: 3
fetch:
  site: 2
  timeout: 5s
`)
	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "SG", cfg.Contacts.Atom)
	assert.InDelta(t, 3.0, cfg.Contacts.Cutoff, 1e-12)
	assert.Equal(t, 2, cfg.Fetch.Site)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 3, cfg.Batch.Workers) // untouched
}

func TestToml(t *testing.T) {
	path := write(t, "pdbcell.toml", `
[batch]
workers = 2
max_files = 100
metrics_file = "/tmp/m.prom"
`)
	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, 100, cfg.Batch.MaxFiles)
	assert.Equal(t, "/tmp/m.prom", cfg.Batch.MetricsFile)
}

func TestMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), "/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := write(t, "bad.yaml", `
log:
  level: loud
  format: xml
cell:
  special_dist: -1
batch:
  workers: 0
`)
	_, err := config.Load(config.New(), path)
	require.Error(t, err)
	for _, s := range []string{"log.level", "log.format", "cell.special_dist", "batch.workers"} {
		assert.Contains(t, err.Error(), s)
	}
}

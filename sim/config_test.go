package sim_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arcwelt/derelict/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[world]
tick_rate = "33ms"
layout = ["#####", "#...#", "#####"]

[bots]
count = 4
move_speed = 1.5
turn_speed = 2.5

[logging]
level = "debug"
format = "json"
`)

	cfg, err := sim.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 33*time.Millisecond, cfg.World.TickRate)
	assert.Len(t, cfg.World.Layout, 3)
	assert.Equal(t, 4, cfg.Bots.Count)
	assert.Equal(t, float32(1.5), cfg.Bots.MoveSpeed)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[bots]
count = 1
`)

	cfg, err := sim.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16*time.Millisecond, cfg.World.TickRate)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 1, cfg.Bots.Count)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
[bots]
count = -1
`)
	_, err := sim.LoadConfig(path)
	assert.Error(t, err)

	path = writeConfig(t, `
[logging]
format = "xml"
`)
	_, err = sim.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := sim.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

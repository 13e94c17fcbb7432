package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/islet-server/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "STORE_DRIVER", "WORLD_SEED", "AUTOSAVE_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, int64(1), cfg.WorldSeed)
	assert.Equal(t, 30, cfg.AutosaveSeconds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("WORLD_SEED", "42")
	t.Setenv("AUTOSAVE_SECONDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, int64(42), cfg.WorldSeed)
	assert.Equal(t, 30, cfg.AutosaveSeconds)
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTuning(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		check   func(t *testing.T, tu game.Tuning)
		wantErr bool
	}{
		{
			name: "overrides",
			body: "slime:\n  max_health: 4\n  chase_speed: 75\nfishing:\n  perfect_bonus: 8\n",
			check: func(t *testing.T, tu game.Tuning) {
				def := game.DefaultTuning()
				assert.Equal(t, 4, tu.Slime.MaxHealth)
				assert.Equal(t, 75.0, tu.Slime.ChaseSpeed)
				assert.Equal(t, 8, tu.Fishing.PerfectBonus)
				assert.Equal(t, def.Slime.PatrolSpeed, tu.Slime.PatrolSpeed)
				assert.Equal(t, def.Combat, tu.Combat)
			},
		},
		{
			name: "empty file keeps defaults",
			body: "",
			check: func(t *testing.T, tu game.Tuning) {
				assert.Equal(t, game.DefaultTuning(), tu)
			},
		},
		{
			name:    "unknown key",
			body:    "slime:\n  max_healht: 4\n",
			wantErr: true,
		},
		{
			name:    "bad type",
			body:    "combat:\n  attack_duration: fast\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, err := LoadTuning(writeTuning(t, tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, game.DefaultTuning(), tu)
				return
			}
			require.NoError(t, err)
			tt.check(t, tu)
		})
	}
}

func TestLoadTuningNoFile(t *testing.T) {
	tu, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultTuning(), tu)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

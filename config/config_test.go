// SPDX-License-Identifier: MIT

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assemblygenie/config"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, well.Plate96, cfg.Plate)
	assert.Equal(t, well.Trough12, cfg.Trough)
	assert.Equal(t, 8, cfg.MaxPlatesPerRole)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, config.LogConfig{Level: "info", Format: config.FormatConsole}, cfg.Log)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "planner.yaml"))
	require.NoError(t, err)

	assert.Equal(t, well.Plate384, cfg.Plate)
	assert.Equal(t, well.Trough12, cfg.Trough, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.MaxPlatesPerRole)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero rows":       "plate: {rows: 0, columns: 12}",
		"bad trough":      "trough: {rows: 1, columns: -1}",
		"negative plates": "max_plates_per_role: -1",
		"no workers":      "workers: 0",
		"unknown level":   "log: {level: loud}",
		"unknown format":  "log: {format: xml}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("colour: blue"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestPlateOptions(t *testing.T) {
	cfg := config.Default()
	cfg.MaxPlatesPerRole = 3

	reg := plate.NewRegistry(cfg.PlateOptions()...)
	assert.Equal(t, plate.Options{
		Format:           well.Plate96,
		TroughFormat:     well.Trough12,
		MaxPlatesPerRole: 3,
	}, reg.Options())
}

package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/radiobutton/internal/hostlist"
	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radiodemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(KeyRows, 20, "")
	fs.Float64(KeyDiameter, radio.DefaultDiameter, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 20, s.Rows)
	assert.Equal(t, radio.DefaultDiameter, s.Diameter)
	assert.False(t, s.Debug)

	cfg, err := s.Radio()
	require.NoError(t, err)
	assert.Equal(t, radio.DefaultConfig().WithSelectedColor(hostlist.RowSelectedColor), cfg)
	assert.Equal(t, "#4A90E2", s.SelectedColor)
}

func TestLoad_Layers(t *testing.T) {
	path := writeConfig(t, "rows: 8\ndiameter: 24\nselected-color: white\n")
	t.Setenv("RADIODEMO_DIAMETER", "30")
	t.Setenv("RADIODEMO_DESELECTED_COLOR", "#333")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--rows", "5"}))

	s, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Rows, "flag beats file")
	assert.Equal(t, 30.0, s.Diameter, "env beats file")

	cfg, err := s.Radio()
	require.NoError(t, err)
	assert.Equal(t, graphics.ColorWhite, cfg.SelectedColor)
	assert.Equal(t, graphics.RGB(0x33, 0x33, 0x33), cfg.DeselectedColor)
}

func TestLoad_UnsetFlagsKeepFileValues(t *testing.T) {
	path := writeConfig(t, "rows: 8\n")

	s, err := Load(path, testFlags())
	require.NoError(t, err)
	assert.Equal(t, 8, s.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)

	var de *errors.Error
	require.True(t, stderrors.As(err, &de))
	assert.Equal(t, errors.KindConfig, de.Kind)
}

func TestSettings_RadioRejects(t *testing.T) {
	tests := []struct {
		name  string
		s     Settings
		field string
	}{
		{"bad selected", Settings{Diameter: 18, SelectedColor: "nope", DeselectedColor: "gray"}, KeySelectedColor},
		{"bad deselected", Settings{Diameter: 18, SelectedColor: "red", DeselectedColor: "#12345"}, KeyDeselectedColor},
		{"bad diameter", Settings{Diameter: 0, SelectedColor: "red", DeselectedColor: "gray"}, "diameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.s.Radio()
			var ce *errors.ConfigError
			require.True(t, stderrors.As(err, &ce))
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

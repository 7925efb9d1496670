// Package config resolves radiodemo settings from defaults, an optional
// config file, RADIODEMO_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-drift/radiobutton/internal/hostlist"
	rerrors "github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
)

// EnvPrefix prefixes environment overrides, e.g. RADIODEMO_ROWS.
const EnvPrefix = "RADIODEMO"

// Setting keys. Flags of the same name bind to them.
const (
	KeyRows            = "rows"
	KeyDiameter        = "diameter"
	KeySelectedColor   = "selected-color"
	KeyDeselectedColor = "deselected-color"
	KeyLogFile         = "log-file"
	KeyDebug           = "debug"
)

// Settings are the resolved radiodemo settings.
type Settings struct {
	Rows            int     `mapstructure:"rows"`
	Diameter        float64 `mapstructure:"diameter"`
	SelectedColor   string  `mapstructure:"selected-color"`
	DeselectedColor string  `mapstructure:"deselected-color"`
	LogFile         string  `mapstructure:"log-file"`
	Debug           bool    `mapstructure:"debug"`
}

// Load resolves settings. path may be empty, in which case only defaults,
// environment and flags apply. Flags that were not set on the command line
// do not override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyRows, KeyDiameter, KeySelectedColor, KeyDeselectedColor, KeyLogFile, KeyDebug} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, rerrors.New("config.Load", rerrors.KindConfig, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, rerrors.New("config.Load", rerrors.KindConfig, fmt.Errorf("config file not found: %s", path))
			}
			return nil, rerrors.New("config.Load", rerrors.KindConfig, fmt.Errorf("read %s: %w", path, err))
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, rerrors.New("config.Load", rerrors.KindConfig, fmt.Errorf("invalid settings: %w", err))
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRows, 20)
	v.SetDefault(KeyDiameter, radio.DefaultDiameter)
	v.SetDefault(KeySelectedColor, hostlist.RowSelectedColor.Hex())
	v.SetDefault(KeyDeselectedColor, radio.DefaultDeselectedColor.Hex())
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyDebug, false)
}

// Radio converts the settings into a control configuration.
func (s *Settings) Radio() (radio.Config, error) {
	selected, err := graphics.ParseColor(s.SelectedColor)
	if err != nil {
		return radio.Config{}, rerrors.New("config.Radio", rerrors.KindConfig,
			&rerrors.ConfigError{Field: KeySelectedColor, Value: s.SelectedColor, Reason: err.Error()})
	}
	deselected, err := graphics.ParseColor(s.DeselectedColor)
	if err != nil {
		return radio.Config{}, rerrors.New("config.Radio", rerrors.KindConfig,
			&rerrors.ConfigError{Field: KeyDeselectedColor, Value: s.DeselectedColor, Reason: err.Error()})
	}

	cfg := radio.DefaultConfig().WithDiameter(s.Diameter).WithColors(selected, deselected)
	if err := cfg.Validate(); err != nil {
		return radio.Config{}, rerrors.New("config.Radio", rerrors.KindConfig, err)
	}
	return cfg, nil
}

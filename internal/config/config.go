// Package config reads tool-level settings from glaze.yml and the
// environment. Build requests live in the manifest (internal/buildspec);
// this covers how the tool itself behaves.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds tool behavior knobs
type Settings struct {
	Interpreter string // Python interpreter to launch; empty means auto-discover
}

// Load reads settings from glaze.yml when present, with GLAZE_* environment
// overrides (GLAZE_PYTHON_INTERPRETER). A missing file is not an error:
// every setting has a working default.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("glaze")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("GLAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read glaze.yml: %w", err)
		}
	}

	return &Settings{
		Interpreter: v.GetString("python.interpreter"),
	}, nil
}

// FILE: lixenwraith/configfile/env.go
package configfile

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOptions are the environment knobs of the codec. Empty values leave the
// builder's settings alone.
type EnvOptions struct {
	File     string `env:"COOPDX_CONFIG_FILE"`
	Backup   string `env:"COOPDX_CONFIG_BACKUP"`
	Dir      string `env:"COOPDX_CONFIG_DIR"`
	LogLevel string `env:"COOPDX_LOG_LEVEL"`
	DevMode  bool   `env:"COOPDX_DEV_MODE"`
}

// ParseEnv reads EnvOptions from the process environment.
func ParseEnv() (EnvOptions, error) {
	var opts EnvOptions
	if err := env.Parse(&opts); err != nil {
		return EnvOptions{}, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

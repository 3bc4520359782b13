package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Settings holds process-level configuration read from the environment.
type Settings struct {
	MissionsDir string `envconfig:"ROVER_MISSIONS_DIR" default:"missions"`
	Debug       bool   `envconfig:"ROVER_DEBUG" default:"false"`
	// ROVER_MAX_COMMANDS caps the number of commands executed per simulation
	MaxCommands int `envconfig:"ROVER_MAX_COMMANDS" default:"500"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	err := envconfig.Process("", &s)
	return s, err
}

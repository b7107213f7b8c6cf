package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Raw is the configuration as supplied by the operator. It deliberately
// tolerates legacy shapes: league lists may be a delimited string or an
// array, numeric fields may arrive as strings, and the favorite team may be
// named by preset key, by a raw team object, or not at all. Normalize turns
// a Raw into a Resolved with every field defaulted.
type Raw struct {
	League               string            `yaml:"league"`
	TeamPreset           string            `yaml:"teamPreset"`
	Team                 map[string]any    `yaml:"team"`
	LeagueFavorites      map[string]string `yaml:"leagueFavorites"`
	AvailableLeagues     any               `yaml:"availableLeagues"`
	AvailableLeagueOrder any               `yaml:"availableLeagueOrder"`
	UpdateInterval       any               `yaml:"updateInterval"`
	MaxUpcoming          any               `yaml:"maxUpcoming"`
	HeaderText           string            `yaml:"headerText"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds the process-level settings that are not part of the
// per-cycle game-data configuration.
type ServerConfig struct {
	RESTPort    string `yaml:"restPort"`
	WSPort      string `yaml:"wsPort"`
	RedisURL    string `yaml:"redisURL"`
	ESPNAPIBase string `yaml:"espnAPIBase"`
}

// Load reads a Raw configuration from a YAML file.
func Load(path string) (*Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &raw, nil
}

// Package config loads server settings from an optional quartz.yaml file,
// overridden by CLI flags, the way minewire decodes server.yaml with
// gopkg.in/yaml.v3 before applying its own defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects the settings read from quartz.yaml and the CLI flags.
// ViewDistance and CompressionThreshold are loaded but not applied: the
// server uses the fixed game.ViewDistance and network.CompressionThreshold.
type Config struct {
	Address              string `yaml:"address"`
	MaxPlayers           int    `yaml:"max_players"`
	MOTD                 string `yaml:"motd"`
	ViewDistance         int    `yaml:"view_distance"`
	DefaultGameMode      string `yaml:"default_gamemode"`
	CompressionThreshold int    `yaml:"compression_threshold"`
	FaviconPath          string `yaml:"favicon_path"`
}

// Default returns the built-in configuration used when quartz.yaml is
// absent or a field is left unset.
func Default() Config {
	return Config{
		Address:              ":25565",
		MaxPlayers:           20,
		MOTD:                 "A Quartz Server",
		ViewDistance:         7,
		DefaultGameMode:      "survival",
		CompressionThreshold: 256,
		FaviconPath:          "favicon.png",
	}
}

// Load reads path (quartz.yaml by default) and merges it over Default().
// A missing file is not an error — it just means defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GameModeByte maps the configured gamemode name to its wire value,
// defaulting to survival (0) for an unrecognized name.
func GameModeByte(name string) byte {
	switch name {
	case "creative":
		return 1
	case "adventure":
		return 2
	case "spectator":
		return 3
	default:
		return 0
	}
}

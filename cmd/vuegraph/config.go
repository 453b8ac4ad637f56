package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vuegraph/vuegraph/pkg/neo"
)

const (
	defaultURI      = "bolt://localhost:7687"
	defaultUsername = "neo4j"
)

type configFile struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// resolveConfig fills connection flags left at their defaults, first
// from the environment, then from ~/.vuegraph.yaml. Explicit flags win.
func resolveConfig() {
	env := neo.FromEnv()
	if flagURI == defaultURI {
		flagURI = env.URI
	}
	if flagUsername == defaultUsername {
		flagUsername = env.Username
	}
	if flagPassword == "" {
		flagPassword = env.Password.Value()
	}
	if flagDatabase == "" {
		flagDatabase = env.Database
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".vuegraph.yaml"))
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	if flagURI == defaultURI && cfg.URI != "" {
		flagURI = cfg.URI
	}
	if flagUsername == defaultUsername && cfg.Username != "" {
		flagUsername = cfg.Username
	}
	if flagPassword == "" {
		flagPassword = cfg.Password
	}
	if flagDatabase == "" {
		flagDatabase = cfg.Database
	}
}

func connConfig() neo.Config {
	return neo.Config{
		URI:      flagURI,
		Username: flagUsername,
		Password: neo.Secret(flagPassword),
		Database: flagDatabase,
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// config holds defaults for command flags. Every value can be set with an
// environment variable and overwritten by a flag.
type config struct {
	Home    string `env:"QUORUMCLI_HOME"`
	Key     string `env:"QUORUMCLI_KEY"`
	ChainID int64  `env:"QUORUMCLI_CHAIN_ID"`
	Caller  string `env:"QUORUMCLI_CALLER"`
}

// loadConfig reads the configuration from given environment. A nil
// environment means the process environment.
func loadConfig(environ map[string]string) (config, error) {
	var c config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return c, fmt.Errorf("cannot parse environment: %s", err)
	}
	if c.Home == "" {
		c.Home = filepath.Join(os.Getenv("HOME"), ".quorum")
	}
	if c.Key == "" {
		c.Key = filepath.Join(c.Home, "priv.key")
	}
	return c, nil
}

// mustLoadConfig terminates the process if the environment is invalid,
// the same way an invalid flag value does.
func mustLoadConfig() config {
	c, err := loadConfig(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return c
}

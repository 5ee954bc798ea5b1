// Package config reads tablesync settings from viper with an OS environment fallback.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentstation/tablesync/internal/confluence"
	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/errors"
)

// Keys read from viper (flags, config file, TABLESYNC_* environment).
const (
	KeyURL     = "url"
	KeySpace   = "space"
	KeyUser    = "user"
	KeyToken   = "token"
	KeyTimeout = "timeout"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// envKey returns the prefixed environment variable name for key.
func envKey(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(key)
}

// lookup resolves key from viper, then from the prefixed environment variable.
func lookup(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return GetString(envKey(key))
}

// Confluence assembles the store configuration from viper and the environment.
// Only the timeout is checked here; confluence.New validates the rest.
func Confluence() (confluence.Config, error) {
	cfg := confluence.Config{
		BaseURL:  lookup(KeyURL),
		SpaceKey: lookup(KeySpace),
		Username: lookup(KeyUser),
		Token:    lookup(KeyToken),
	}
	if raw := lookup(KeyTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, errors.NewConfigError("timeout", "invalid duration "+raw, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

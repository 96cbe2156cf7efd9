// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/viper"

	"github.com/snowball-lang/installer/pkg/constants"
)

type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// LastInstalledVersion returns the release tag recorded by the previous
// successful install, or empty if this is a first install.
func (c *Config) LastInstalledVersion() string {
	return c.GetConfigStringValue(constants.LastVersionKey)
}

// RecordInstalledVersion persists the release tag of a successful install.
func (c *Config) RecordInstalledVersion(version string) error {
	return c.SetConfigValue(constants.LastVersionKey, version)
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"path/filepath"

	"github.com/gardener/siteforge/pkg/osfakes/osshim"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the configuration file name in SiteforgeHomeDir
	DefaultConfigFileName = "config"
	// SiteforgeHomeDir is the siteforge directory in the user home
	SiteforgeHomeDir = ".siteforge"
	// SiteforgeConfigEnv points to a configuration file outside the home directory
	SiteforgeConfigEnv = "SITEFORGECONFIG"
)

// Loader loads the theme configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the configuration from $SITEFORGECONFIG
// or $HOME/.siteforge/config
type DefaultConfigurationLoader struct {
	Os osshim.Os
}

// Load reads the configuration file. A missing file results in an empty configuration
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if d.Os == nil {
		d.Os = &osshim.OsShim{}
	}
	if configFilePath, found := d.Os.LookupEnv(SiteforgeConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", SiteforgeConfigEnv)
		}
		return d.load(configFilePath)
	}
	userHomeDir, err := d.Os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return d.load(filepath.Join(userHomeDir, SiteforgeHomeDir, DefaultConfigFileName))
}

func (d *DefaultConfigurationLoader) load(configFilePath string) (*Config, error) {
	isDir, err := d.Os.IsDir(configFilePath)
	if err != nil {
		if d.Os.IsNotExist(err) {
			klog.V(1).Infof("configuration file %s not found, using defaults", configFilePath)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if isDir {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := d.Os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	klog.Infof("Configuration: %s", configFilePath)
	return config, nil
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options encapsulates the parameters of a siteforge run
type options struct {
	SitePath          string `mapstructure:"site"`
	Strict            bool   `mapstructure:"strict"`
	Format            string `mapstructure:"format"`
	DestinationPath   string `mapstructure:"destination"`
	OutputName        string `mapstructure:"output-name"`
	DryRun            bool   `mapstructure:"dry-run"`
	DocsRoot          string `mapstructure:"docs-root"`
	FailOnBrokenLinks bool   `mapstructure:"fail-on-broken-links"`
	MetricsFile       string `mapstructure:"metrics-file"`
	EnvFile           string `mapstructure:"env-file"`
	ThemeOverrides    `mapstructure:",squash"`
	SearchOptions     `mapstructure:",squash"`
}

// ThemeOverrides are theme settings given as flags, they win over the configuration file
type ThemeOverrides struct {
	BaseURL string `mapstructure:"base-url"`
	Favicon string `mapstructure:"favicon"`
	Locale  string `mapstructure:"locale"`
}

// SearchOptions are the search service credentials read from the environment
type SearchOptions struct {
	AppID     string `mapstructure:"algolia-app-id"`
	APIKey    string `mapstructure:"algolia-api-key"`
	IndexName string `mapstructure:"algolia-index-name"`
}

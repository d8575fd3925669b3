// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

func configureFlags(command *cobra.Command) {
	command.Flags().StringP("site", "s", "config/docusaurus/index.json",
		"Site descriptor path.")
	_ = vip.BindPFlag("site", command.Flags().Lookup("site"))

	command.Flags().Bool("strict", false,
		"Rejects ambiguous navbar items that set both a link and dropdown items instead of warning.")
	_ = vip.BindPFlag("strict", command.Flags().Lookup("strict"))

	command.Flags().StringP("format", "o", "js",
		"Output format. Must be one of: `js`, `json` or `yaml`.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().StringP("destination", "d", ".",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("output-name", "docusaurus.config",
		"Name of the written configuration file, without extension.")
	_ = vip.BindPFlag("output-name", command.Flags().Lookup("output-name"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the configuration and the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().String("docs-root", "",
		"If specified, navbar doc links and footer page links are checked against the documents in this directory.")
	_ = vip.BindPFlag("docs-root", command.Flags().Lookup("docs-root"))

	command.Flags().Bool("fail-on-broken-links", true,
		"Fails the run on broken links found with --docs-root. When disabled, broken links are only logged.")
	_ = vip.BindPFlag("fail-on-broken-links", command.Flags().Lookup("fail-on-broken-links"))

	command.Flags().String("metrics-file", "",
		"If specified, build metrics are written to this file in the Prometheus text format.")
	_ = vip.BindPFlag("metrics-file", command.Flags().Lookup("metrics-file"))

	command.Flags().String("env-file", ".env.local",
		"Environment file loaded before reading the search credentials. Variables already set in the environment take precedence.")
	_ = vip.BindPFlag("env-file", command.Flags().Lookup("env-file"))

	command.Flags().String("base-url", "",
		"Overrides the site base URL of the theme configuration.")
	_ = vip.BindPFlag("base-url", command.Flags().Lookup("base-url"))

	command.Flags().String("favicon", "",
		"Overrides the favicon of the theme configuration.")
	_ = vip.BindPFlag("favicon", command.Flags().Lookup("favicon"))

	command.Flags().String("locale", "",
		"Overrides the default locale of the theme configuration.")
	_ = vip.BindPFlag("locale", command.Flags().Lookup("locale"))

	_ = vip.BindEnv("algolia-app-id", "ALGOLIA_APP_ID")
	_ = vip.BindEnv("algolia-api-key", "ALGOLIA_API_KEY")
	_ = vip.BindEnv("algolia-index-name", "ALGOLIA_INDEX_NAME")
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"k8s.io/utils/clock"
)

// Options encapsulates everything the projection needs
// besides the site descriptor
type Options struct {
	// Defaults substitute absent descriptor fields
	Defaults Defaults
	// Theme holds the static parts of the framework configuration
	Theme Theme
	// Search credentials are passed through verbatim
	Search Search
	// Clock provides the copyright year
	Clock clock.PassiveClock
}

// Defaults are the fallback values for optional descriptor fields
type Defaults struct {
	Title       string
	Tagline     string
	URL         string
	LogoAlt     string
	LogoSrc     string
	FooterStyle string
}

// Theme holds the framework settings that do not come from the descriptor
type Theme struct {
	BaseURL               string
	OnBrokenLinks         string
	OnBrokenMarkdownLinks string
	Favicon               string
	DefaultLocale         string
	Locales               []string
	Keywords              string
	Image                 string
	PrismTheme            string
	PrismDarkTheme        string
	SidebarPath           string
	CustomCSS             string
	RouteBasePath         string
	// EditPath is appended to the site URL to build the docs edit URL
	EditPath            string
	CurrentVersionLabel string
	LastVersion         string
}

// Search holds the search service credentials
type Search struct {
	AppID     string
	APIKey    string
	IndexName string
}

// DefaultOptions returns options with every built-in default and the real clock
func DefaultOptions() Options {
	return Options{
		Defaults: Defaults{
			Title:       "Awd Docs",
			Tagline:     "Awd Docs",
			URL:         "https://docs.awd.my.id/",
			LogoAlt:     "My Logo",
			LogoSrc:     "img/logo.svg",
			FooterStyle: "dark",
		},
		Theme: Theme{
			BaseURL:               "/",
			OnBrokenLinks:         "throw",
			OnBrokenMarkdownLinks: "warn",
			Favicon:               "img/favicon.ico",
			DefaultLocale:         "en",
			Locales:               []string{"en"},
			Keywords:              "docs, awd, awd docs, awd documentation, awd my",
			Image:                 "img/og_image.png",
			PrismTheme:            "github",
			PrismDarkTheme:        "dracula",
			SidebarPath:           "./sidebars.js",
			CustomCSS:             "./src/css/custom.css",
			RouteBasePath:         "/",
			EditPath:              "/admin/#/collections/doc",
			CurrentVersionLabel:   "current",
			LastVersion:           "current",
		},
		Clock: clock.RealClock{},
	}
}

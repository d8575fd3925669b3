// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gardener/siteforge/pkg/site"
	"k8s.io/utils/clock"
)

// ClassicPreset is the name of the framework preset the configuration uses
const ClassicPreset = "classic"

// Config is the site framework configuration
type Config struct {
	Title                 string      `json:"title" yaml:"title"`
	Tagline               string      `json:"tagline" yaml:"tagline"`
	URL                   string      `json:"url" yaml:"url"`
	BaseURL               string      `json:"baseUrl" yaml:"baseUrl"`
	OnBrokenLinks         string      `json:"onBrokenLinks" yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks string      `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks"`
	Favicon               string      `json:"favicon" yaml:"favicon"`
	I18n                  I18n        `json:"i18n" yaml:"i18n"`
	Presets               []Preset    `json:"presets" yaml:"presets"`
	ThemeConfig           ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
}

// I18n holds the locale settings
type I18n struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// Preset is a named preset with its options. It is encoded
// as the two element array [name, options].
type Preset struct {
	Name    string
	Options PresetOptions
}

// MarshalJSON encodes the preset as [name, options]
func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Name, p.Options})
}

// MarshalYAML encodes the preset as [name, options]
func (p Preset) MarshalYAML() (interface{}, error) {
	return []interface{}{p.Name, p.Options}, nil
}

// PresetOptions are the options of the classic preset
type PresetOptions struct {
	Docs  DocsOptions  `json:"docs" yaml:"docs"`
	Blog  bool         `json:"blog" yaml:"blog"`
	Theme ThemeOptions `json:"theme" yaml:"theme"`
}

// DocsOptions configure the docs plugin
type DocsOptions struct {
	SidebarPath          string                    `json:"sidebarPath" yaml:"sidebarPath"`
	EditURL              string                    `json:"editUrl" yaml:"editUrl"`
	RouteBasePath        string                    `json:"routeBasePath" yaml:"routeBasePath"`
	Versions             map[string]VersionOptions `json:"versions" yaml:"versions"`
	LastVersion          string                    `json:"lastVersion" yaml:"lastVersion"`
	ShowLastUpdateAuthor bool                      `json:"showLastUpdateAuthor" yaml:"showLastUpdateAuthor"`
	ShowLastUpdateTime   bool                      `json:"showLastUpdateTime" yaml:"showLastUpdateTime"`
}

// VersionOptions configure a docs version
type VersionOptions struct {
	Label string `json:"label" yaml:"label"`
}

// ThemeOptions configure the classic theme
type ThemeOptions struct {
	CustomCSS string `json:"customCss" yaml:"customCss"`
}

// ThemeConfig is the theme configuration
type ThemeConfig struct {
	Metadata []Metadata `json:"metadata" yaml:"metadata"`
	Algolia  Algolia    `json:"algolia" yaml:"algolia"`
	Navbar   Navbar     `json:"navbar" yaml:"navbar"`
	Footer   Footer     `json:"footer" yaml:"footer"`
	Image    string     `json:"image" yaml:"image"`
	Prism    Prism      `json:"prism" yaml:"prism"`
}

// Metadata is an html meta tag
type Metadata struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Algolia is the search integration block
type Algolia struct {
	AppID     string `json:"appId,omitempty" yaml:"appId,omitempty"`
	APIKey    string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	IndexName string `json:"indexName,omitempty" yaml:"indexName,omitempty"`
}

// Navbar configuration
type Navbar struct {
	Title string       `json:"title" yaml:"title"`
	Logo  Logo         `json:"logo" yaml:"logo"`
	Items []NavbarItem `json:"items" yaml:"items"`
}

// Logo of the navbar
type Logo struct {
	Alt string `json:"alt" yaml:"alt"`
	Src string `json:"src" yaml:"src"`
}

// Footer configuration. Links is omitted when nil and encoded
// as an empty list when empty.
type Footer struct {
	Style     string        `json:"style" yaml:"style"`
	Links     []FooterEntry `json:"links,omitempty" yaml:"links,omitempty"`
	Copyright string        `json:"copyright" yaml:"copyright"`
}

type plainFooter Footer

type footerWithLinks struct {
	Style     string        `json:"style" yaml:"style"`
	Links     []FooterEntry `json:"links" yaml:"links"`
	Copyright string        `json:"copyright" yaml:"copyright"`
}

func (f Footer) encoded() interface{} {
	if f.Links == nil {
		return plainFooter(f)
	}
	return footerWithLinks(f)
}

// MarshalJSON encodes the footer
func (f Footer) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.encoded())
}

// MarshalYAML encodes the footer
func (f Footer) MarshalYAML() (interface{}, error) {
	return f.encoded(), nil
}

// Prism holds the code highlighting theme names
type Prism struct {
	Theme     string `json:"theme" yaml:"theme"`
	DarkTheme string `json:"darkTheme" yaml:"darkTheme"`
}

// Project builds the framework configuration from a site descriptor
func Project(d *site.Descriptor, opts Options) *Config {
	var (
		defaults = opts.Defaults
		theme    = opts.Theme
		title    = fallback(d.Title, defaults.Title)
		url      = fallback(d.URL, defaults.URL)
	)
	return &Config{
		Title:                 title,
		Tagline:               fallback(d.Tagline, defaults.Tagline),
		URL:                   url,
		BaseURL:               theme.BaseURL,
		OnBrokenLinks:         theme.OnBrokenLinks,
		OnBrokenMarkdownLinks: theme.OnBrokenMarkdownLinks,
		Favicon:               theme.Favicon,
		I18n: I18n{
			DefaultLocale: theme.DefaultLocale,
			Locales:       theme.Locales,
		},
		Presets: []Preset{
			{
				Name: ClassicPreset,
				Options: PresetOptions{
					Docs: DocsOptions{
						SidebarPath:   theme.SidebarPath,
						EditURL:       joinURL(url, theme.EditPath),
						RouteBasePath: theme.RouteBasePath,
						Versions: map[string]VersionOptions{
							"current": {Label: theme.CurrentVersionLabel},
						},
						LastVersion:          theme.LastVersion,
						ShowLastUpdateAuthor: true,
						ShowLastUpdateTime:   true,
					},
					Theme: ThemeOptions{CustomCSS: theme.CustomCSS},
				},
			},
		},
		ThemeConfig: ThemeConfig{
			Metadata: []Metadata{{Name: "keywords", Content: theme.Keywords}},
			Algolia: Algolia{
				AppID:     opts.Search.AppID,
				APIKey:    opts.Search.APIKey,
				IndexName: opts.Search.IndexName,
			},
			Navbar: Navbar{
				Title: d.Title,
				Logo:  projectLogo(d.Logo, defaults),
				Items: ProjectNavbar(d.Navbar),
			},
			Footer: projectFooter(d.Footer, title, defaults, opts.Clock),
			Image:  theme.Image,
			Prism: Prism{
				Theme:     theme.PrismTheme,
				DarkTheme: theme.PrismDarkTheme,
			},
		},
	}
}

func projectLogo(logo *site.Logo, defaults Defaults) Logo {
	if logo == nil {
		logo = &site.Logo{}
	}
	return Logo{
		Alt: fallback(logo.Alt, defaults.LogoAlt),
		Src: fallback(logo.Src, defaults.LogoSrc),
	}
}

func projectFooter(footer *site.Footer, title string, defaults Defaults, c clock.PassiveClock) Footer {
	if footer == nil {
		footer = &site.Footer{}
	}
	out := Footer{
		Style:     fallback(footer.Style, defaults.FooterStyle),
		Copyright: Copyright(c, fallback(footer.Copyright, title)),
	}
	if footer.Links != nil {
		out.Links = ProjectFooterItems(footer.Links)
	}
	return out
}

// Copyright returns the copyright line for the current year of c
func Copyright(c clock.PassiveClock, holder string) string {
	if c == nil {
		c = clock.RealClock{}
	}
	return fmt.Sprintf("Copyright © %d %s", c.Now().Year(), holder)
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}

// joinURL appends path to base without doubling the separator. The path
// may carry a fragment, so url.JoinPath can't be used.
func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

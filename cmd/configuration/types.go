// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"net/url"

	"github.com/gardener/siteforge/pkg/projector"
	"github.com/hashicorp/go-multierror"
	"k8s.io/utils/pointer"
)

// Config represents the theme configuration file
type Config struct {
	// Defaults replace the built-in fallbacks for absent descriptor fields
	Defaults *Defaults `yaml:"defaults,omitempty"`
	// Theme replaces the built-in static framework settings
	Theme *Theme `yaml:"theme,omitempty"`
}

// Defaults is the configuration file counterpart of projector.Defaults
type Defaults struct {
	Title       *string `yaml:"title,omitempty"`
	Tagline     *string `yaml:"tagline,omitempty"`
	URL         *string `yaml:"url,omitempty"`
	LogoAlt     *string `yaml:"logoAlt,omitempty"`
	LogoSrc     *string `yaml:"logoSrc,omitempty"`
	FooterStyle *string `yaml:"footerStyle,omitempty"`
}

// Theme is the configuration file counterpart of projector.Theme
type Theme struct {
	BaseURL               *string  `yaml:"baseUrl,omitempty"`
	OnBrokenLinks         *string  `yaml:"onBrokenLinks,omitempty"`
	OnBrokenMarkdownLinks *string  `yaml:"onBrokenMarkdownLinks,omitempty"`
	Favicon               *string  `yaml:"favicon,omitempty"`
	DefaultLocale         *string  `yaml:"defaultLocale,omitempty"`
	Locales               []string `yaml:"locales,omitempty"`
	Keywords              *string  `yaml:"keywords,omitempty"`
	Image                 *string  `yaml:"image,omitempty"`
	PrismTheme            *string  `yaml:"prismTheme,omitempty"`
	PrismDarkTheme        *string  `yaml:"prismDarkTheme,omitempty"`
	SidebarPath           *string  `yaml:"sidebarPath,omitempty"`
	CustomCSS             *string  `yaml:"customCss,omitempty"`
	RouteBasePath         *string  `yaml:"routeBasePath,omitempty"`
	EditPath              *string  `yaml:"editPath,omitempty"`
	CurrentVersionLabel   *string  `yaml:"currentVersionLabel,omitempty"`
	LastVersion           *string  `yaml:"lastVersion,omitempty"`
}

var brokenLinkPolicies = map[string]bool{"ignore": true, "log": true, "warn": true, "throw": true}

// Validate reports all invalid configuration values
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.Defaults != nil && c.Defaults.URL != nil {
		if u, err := url.Parse(*c.Defaults.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = multierror.Append(errs, fmt.Errorf("defaults.url %q is not an absolute URL", *c.Defaults.URL))
		}
	}
	if c.Theme != nil {
		if c.Theme.OnBrokenLinks != nil && !brokenLinkPolicies[*c.Theme.OnBrokenLinks] {
			errs = multierror.Append(errs, fmt.Errorf("theme.onBrokenLinks %q must be one of ignore, log, warn, throw", *c.Theme.OnBrokenLinks))
		}
		if c.Theme.OnBrokenMarkdownLinks != nil && !brokenLinkPolicies[*c.Theme.OnBrokenMarkdownLinks] {
			errs = multierror.Append(errs, fmt.Errorf("theme.onBrokenMarkdownLinks %q must be one of ignore, log, warn, throw", *c.Theme.OnBrokenMarkdownLinks))
		}
		if c.Theme.Locales != nil && len(c.Theme.Locales) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("theme.locales must not be empty"))
		}
	}
	return errs.ErrorOrNil()
}

// Apply overwrites opts with every value set in the configuration
func (c *Config) Apply(opts *projector.Options) {
	if d := c.Defaults; d != nil {
		set(&opts.Defaults.Title, d.Title)
		set(&opts.Defaults.Tagline, d.Tagline)
		set(&opts.Defaults.URL, d.URL)
		set(&opts.Defaults.LogoAlt, d.LogoAlt)
		set(&opts.Defaults.LogoSrc, d.LogoSrc)
		set(&opts.Defaults.FooterStyle, d.FooterStyle)
	}
	t := c.Theme
	if t == nil {
		return
	}
	set(&opts.Theme.BaseURL, t.BaseURL)
	set(&opts.Theme.OnBrokenLinks, t.OnBrokenLinks)
	set(&opts.Theme.OnBrokenMarkdownLinks, t.OnBrokenMarkdownLinks)
	set(&opts.Theme.Favicon, t.Favicon)
	set(&opts.Theme.DefaultLocale, t.DefaultLocale)
	if len(t.Locales) > 0 {
		opts.Theme.Locales = t.Locales
	}
	set(&opts.Theme.Keywords, t.Keywords)
	set(&opts.Theme.Image, t.Image)
	set(&opts.Theme.PrismTheme, t.PrismTheme)
	set(&opts.Theme.PrismDarkTheme, t.PrismDarkTheme)
	set(&opts.Theme.SidebarPath, t.SidebarPath)
	set(&opts.Theme.CustomCSS, t.CustomCSS)
	set(&opts.Theme.RouteBasePath, t.RouteBasePath)
	set(&opts.Theme.EditPath, t.EditPath)
	set(&opts.Theme.CurrentVersionLabel, t.CurrentVersionLabel)
	set(&opts.Theme.LastVersion, t.LastVersion)
}

func set(dst *string, src *string) {
	*dst = pointer.StringDeref(src, *dst)
}

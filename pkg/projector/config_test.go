// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector_test

import (
	"time"

	"github.com/gardener/siteforge/pkg/projector"
	"github.com/gardener/siteforge/pkg/site"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	testingclock "k8s.io/utils/clock/testing"
)

var _ = Describe("Project", func() {
	var (
		d    *site.Descriptor
		opts projector.Options
		cfg  *projector.Config
	)
	BeforeEach(func() {
		d = &site.Descriptor{
			Navbar: []site.NavItem{{Label: "Docs", Position: "left", Link: site.LinkDoc, DocLink: "docs/intro.md"}},
		}
		opts = projector.DefaultOptions()
		opts.Clock = testingclock.NewFakePassiveClock(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	})
	JustBeforeEach(func() {
		cfg = projector.Project(d, opts)
	})

	When("optional fields are absent", func() {
		It("applies the defaults", func() {
			Expect(cfg.Title).To(Equal("Awd Docs"))
			Expect(cfg.Tagline).To(Equal("Awd Docs"))
			Expect(cfg.URL).To(Equal("https://docs.awd.my.id/"))
			Expect(cfg.ThemeConfig.Navbar.Title).To(BeEmpty())
			Expect(cfg.ThemeConfig.Navbar.Logo).To(Equal(projector.Logo{Alt: "My Logo", Src: "img/logo.svg"}))
			Expect(cfg.ThemeConfig.Footer.Style).To(Equal("dark"))
			Expect(cfg.ThemeConfig.Footer.Links).To(BeNil())
			Expect(cfg.ThemeConfig.Footer.Copyright).To(Equal("Copyright © 2024 Awd Docs"))
		})
		It("joins the edit url without doubling slashes", func() {
			Expect(cfg.Presets).To(HaveLen(1))
			Expect(cfg.Presets[0].Name).To(Equal(projector.ClassicPreset))
			Expect(cfg.Presets[0].Options.Docs.EditURL).To(Equal("https://docs.awd.my.id/admin/#/collections/doc"))
		})
	})

	When("descriptor sets everything", func() {
		BeforeEach(func() {
			d.Title = "Awd"
			d.Tagline = "Docs"
			d.URL = "https://docs.example.org"
			d.Logo = &site.Logo{Alt: "Awd", Src: "img/awd.svg"}
			d.Footer = &site.Footer{
				Style:     "light",
				Copyright: "Awd Inc.",
				Links:     site.FooterItems{&site.FooterLink{Label: "Blog", To: "blog/index.md"}},
			}
			opts.Search = projector.Search{AppID: "APP", APIKey: "KEY", IndexName: "docs"}
		})
		It("uses the descriptor values", func() {
			Expect(cfg.Title).To(Equal("Awd"))
			Expect(cfg.Tagline).To(Equal("Docs"))
			Expect(cfg.URL).To(Equal("https://docs.example.org"))
			Expect(cfg.ThemeConfig.Navbar.Title).To(Equal("Awd"))
			Expect(cfg.ThemeConfig.Navbar.Logo).To(Equal(projector.Logo{Alt: "Awd", Src: "img/awd.svg"}))
			Expect(cfg.ThemeConfig.Navbar.Items).To(Equal([]projector.NavbarItem{{Label: "Docs", Position: "left", Type: "doc", DocID: "intro"}}))
			Expect(cfg.ThemeConfig.Footer).To(Equal(projector.Footer{
				Style:     "light",
				Links:     []projector.FooterEntry{&projector.FooterLink{Label: "Blog", To: "blog/index"}},
				Copyright: "Copyright © 2024 Awd Inc.",
			}))
			Expect(cfg.Presets[0].Options.Docs.EditURL).To(Equal("https://docs.example.org/admin/#/collections/doc"))
		})
		It("passes the search credentials through", func() {
			Expect(cfg.ThemeConfig.Algolia).To(Equal(projector.Algolia{AppID: "APP", APIKey: "KEY", IndexName: "docs"}))
		})
	})

	When("copyright holder is not set", func() {
		BeforeEach(func() {
			d.Title = "Awd"
			d.Footer = &site.Footer{}
		})
		It("falls back to the title", func() {
			Expect(cfg.ThemeConfig.Footer.Copyright).To(Equal("Copyright © 2024 Awd"))
		})
	})

	When("neither title nor copyright holder is set", func() {
		BeforeEach(func() {
			d.Footer = &site.Footer{}
		})
		It("falls back to the default title", func() {
			Expect(cfg.ThemeConfig.Navbar.Title).To(BeEmpty())
			Expect(cfg.ThemeConfig.Footer.Copyright).To(Equal("Copyright © 2024 Awd Docs"))
		})
	})

	When("footer links are empty", func() {
		BeforeEach(func() {
			d.Footer = &site.Footer{Links: site.FooterItems{}}
		})
		It("keeps an empty links list", func() {
			Expect(cfg.ThemeConfig.Footer.Links).NotTo(BeNil())
			Expect(cfg.ThemeConfig.Footer.Links).To(BeEmpty())
		})
	})

	When("logo sets only the source", func() {
		BeforeEach(func() {
			d.Logo = &site.Logo{Src: "img/custom.svg"}
		})
		It("defaults the alt text", func() {
			Expect(cfg.ThemeConfig.Navbar.Logo).To(Equal(projector.Logo{Alt: "My Logo", Src: "img/custom.svg"}))
		})
	})

	It("carries the static theme settings", func() {
		Expect(cfg.BaseURL).To(Equal("/"))
		Expect(cfg.OnBrokenLinks).To(Equal("throw"))
		Expect(cfg.OnBrokenMarkdownLinks).To(Equal("warn"))
		Expect(cfg.Favicon).To(Equal("img/favicon.ico"))
		Expect(cfg.I18n).To(Equal(projector.I18n{DefaultLocale: "en", Locales: []string{"en"}}))
		Expect(cfg.ThemeConfig.Metadata).To(Equal([]projector.Metadata{{Name: "keywords", Content: "docs, awd, awd docs, awd documentation, awd my"}}))
		Expect(cfg.ThemeConfig.Image).To(Equal("img/og_image.png"))
		Expect(cfg.ThemeConfig.Prism).To(Equal(projector.Prism{Theme: "github", DarkTheme: "dracula"}))
		docs := cfg.Presets[0].Options.Docs
		Expect(docs.RouteBasePath).To(Equal("/"))
		Expect(docs.Versions).To(HaveKeyWithValue("current", projector.VersionOptions{Label: "current"}))
		Expect(docs.LastVersion).To(Equal("current"))
		Expect(docs.ShowLastUpdateAuthor).To(BeTrue())
		Expect(docs.ShowLastUpdateTime).To(BeTrue())
		Expect(cfg.Presets[0].Options.Blog).To(BeFalse())
	})

	It("is deterministic", func() {
		Expect(projector.Project(d, opts)).To(Equal(cfg))
	})
})

var _ = Describe("Copyright", func() {
	It("uses the current year of the clock", func() {
		c := testingclock.NewFakePassiveClock(time.Date(1999, time.December, 31, 23, 0, 0, 0, time.UTC))
		Expect(projector.Copyright(c, "Awd")).To(Equal("Copyright © 1999 Awd"))
	})
})

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector_test

import (
	"github.com/gardener/siteforge/pkg/projector"
	"github.com/gardener/siteforge/pkg/site"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Footer projection", func() {
	It("keeps the shape of a group", func() {
		item := &site.FooterGroup{
			Title: "G",
			Items: site.FooterItems{&site.FooterLink{Label: "A", Href: "https://x"}},
		}
		Expect(projector.ProjectFooterItem(item)).To(Equal(&projector.FooterGroup{
			Title: "G",
			Items: []projector.FooterEntry{&projector.FooterLink{Label: "A", Href: "https://x"}},
		}))
	})
	It("strips the extension of page links", func() {
		item := &site.FooterLink{Label: "Intro", To: "docs/intro.mdx"}
		Expect(projector.ProjectFooterItem(item)).To(Equal(&projector.FooterLink{Label: "Intro", To: "docs/intro"}))
	})
	It("prefers to over href", func() {
		item := &site.FooterLink{Label: "Both", To: "docs/a.md", Href: "https://x"}
		got := projector.ProjectFooterItem(item).(*projector.FooterLink)
		Expect(got.To).To(Equal("docs/a"))
		Expect(got.Href).To(BeEmpty())
	})
	It("maps nested groups of arbitrary depth", func() {
		items := site.FooterItems{
			&site.FooterGroup{Title: "L1", Items: site.FooterItems{
				&site.FooterGroup{Title: "L2", Items: site.FooterItems{
					&site.FooterLink{Label: "deep", To: "docs/deep.md"},
				}},
				&site.FooterLink{Label: "shallow", Href: "https://s"},
			}},
		}
		Expect(projector.ProjectFooterItems(items)).To(Equal([]projector.FooterEntry{
			&projector.FooterGroup{Title: "L1", Items: []projector.FooterEntry{
				&projector.FooterGroup{Title: "L2", Items: []projector.FooterEntry{
					&projector.FooterLink{Label: "deep", To: "docs/deep"},
				}},
				&projector.FooterLink{Label: "shallow", Href: "https://s"},
			}},
		}))
	})
	It("gives groups without items an empty items list", func() {
		got := projector.ProjectFooterItem(&site.FooterGroup{Title: "Empty"}).(*projector.FooterGroup)
		Expect(got.Items).NotTo(BeNil())
		Expect(got.Items).To(BeEmpty())
	})
	It("skips nil entries", func() {
		var nilLink *site.FooterLink
		items := site.FooterItems{
			nil,
			&site.FooterGroup{Title: "G", Items: site.FooterItems{nilLink, &site.FooterLink{Label: "A", Href: "https://x"}}},
		}
		Expect(projector.ProjectFooterItems(items)).To(Equal([]projector.FooterEntry{
			&projector.FooterGroup{Title: "G", Items: []projector.FooterEntry{&projector.FooterLink{Label: "A", Href: "https://x"}}},
		}))
		Expect(projector.ProjectFooterItem(nil)).To(BeNil())
	})
})

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// LinkType is the navbar item link discriminator
type LinkType string

const (
	// LinkExternal marks a navbar item pointing to an arbitrary URL
	LinkExternal LinkType = "external"
	// LinkDoc marks a navbar item pointing to a documentation page
	LinkDoc LinkType = "doc"
)

// Kind is the variant of a navbar item as the projection sees it
type Kind string

const (
	// KindDropdown is a container of nested navbar items
	KindDropdown Kind = "dropdown"
	// KindDoc is a link to a documentation page
	KindDoc Kind = "doc"
	// KindExternal is a link to an external URL
	KindExternal Kind = "external"
	// KindLabel is a navbar item with no usable link target
	KindLabel Kind = "label"
)

// Descriptor is the site content descriptor driving
// branding, navigation and footer content
type Descriptor struct {
	// Title of the site
	Title string `json:"title,omitempty"`
	// Tagline of the site
	Tagline string `json:"tagline,omitempty"`
	// URL is the production URL of the site
	URL string `json:"url,omitempty"`
	// Logo used in the navbar
	Logo *Logo `json:"logo,omitempty"`
	// Navbar items, required
	Navbar []NavItem `json:"navbar"`
	// Footer of the site
	Footer *Footer `json:"footer,omitempty"`
}

// Logo of the site
type Logo struct {
	Alt string `json:"alt,omitempty"`
	Src string `json:"src,omitempty"`
}

// NavItem is a navbar entry. A non-nil Items makes it a dropdown.
type NavItem struct {
	Label        string    `json:"label"`
	Position     string    `json:"position,omitempty"`
	Link         LinkType  `json:"link,omitempty"`
	ExternalLink string    `json:"externalLink,omitempty"`
	DocLink      string    `json:"docLink,omitempty"`
	Items        []NavItem `json:"items,omitempty"`
}

// IsDropdown returns true if the item carries nested items
func (n *NavItem) IsDropdown() bool {
	return n.Items != nil
}

// HasDocTarget returns true if the item links a documentation page
func (n *NavItem) HasDocTarget() bool {
	return n.Link == LinkDoc && n.DocLink != ""
}

// HasExternalTarget returns true if the item links an external URL
func (n *NavItem) HasExternalTarget() bool {
	return n.Link == LinkExternal && n.ExternalLink != ""
}

// Kind classifies the item. Dropdown takes precedence over doc,
// doc over external.
func (n *NavItem) Kind() Kind {
	switch {
	case n.IsDropdown():
		return KindDropdown
	case n.HasDocTarget():
		return KindDoc
	case n.HasExternalTarget():
		return KindExternal
	default:
		return KindLabel
	}
}

// Footer of the site
type Footer struct {
	Style     string      `json:"style,omitempty"`
	Links     FooterItems `json:"links,omitempty"`
	Copyright string      `json:"copyright,omitempty"`
}

// FooterItem is either a *FooterGroup or a *FooterLink
type FooterItem interface {
	footerItem()
}

// FooterItems is a list of footer items decoded into their variants
type FooterItems []FooterItem

// FooterGroup is a footer column with a heading and nested items
type FooterGroup struct {
	Title string      `json:"title"`
	Items FooterItems `json:"items"`
}

// FooterLink is a footer entry pointing to a site page (To)
// or an arbitrary URL (Href)
type FooterLink struct {
	Label string `json:"label"`
	To    string `json:"to,omitempty"`
	Href  string `json:"href,omitempty"`
}

func (*FooterGroup) footerItem() {}

func (*FooterLink) footerItem() {}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"encoding/json"

	"github.com/gardener/siteforge/pkg/site"
	"k8s.io/klog/v2"
)

const (
	// NavbarTypeDoc is the framework navbar item type for doc links
	NavbarTypeDoc = "doc"
	// NavbarTypeDropdown is the framework navbar item type for dropdowns
	NavbarTypeDropdown = "dropdown"
)

// NavbarItem is a navbar entry in the framework configuration
type NavbarItem struct {
	Label    string       `json:"label" yaml:"label"`
	Position string       `json:"position,omitempty" yaml:"position,omitempty"`
	Href     string       `json:"href,omitempty" yaml:"href,omitempty"`
	Type     string       `json:"type,omitempty" yaml:"type,omitempty"`
	DocID    string       `json:"docId,omitempty" yaml:"docId,omitempty"`
	Items    []NavbarItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// plainNavbarItem encodes a NavbarItem without its marshalers
type plainNavbarItem NavbarItem

// dropdownNavbarItem always encodes items, the framework requires them
// on dropdowns even when empty
type dropdownNavbarItem struct {
	Label    string       `json:"label" yaml:"label"`
	Position string       `json:"position,omitempty" yaml:"position,omitempty"`
	Href     string       `json:"href,omitempty" yaml:"href,omitempty"`
	Type     string       `json:"type,omitempty" yaml:"type,omitempty"`
	DocID    string       `json:"docId,omitempty" yaml:"docId,omitempty"`
	Items    []NavbarItem `json:"items" yaml:"items"`
}

func (n NavbarItem) encoded() interface{} {
	if n.Type != NavbarTypeDropdown {
		return plainNavbarItem(n)
	}
	d := dropdownNavbarItem(n)
	if d.Items == nil {
		d.Items = []NavbarItem{}
	}
	return d
}

// MarshalJSON encodes the item, keeping items on dropdowns
func (n NavbarItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.encoded())
}

// MarshalYAML encodes the item, keeping items on dropdowns
func (n NavbarItem) MarshalYAML() (interface{}, error) {
	return n.encoded(), nil
}

// ProjectNavbarItem maps a navbar item of the site descriptor to the
// framework schema. Position is kept for top-level items only.
// Link targets apply in the order external, doc, dropdown and a later
// one overwrites Type: an item with both a doc link and items is a
// dropdown that still carries its DocID.
func ProjectNavbarItem(item site.NavItem, nested bool) NavbarItem {
	out := NavbarItem{
		Label: item.Label,
	}
	if !nested {
		out.Position = item.Position
	}
	if item.HasExternalTarget() {
		out.Href = item.ExternalLink
	}
	if item.HasDocTarget() {
		out.Type = NavbarTypeDoc
		out.DocID = DocID(item.DocLink)
	}
	if item.IsDropdown() {
		out.Type = NavbarTypeDropdown
		out.Items = make([]NavbarItem, 0, len(item.Items))
		for _, child := range item.Items {
			out.Items = append(out.Items, ProjectNavbarItem(child, true))
		}
	}
	klog.V(6).Infof("navbar item %q projected as %s\n", item.Label, item.Kind())
	return out
}

// ProjectNavbar maps the top-level navbar items
func ProjectNavbar(items []site.NavItem) []NavbarItem {
	out := make([]NavbarItem, 0, len(items))
	for _, item := range items {
		out = append(out, ProjectNavbarItem(item, false))
	}
	return out
}

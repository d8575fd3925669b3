// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"github.com/gardener/siteforge/pkg/site"
	"k8s.io/klog/v2"
)

// FooterEntry is either a *FooterGroup or a *FooterLink
type FooterEntry interface {
	footerEntry()
}

// FooterGroup is a footer column in the framework configuration
type FooterGroup struct {
	Title string        `json:"title" yaml:"title"`
	Items []FooterEntry `json:"items" yaml:"items"`
}

// FooterLink is a footer link in the framework configuration.
// Exactly one of To and Href is set.
type FooterLink struct {
	Label string `json:"label" yaml:"label"`
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
}

func (*FooterGroup) footerEntry() {}

func (*FooterLink) footerEntry() {}

// ProjectFooterItem maps a footer item preserving the tree shape.
// A link with a page path (To) drops its Href. Nil and unknown
// items map to nil.
func ProjectFooterItem(item site.FooterItem) FooterEntry {
	switch it := item.(type) {
	case *site.FooterGroup:
		if it == nil {
			return nil
		}
		return &FooterGroup{
			Title: it.Title,
			Items: ProjectFooterItems(it.Items),
		}
	case *site.FooterLink:
		if it == nil {
			return nil
		}
		link := &FooterLink{Label: it.Label}
		if it.To != "" {
			link.To = PagePath(it.To)
		} else {
			link.Href = it.Href
		}
		return link
	case nil:
		return nil
	default:
		klog.Warningf("skipping unknown footer item type %T", item)
		return nil
	}
}

// ProjectFooterItems maps a list of footer items, skipping nil and
// unknown ones. The result is never nil so that groups always carry
// an items array.
func ProjectFooterItems(items site.FooterItems) []FooterEntry {
	out := make([]FooterEntry, 0, len(items))
	for _, item := range items {
		if entry := ProjectFooterItem(item); entry != nil {
			out = append(out, entry)
		}
	}
	return out
}

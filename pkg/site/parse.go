// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gardener/siteforge/pkg/osfakes/osshim"
)

// ErrNavbarMissing is returned when the descriptor has no navbar array
var ErrNavbarMissing = errors.New("site descriptor has no navbar")

// footerItemJSON is the wire shape shared by footer groups and links
type footerItemJSON struct {
	Title string      `json:"title"`
	Label string      `json:"label"`
	To    string      `json:"to"`
	Href  string      `json:"href"`
	Items FooterItems `json:"items"`
}

// UnmarshalJSON decodes every entry into a *FooterGroup when it has
// a non-empty title and into a *FooterLink otherwise
func (f *FooterItems) UnmarshalJSON(data []byte) error {
	var raw []footerItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	items := make(FooterItems, 0, len(raw))
	for _, r := range raw {
		if r.Title != "" {
			items = append(items, &FooterGroup{Title: r.Title, Items: r.Items})
			continue
		}
		items = append(items, &FooterLink{Label: r.Label, To: r.To, Href: r.Href})
	}
	*f = items
	return nil
}

// Parse decodes a site descriptor. A descriptor without a navbar
// array is rejected.
func Parse(data []byte) (*Descriptor, error) {
	var probe struct {
		Navbar json.RawMessage `json:"navbar"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("can't parse site descriptor: %w", err)
	}
	if len(probe.Navbar) == 0 || bytes.Equal(bytes.TrimSpace(probe.Navbar), []byte("null")) {
		return nil, ErrNavbarMissing
	}
	d := &Descriptor{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("can't parse site descriptor: %w", err)
	}
	return d, nil
}

// Load reads and parses the site descriptor at path
func Load(os osshim.Os, path string) (*Descriptor, error) {
	isDir, err := os.IsDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("site descriptor %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to get file info for site descriptor %s: %w", path, err)
	}
	if isDir {
		return nil, fmt.Errorf("site descriptor %s is a directory, instead of file", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read site descriptor %s: %w", path, err)
	}
	d, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import "fmt"

// NavItemVisitor is invoked for every navbar item. Nested is false
// only for top-level items.
type NavItemVisitor func(item *NavItem, nested bool) error

// FooterItemVisitor is invoked for every footer item with its depth,
// top-level items have depth 0
type FooterItemVisitor func(item FooterItem, depth int) error

// WalkNavbar visits the navbar items depth-first, parents before children
func WalkNavbar(items []NavItem, fn NavItemVisitor) error {
	return walkNavbar(items, false, fn)
}

func walkNavbar(items []NavItem, nested bool, fn NavItemVisitor) error {
	for i := range items {
		item := &items[i]
		if err := fn(item, nested); err != nil {
			return err
		}
		if err := walkNavbar(item.Items, true, fn); err != nil {
			return fmt.Errorf("navbar item %q -> %w", item.Label, err)
		}
	}
	return nil
}

// WalkFooter visits the footer items depth-first, groups before their items
func WalkFooter(items FooterItems, fn FooterItemVisitor) error {
	return walkFooter(items, 0, fn)
}

func walkFooter(items FooterItems, depth int, fn FooterItemVisitor) error {
	for _, item := range items {
		if err := fn(item, depth); err != nil {
			return err
		}
		group, ok := item.(*FooterGroup)
		if !ok || group == nil {
			continue
		}
		if err := walkFooter(group.Items, depth+1, fn); err != nil {
			return fmt.Errorf("footer group %q -> %w", group.Title, err)
		}
	}
	return nil
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkcheck

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gardener/siteforge/pkg/osfakes/osshim"
	"github.com/gardener/siteforge/pkg/projector"
	"github.com/gardener/siteforge/pkg/site"
	"github.com/hashicorp/go-multierror"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"k8s.io/klog/v2"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// Checker verifies that navbar doc links and footer page links
// resolve to documents under Root
type Checker struct {
	Os osshim.Os
	// Root is the directory doc and page links are relative to
	Root string
}

// BrokenLinkError reports a link that does not resolve
type BrokenLinkError struct {
	// Origin describes where the link is used
	Origin string
	Link   string
	Reason string
}

func (e *BrokenLinkError) Error() string {
	return fmt.Sprintf("%s links %s: %s", e.Origin, e.Link, e.Reason)
}

// Check walks the descriptor and returns all broken links aggregated
func (c *Checker) Check(d *site.Descriptor) error {
	var errs *multierror.Error
	_ = site.WalkNavbar(d.Navbar, func(item *site.NavItem, _ bool) error {
		if !item.HasDocTarget() {
			return nil
		}
		origin := fmt.Sprintf("navbar item %q", item.Label)
		if err := c.checkDoc(origin, item.DocLink); err != nil {
			errs = multierror.Append(errs, err)
		}
		return nil
	})
	if d.Footer != nil {
		_ = site.WalkFooter(d.Footer.Links, func(item site.FooterItem, _ int) error {
			link, ok := item.(*site.FooterLink)
			if !ok || link == nil || link.To == "" {
				return nil
			}
			origin := fmt.Sprintf("footer link %q", link.Label)
			if _, err := c.read(origin, link.To); err != nil {
				errs = multierror.Append(errs, err)
			}
			return nil
		})
	}
	return errs.ErrorOrNil()
}

func (c *Checker) checkDoc(origin, docLink string) error {
	content, err := c.read(origin, docLink)
	if err != nil {
		return err
	}
	fm, err := frontmatter(content)
	if err != nil {
		return &BrokenLinkError{Origin: origin, Link: docLink, Reason: fmt.Sprintf("invalid frontmatter: %v", err)}
	}
	id, ok := fm["id"]
	if !ok {
		return nil
	}
	docID := projector.DocID(docLink)
	// the framework routes a doc with explicit id by <dir>/<id>
	want := fmt.Sprintf("%v", id)
	if dir := path.Dir(docID); dir != "." {
		want = dir + "/" + want
	}
	if want != docID {
		return &BrokenLinkError{Origin: origin, Link: docLink, Reason: fmt.Sprintf("document id is %s, not %s", want, docID)}
	}
	klog.V(6).Infof("%s resolved to document %s\n", origin, docID)
	return nil
}

func (c *Checker) read(origin, link string) ([]byte, error) {
	// page routes start with a slash, documents are relative to Root
	rel := strings.TrimPrefix(link, "/")
	candidates := []string{rel}
	if projector.PagePath(rel) == rel {
		candidates = append(candidates, rel+".md", rel+".mdx", path.Join(rel, "index.md"), path.Join(rel, "index.mdx"))
	}
	for _, candidate := range candidates {
		p := filepath.Join(c.Root, filepath.FromSlash(candidate))
		isDir, err := c.Os.IsDir(p)
		if err != nil {
			if c.Os.IsNotExist(err) {
				continue
			}
			return nil, &BrokenLinkError{Origin: origin, Link: link, Reason: err.Error()}
		}
		if isDir {
			continue
		}
		content, err := c.Os.ReadFile(p)
		if err != nil {
			return nil, &BrokenLinkError{Origin: origin, Link: link, Reason: err.Error()}
		}
		return content, nil
	}
	return nil, &BrokenLinkError{Origin: origin, Link: link, Reason: fmt.Sprintf("no such document in %s", c.Root)}
}

func frontmatter(content []byte) (map[string]interface{}, error) {
	context := parser.NewContext()
	gmParser.Parser().Parse(text.NewReader(content), parser.WithContext(context))
	return meta.TryGet(context)
}

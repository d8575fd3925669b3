// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"regexp"
	"strings"
)

var markdownExt = regexp.MustCompile(`\.mdx?$`)

// PagePath strips a trailing .md or .mdx extension from a page path
func PagePath(rawPath string) string {
	return markdownExt.ReplaceAllString(rawPath, "")
}

// DocID converts a doc link into the identifier used by the doc routing
// of the site framework. The extension and the first path segment,
// the docs root, are dropped: docs/foo/bar.md -> foo/bar.
// A path without a separator has no identifier and yields "".
func DocID(rawPath string) string {
	segments := strings.Split(PagePath(rawPath), "/")
	return strings.Join(segments[1:], "/")
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Finding is a single validation result
type Finding struct {
	Severity Severity
	Message  string
}

// Severity of a validation finding
type Severity string

const (
	// SeverityError findings fail validation
	SeverityError Severity = "error"
	// SeverityWarning findings are logged only
	SeverityWarning Severity = "warning"
)

func (f Finding) Error() string {
	return f.Message
}

// Check inspects the descriptor and returns all findings in walk order.
// With strict, ambiguous navbar items are reported as errors.
func Check(d *Descriptor, strict bool) []Finding {
	var findings []Finding
	report := func(s Severity, format string, args ...interface{}) {
		findings = append(findings, Finding{Severity: s, Message: fmt.Sprintf(format, args...)})
	}
	_ = WalkNavbar(d.Navbar, func(item *NavItem, nested bool) error {
		if item.Label == "" {
			report(SeverityError, "navbar item without label")
		}
		switch item.Link {
		case "":
		case LinkExternal:
			if item.ExternalLink == "" {
				report(SeverityError, "navbar item %q links external but has no externalLink", item.Label)
			}
		case LinkDoc:
			if item.DocLink == "" {
				report(SeverityError, "navbar item %q links doc but has no docLink", item.Label)
			} else if !strings.Contains(item.DocLink, "/") {
				report(SeverityError, "navbar item %q docLink %s has no root segment", item.Label, item.DocLink)
			}
		default:
			report(SeverityError, "navbar item %q has unknown link type %q", item.Label, item.Link)
		}
		if item.IsDropdown() {
			if item.Link != "" {
				s := SeverityWarning
				if strict {
					s = SeverityError
				}
				report(s, "navbar item %q sets both link %q and items, it will be rendered as dropdown", item.Label, item.Link)
			}
			if len(item.Items) == 0 {
				report(SeverityWarning, "navbar dropdown %q has no items", item.Label)
			}
		}
		return nil
	})
	if d.Footer == nil {
		return findings
	}
	_ = WalkFooter(d.Footer.Links, func(item FooterItem, _ int) error {
		switch it := item.(type) {
		case *FooterGroup:
			if len(it.Items) == 0 {
				report(SeverityError, "footer group %q has no items", it.Title)
			}
		case *FooterLink:
			switch {
			case it.To == "" && it.Href == "":
				report(SeverityError, "footer link %q has neither to nor href", it.Label)
			case it.To != "" && it.Href != "":
				klog.V(1).Infof("footer link %q sets both to and href, href %s is ignored", it.Label, it.Href)
			}
		}
		return nil
	})
	return findings
}

// Validate checks the descriptor, logs warnings and returns all
// error findings aggregated
func Validate(d *Descriptor, strict bool) error {
	var errs *multierror.Error
	for _, f := range Check(d, strict) {
		if f.Severity == SeverityWarning {
			klog.Warning(f.Message)
			continue
		}
		errs = multierror.Append(errs, f)
	}
	return errs.ErrorOrNil()
}

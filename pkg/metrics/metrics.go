// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"time"

	"github.com/gardener/siteforge/pkg/site"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace of all siteforge metrics
const Namespace = "siteforge"

// Collector holds the metrics of one siteforge run
type Collector struct {
	registry *prometheus.Registry

	navbarItems        *prometheus.CounterVec
	footerItems        *prometheus.CounterVec
	validationFindings *prometheus.CounterVec
	buildDuration      prometheus.Gauge
}

// NewCollector creates a Collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		navbarItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "navbar_items_total",
			Help:      "A counter of projected navbar items by kind.",
		},
			[]string{"kind"},
		),
		footerItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "footer_items_total",
			Help:      "A counter of projected footer items by kind.",
		},
			[]string{"kind"},
		),
		validationFindings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "validation_findings_total",
			Help:      "A counter of site descriptor validation findings by severity.",
		},
			[]string{"severity"},
		),
		buildDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of the last configuration build.",
		}),
	}
	c.registry.MustRegister(c.navbarItems, c.footerItems, c.validationFindings, c.buildDuration)
	return c
}

// Registry exposes the registry for gathering
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Record counts the navbar and footer items of the descriptor by kind
func (c *Collector) Record(d *site.Descriptor) {
	_ = site.WalkNavbar(d.Navbar, func(item *site.NavItem, _ bool) error {
		c.navbarItems.WithLabelValues(string(item.Kind())).Inc()
		return nil
	})
	if d.Footer == nil {
		return
	}
	_ = site.WalkFooter(d.Footer.Links, func(item site.FooterItem, _ int) error {
		kind := "link"
		if _, ok := item.(*site.FooterGroup); ok {
			kind = "group"
		}
		c.footerItems.WithLabelValues(kind).Inc()
		return nil
	})
}

// RecordFindings counts validation findings by severity
func (c *Collector) RecordFindings(findings []site.Finding) {
	for _, f := range findings {
		c.validationFindings.WithLabelValues(string(f.Severity)).Inc()
	}
}

// ObserveBuild sets the build duration
func (c *Collector) ObserveBuild(d time.Duration) {
	c.buildDuration.Set(d.Seconds())
}

// WriteToTextfile writes the metrics in the text exposition format,
// suitable for the node exporter textfile collector
func (c *Collector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

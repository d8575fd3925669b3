// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/siteforge/cmd/configuration"
	"github.com/gardener/siteforge/pkg/osfakes/osshim"
	"github.com/gardener/siteforge/pkg/writers/writersfakes"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"
)

type loaderFunc func() (*configuration.Config, error)

func (f loaderFunc) Load() (*configuration.Config, error) {
	return f()
}

var _ = Describe("Exec", func() {
	var (
		ctx    context.Context
		o      options
		cfg    *configuration.Config
		stdout *bytes.Buffer
		writer *writersfakes.FakeWriter
		r      *runner
		err    error
	)
	BeforeEach(func() {
		ctx = context.Background()
		o = options{
			SitePath:          "testdata/index.json",
			Format:            "json",
			DestinationPath:   "out",
			OutputName:        "docusaurus.config",
			FailOnBrokenLinks: true,
		}
		cfg = &configuration.Config{}
		stdout = &bytes.Buffer{}
		writer = &writersfakes.FakeWriter{}
	})
	JustBeforeEach(func() {
		r = &runner{
			os: &osshim.OsShim{},
			loader: loaderFunc(func() (*configuration.Config, error) {
				return cfg, nil
			}),
			stdout: stdout,
			writer: writer,
		}
		err = r.run(ctx, o)
	})
	It("writes the projected configuration", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.WriteCallCount()).To(Equal(1))
		name, path, content := writer.WriteArgsForCall(0)
		Expect(name).To(Equal("docusaurus.config"))
		Expect(path).To(Equal(""))
		Expect(string(content)).To(ContainSubstring(`"title": "Gardener"`))
		Expect(string(content)).To(ContainSubstring(`"docId": "intro"`))
		Expect(string(content)).To(ContainSubstring(`"to": "docs/intro"`))
		Expect(stdout.Len()).To(Equal(0))
	})
	When("the format is unknown", func() {
		BeforeEach(func() {
			o.Format = "toml"
		})
		It("errors", func() {
			Expect(err).To(MatchError(ContainSubstring("unknown format 'toml'")))
			Expect(writer.WriteCallCount()).To(Equal(0))
		})
	})
	When("the site descriptor does not exist", func() {
		BeforeEach(func() {
			o.SitePath = "testdata/none.json"
		})
		It("errors", func() {
			Expect(err).To(MatchError(ContainSubstring("does not exist")))
		})
	})
	When("the configuration is invalid", func() {
		BeforeEach(func() {
			cfg = &configuration.Config{Theme: &configuration.Theme{OnBrokenLinks: pointer.String("explode")}}
		})
		It("errors", func() {
			Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
		})
	})
	When("theme flags are set", func() {
		BeforeEach(func() {
			cfg = &configuration.Config{Theme: &configuration.Theme{Favicon: pointer.String("img/config.ico")}}
			o.BaseURL = "/docs/"
			o.Locale = "de"
			o.AppID = "app"
			o.APIKey = "key"
		})
		It("overrides the configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			_, _, content := writer.WriteArgsForCall(0)
			Expect(string(content)).To(ContainSubstring(`"baseUrl": "/docs/"`))
			Expect(string(content)).To(ContainSubstring(`"favicon": "img/config.ico"`))
			Expect(string(content)).To(ContainSubstring(`"defaultLocale": "de"`))
			Expect(string(content)).To(ContainSubstring(`"appId": "app"`))
		})
	})
	When("links are checked", func() {
		BeforeEach(func() {
			o.DocsRoot = "testdata/website"
		})
		It("succeeds for resolvable links", func() {
			Expect(err).NotTo(HaveOccurred())
		})
		When("a link is broken", func() {
			BeforeEach(func() {
				o.SitePath = "testdata/broken.json"
			})
			It("errors", func() {
				Expect(err).To(MatchError(ContainSubstring("docs/missing.md")))
				Expect(writer.WriteCallCount()).To(Equal(0))
			})
			When("broken links should not fail", func() {
				BeforeEach(func() {
					o.FailOnBrokenLinks = false
				})
				It("writes the configuration", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(writer.WriteCallCount()).To(Equal(1))
				})
			})
		})
	})
	When("writing fails", func() {
		BeforeEach(func() {
			writer.WriteReturns(errors.New("disk full"))
		})
		It("errors", func() {
			Expect(err).To(MatchError("disk full"))
		})
	})
	When("dry-run", func() {
		BeforeEach(func() {
			o.DryRun = true
			o.MetricsFile = "metrics.prom"
		})
		It("prints the configuration and the files instead of writing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.WriteCallCount()).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring(`"title": "Gardener"`))
			Expect(stdout.String()).To(ContainSubstring("out\n  docusaurus.config.json ("))
			Expect(stdout.String()).To(ContainSubstring("Build finished in"))
			_, statErr := os.Stat("metrics.prom")
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})
	})
	When("a metrics file is set", func() {
		var dir string
		BeforeEach(func() {
			dir = filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
			Expect(os.MkdirAll(dir, os.ModePerm)).To(Succeed())
			o.MetricsFile = filepath.Join(dir, "siteforge.prom")
		})
		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})
		It("writes the metrics", func() {
			Expect(err).NotTo(HaveOccurred())
			content, readErr := os.ReadFile(o.MetricsFile)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring(`siteforge_navbar_items_total{kind="doc"} 1`))
			Expect(string(content)).To(ContainSubstring(`siteforge_footer_items_total{kind="link"} 2`))
		})
	})
})

var _ = Describe("Env file", func() {
	AfterEach(func() {
		Expect(os.Unsetenv("ALGOLIA_APP_ID")).To(Succeed())
	})
	It("ignores a missing file", func() {
		Expect(loadEnvFile("testdata/.env.missing")).To(Succeed())
	})
	It("loads variables", func() {
		Expect(loadEnvFile("testdata/env.local")).To(Succeed())
		Expect(os.Getenv("ALGOLIA_APP_ID")).To(Equal("from-env-file"))
	})
	It("keeps variables already set", func() {
		Expect(os.Setenv("ALGOLIA_APP_ID", "from-env")).To(Succeed())
		Expect(loadEnvFile("testdata/env.local")).To(Succeed())
		Expect(os.Getenv("ALGOLIA_APP_ID")).To(Equal("from-env"))
	})
})

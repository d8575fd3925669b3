// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration_test

import (
	"errors"
	"os"

	"github.com/gardener/siteforge/cmd/configuration"
	"github.com/gardener/siteforge/pkg/osfakes/osshim"
	"github.com/gardener/siteforge/pkg/osfakes/osshim/osshimfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"
)

var _ = Describe("Configuration Loader", func() {
	var (
		fakeOs *osshimfakes.FakeOs
		loader configuration.Loader
		cfg    *configuration.Config
		err    error
	)
	BeforeEach(func() {
		fakeOs = &osshimfakes.FakeOs{}
		fakeOs.UserHomeDirReturns("/home/bob", nil)
		fakeOs.IsNotExistCalls(os.IsNotExist)
		fakeOs.IsDirReturns(false, os.ErrNotExist)
		loader = &configuration.DefaultConfigurationLoader{Os: fakeOs}
	})
	JustBeforeEach(func() {
		cfg, err = loader.Load()
	})
	When("environment not set and no file in home dir", func() {
		It("creates empty configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&configuration.Config{}))
			Expect(fakeOs.IsDirArgsForCall(0)).To(Equal("/home/bob/.siteforge/config"))
		})
	})
	When("home dir cannot be determined", func() {
		BeforeEach(func() {
			fakeOs.UserHomeDirReturns("", errors.New("no home"))
		})
		It("errors", func() {
			Expect(err).To(MatchError(ContainSubstring("no home")))
			Expect(cfg).To(BeNil())
		})
	})
	When("configuration file name is empty", func() {
		BeforeEach(func() {
			fakeOs.LookupEnvReturns("", true)
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(configuration.SiteforgeConfigEnv))
			Expect(cfg).To(BeNil())
		})
	})
	When("configuration file name is directory", func() {
		BeforeEach(func() {
			fakeOs.LookupEnvReturns("testdata", true)
			fakeOs.IsDirReturns(true, nil)
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("directory"))
			Expect(cfg).To(BeNil())
		})
	})
	When("configuration file is valid", func() {
		BeforeEach(func() {
			loader = &configuration.DefaultConfigurationLoader{Os: &envOs{OsShim: osshim.OsShim{}, file: "testdata/config_full.yaml"}}
		})
		It("loads it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&configuration.Config{
				Defaults: &configuration.Defaults{
					Title:       pointer.String("Gardener Docs"),
					URL:         pointer.String("https://gardener.cloud/"),
					FooterStyle: pointer.String("light"),
				},
				Theme: &configuration.Theme{
					BaseURL:       pointer.String("/docs/"),
					Favicon:       pointer.String("img/gardener.ico"),
					DefaultLocale: pointer.String("de"),
					Locales:       []string{"de", "en"},
					EditPath:      pointer.String("/edit/"),
				},
			}))
		})
	})
	When("configuration file is malformed", func() {
		BeforeEach(func() {
			loader = &configuration.DefaultConfigurationLoader{Os: &envOs{OsShim: osshim.OsShim{}, file: "testdata/config_invalid.yaml"}}
		})
		It("errors", func() {
			Expect(err).To(MatchError(ContainSubstring("failed to parse configuration file testdata/config_invalid.yaml")))
			Expect(cfg).To(BeNil())
		})
	})
})

// envOs reads the real file system but resolves SITEFORGECONFIG to file
type envOs struct {
	osshim.OsShim
	file string
}

func (e *envOs) LookupEnv(key string) (string, bool) {
	if key == configuration.SiteforgeConfigEnv {
		return e.file, true
	}
	return "", false
}

// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/gardener/siteforge/cmd/configuration"
	"github.com/gardener/siteforge/pkg/linkcheck"
	"github.com/gardener/siteforge/pkg/metrics"
	"github.com/gardener/siteforge/pkg/osfakes/osshim"
	"github.com/gardener/siteforge/pkg/projector"
	"github.com/gardener/siteforge/pkg/site"
	"github.com/gardener/siteforge/pkg/writers"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, stdout io.Writer) error {
	if err := loadEnvFile(vip.GetString("env-file")); err != nil {
		return err
	}
	var o options
	if err := vip.Unmarshal(&o); err != nil {
		return err
	}
	shim := &osshim.OsShim{}
	r := &runner{
		os:     shim,
		loader: &configuration.DefaultConfigurationLoader{Os: shim},
		stdout: stdout,
	}
	return r.run(ctx, o)
}

// loadEnvFile adds the variables of an env file to the environment
// without overriding the ones already set
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			klog.V(1).Infof("env file %s not found", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	klog.Infof("Env file: %s", path)
	return nil
}

type runner struct {
	os     osshim.Os
	loader configuration.Loader
	stdout io.Writer
	// writer replaces the file system writer when set
	writer writers.Writer
}

func (r *runner) run(ctx context.Context, o options) error {
	start := time.Now()
	format, err := projector.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	projectorOptions, err := r.projectorOptions(o)
	if err != nil {
		return err
	}

	klog.Infof("Site descriptor: %s", o.SitePath)
	d, err := site.Load(r.os, o.SitePath)
	if err != nil {
		return err
	}
	collector := metrics.NewCollector()
	collector.RecordFindings(site.Check(d, o.Strict))
	if err := site.Validate(d, o.Strict); err != nil {
		return fmt.Errorf("invalid site descriptor %s: %w", o.SitePath, err)
	}
	if o.DocsRoot != "" {
		checker := &linkcheck.Checker{Os: r.os, Root: o.DocsRoot}
		if err := checker.Check(d); err != nil {
			if o.FailOnBrokenLinks {
				return err
			}
			klog.Warning(err)
		}
	}

	cfg := projector.Project(d, projectorOptions)
	collector.Record(d)
	content, err := projector.Encode(cfg, format, o.SitePath)
	if err != nil {
		return fmt.Errorf("failed to encode configuration as %s: %w", format, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var dryRun writers.DryRunWriter
	w := r.writer
	switch {
	case o.DryRun:
		dryRun = writers.NewDryRunWritersFactory(r.stdout)
		w = dryRun.GetWriter(o.DestinationPath, format.Ext())
		if _, err := r.stdout.Write(content); err != nil {
			return err
		}
	case w == nil:
		w = &writers.FSWriter{Root: o.DestinationPath, Ext: format.Ext()}
	}
	if err := w.Write(o.OutputName, "", content); err != nil {
		return err
	}
	klog.Infof("Output: %s/%s.%s", o.DestinationPath, o.OutputName, format.Ext())

	collector.ObserveBuild(time.Since(start))
	if o.MetricsFile != "" {
		if o.DryRun {
			klog.Infof("Metrics file %s is not written in dry-run", o.MetricsFile)
		} else if err := collector.WriteToTextfile(o.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", o.MetricsFile, err)
		}
	}
	if dryRun != nil {
		return dryRun.Flush()
	}
	return nil
}

// projectorOptions layers the built-in defaults, the configuration file,
// flag overrides and search credentials
func (r *runner) projectorOptions(o options) (projector.Options, error) {
	opts := projector.DefaultOptions()
	cfg, err := r.loader.Load()
	if err != nil {
		return opts, err
	}
	if err := cfg.Validate(); err != nil {
		return opts, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Apply(&opts)

	if o.BaseURL != "" {
		opts.Theme.BaseURL = o.BaseURL
	}
	if o.Favicon != "" {
		opts.Theme.Favicon = o.Favicon
	}
	if o.Locale != "" {
		opts.Theme.DefaultLocale = o.Locale
		if !contains(opts.Theme.Locales, o.Locale) {
			opts.Theme.Locales = append([]string{o.Locale}, opts.Theme.Locales...)
		}
	}
	if o.AppID == "" || o.APIKey == "" {
		klog.Warning("search credentials ALGOLIA_APP_ID or ALGOLIA_API_KEY are not set")
	}
	opts.Search = projector.Search{
		AppID:     o.AppID,
		APIKey:    o.APIKey,
		IndexName: o.IndexName,
	}
	return opts, nil
}

func contains(s []string, str string) bool {
	for _, e := range s {
		if e == str {
			return true
		}
	}
	return false
}

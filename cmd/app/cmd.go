// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"

	"github.com/gardener/siteforge/cmd/gendocs"
	"github.com/gardener/siteforge/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var vip *viper.Viper

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	vip = newViper()

	cmd := &cobra.Command{
		Use:   "siteforge",
		Short: "Forge a documentation site configuration",
		Long: `Reads a site descriptor with branding, navbar and footer and
projects it into the configuration of a Docusaurus documentation site.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}

	configureFlags(cmd)

	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klog.InitFlags(nil)
	AddFlags(cmd)

	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SITEFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.Flags().AddGoFlag(gf)
	})
}

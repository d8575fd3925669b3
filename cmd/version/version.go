// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set during compile time via -ldflags in the `go build` process.
var Version = "binary was not built properly"

// NewVersionCmd creates a version command printing
// the binary version
func NewVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "siteforge %s %s/%s %s\n", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print the platform and Go version as well.")
	return cmd
}

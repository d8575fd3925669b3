// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

// Format of the generated command reference
type Format string

const (
	// Markdown generates one markdown file per command
	Markdown Format = "md"
	// ManPages generates one man page per command
	ManPages Format = "man"
)

// ParseFormat returns the Format with the given name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case Markdown, ManPages:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", name, []Format{Markdown, ManPages})
}

// Generate writes the reference documentation of root and its
// subcommands to destination, creating it if necessary
func Generate(root *cobra.Command, format Format, destination string) error {
	destination = filepath.Clean(destination)
	if err := os.MkdirAll(destination, os.ModePerm); err != nil {
		return err
	}
	root.DisableAutoGenTag = true
	switch format {
	case ManPages:
		header := &doc.GenManHeader{
			Title:   "SITEFORGE",
			Manual:  "Siteforge Command Reference",
			Section: "1",
		}
		if err := doc.GenManTree(root, header, destination); err != nil {
			return fmt.Errorf("failed to generate man pages in %s: %w", destination, err)
		}
	default:
		if err := doc.GenMarkdownTree(root, destination); err != nil {
			return fmt.Errorf("failed to generate markdown in %s: %w", destination, err)
		}
	}
	klog.Infof("Command reference: %s", destination)
	return nil
}

// NewGenCmdDocs generates commands reference documentation
func NewGenCmdDocs() *cobra.Command {
	var format, destination string
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ParseFormat(format)
			if err != nil {
				return err
			}
			return Generate(cmd.Root(), f, destination)
		},
	}
	command.Flags().StringVarP(&format, "format", "f", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}

// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func Cmd(reg *registry.Registry) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// the manifest is optional here, listing works outside a project
			var manifest *projectmanifest.Manifest
			if projectmanifest.Exists(".") {
				m, err := projectmanifest.Load(".")
				if err != nil {
					return err
				}
				manifest = m
			}

			cmd.Println(color.New(color.FgCyan, color.Bold).Sprint("Available components:"))
			cmd.Println()
			cmd.Println(render(reg, manifest, verbose))
			cmd.Println()
			cmd.Printf("Run %s to add a component\n", color.CyanString("gpui-ui add <component>"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed component information")

	return cmd
}

func render(reg *registry.Registry, manifest *projectmanifest.Manifest, verbose bool) string {
	installedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faint := lipgloss.NewStyle().Faint(true)

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(lo.Map(reg.Components(), func(c *registry.Definition, _ int) []string {
			installed := ""
			if manifest != nil {
				if record, ok := manifest.Installed(c.Name); ok {
					installed = installedStyle.Render("✓ " + record.Version)
				}
			}

			row := []string{"▸", c.Name, c.Version, installed}
			if verbose {
				row = append(row, faint.Render(c.Description))
			}
			return row
		})...).
		String()
}

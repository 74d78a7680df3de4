// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/installer"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/gpui-kit/gpui-ui/pkg/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func Cmd(reg *registry.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [<component>...]",
		Short: "check installed components for available updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			manifest, err := projectmanifest.Load(".")
			if err != nil {
				if projectmanifest.Exists(".") {
					return err
				}
				return fmt.Errorf("%w. Run 'gpui-ui init' first", projectmanifest.ErrNotInitialized)
			}

			statuses := installer.New(reg, utils.QuietPrinter{}).CheckUpdates(manifest, args)
			if len(statuses) == 0 {
				cmd.Println("No components installed yet. Run 'gpui-ui add <component>' first.")
				return nil
			}

			cmd.Println(color.New(color.FgCyan, color.Bold).Sprint("Checking for updates..."))
			cmd.Println()
			cmd.Println(render(statuses))

			outdated := lo.Filter(statuses, func(s installer.UpdateStatus, _ int) bool {
				return s.State == installer.UpdateAvailable
			})
			if len(outdated) > 0 {
				names := lo.Map(outdated, func(s installer.UpdateStatus, _ int) string { return s.Name })
				cmd.Println()
				cmd.Printf("Run %s to apply updates\n",
					color.CyanString("gpui-ui add --force %s", strings.Join(names, " ")))
			}
			return nil
		},
	}

	return cmd
}

func render(statuses []installer.UpdateStatus) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(lo.Map(statuses, func(s installer.UpdateStatus, _ int) []string {
			return []string{s.Name, s.InstalledVersion, s.RegistryVersion, renderState(s.State)}
		})...).
		String()
}

func renderState(state installer.UpdateState) string {
	switch state {
	case installer.UpToDate:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("up to date")
	case installer.UpdateAvailable:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Render("update available")
	case installer.NotInstalled:
		return lipgloss.NewStyle().Faint(true).Italic(true).Render("not installed")
	case installer.NotInRegistry:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("not in registry")
	}
	return string(state)
}

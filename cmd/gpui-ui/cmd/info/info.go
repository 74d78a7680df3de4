// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package info

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/spf13/cobra"
)

func Cmd(reg *registry.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <component>",
		Short: "show information about a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// unlike add/update, a miss here is fatal: there is exactly one
			// target and nothing else to report on
			comp, err := reg.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w. Run 'gpui-ui list' to see available components", err)
			}

			bold := color.New(color.Bold)
			cmd.Println(color.New(color.FgCyan, color.Bold).Sprintf("Component: %s", comp.Name))
			cmd.Println()
			cmd.Println(bold.Sprint("Description:"))
			cmd.Printf("  %s\n", comp.Description)
			cmd.Println()
			cmd.Println(bold.Sprint("Version:"))
			cmd.Printf("  %s\n", comp.Version)
			cmd.Println()
			cmd.Println(bold.Sprint("Files:"))
			for _, f := range comp.Files {
				cmd.Printf("  %s\n", f)
			}
			cmd.Println()
			cmd.Println(bold.Sprint("Dependencies:"))
			if len(comp.Dependencies) == 0 {
				cmd.Println("  None")
			} else {
				cmd.Printf("  %s\n", strings.Join(comp.Dependencies, ", "))
			}

			if projectmanifest.Exists(".") {
				manifest, err := projectmanifest.Load(".")
				if err != nil {
					return err
				}
				cmd.Println()
				cmd.Println(bold.Sprint("Installed:"))
				if record, ok := manifest.Installed(comp.Name); ok {
					cmd.Printf("  %s (version %s, installed %s)\n", color.GreenString("yes"), record.Version, record.InstalledAt)
				} else {
					cmd.Println("  no")
				}
			}
			return nil
		},
	}

	return cmd
}

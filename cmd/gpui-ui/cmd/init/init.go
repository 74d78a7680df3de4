// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package initcmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/utils"
	"github.com/spf13/cobra"
)

func Cmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "initialize gpui-ui in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.Println(color.New(color.FgCyan, color.Bold).Sprint("Initializing gpui-ui..."))

			if projectmanifest.Exists(".") {
				return fmt.Errorf("%w. Use 'gpui-ui add' to add components", projectmanifest.ErrAlreadyInitialized)
			}

			if !yes {
				ok, err := confirm(cmd)
				if err != nil {
					return err
				}
				if !ok {
					cmd.Println(color.YellowString("Initialization cancelled."))
					return nil
				}
			}

			manifest := projectmanifest.CreateDefault(".")
			if err := manifest.Save(); err != nil {
				return err
			}

			if err := utils.EnsureDirs(manifest.ComponentPath); err != nil {
				return err
			}

			cmd.Println(color.GreenString("✓ Created %s", projectmanifest.ManifestFileName))
			cmd.Println(color.GreenString("✓ Created %s directory", manifest.ComponentPath))
			cmd.Println()
			cmd.Println("Next steps:")
			cmd.Printf("  1. Run %s to see available components\n", color.CyanString("gpui-ui list"))
			cmd.Printf("  2. Run %s to add components\n", color.CyanString("gpui-ui add <component>"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompts")

	return cmd
}

func confirm(cmd *cobra.Command) (bool, error) {
	cmd.Printf("This will create a %s file in the current directory. Continue? [y/N] ", projectmanifest.ManifestFileName)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

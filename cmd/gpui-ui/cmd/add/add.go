// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package add

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/installer"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/gpui-kit/gpui-ui/pkg/sourcetree"
	"github.com/gpui-kit/gpui-ui/pkg/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func Cmd(reg *registry.Registry) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add <component>...",
		Short: "add components (and their dependencies) to your project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("specify at least one component to add. Run 'gpui-ui list' to see available components")
			}
			cmd.SilenceUsage = true

			manifest, err := projectmanifest.Load(".")
			if err != nil {
				if projectmanifest.Exists(".") {
					return err
				}
				return fmt.Errorf("%w. Run 'gpui-ui init' first", projectmanifest.ErrNotInitialized)
			}

			sourceDir, err := sourcetree.Dir()
			if err != nil {
				return fmt.Errorf("locating component sources: %w", err)
			}

			cmd.Println(color.New(color.FgCyan, color.Bold).Sprint("Adding components..."))
			cmd.Println()

			inst := installer.New(reg, cmd)
			bar := progressbar.NewOptions(inst.ClosureFileCount(args),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("    copying"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			report, err := inst.Install(manifest, installer.Options{
				SourceRoot: sourceDir,
				DestRoot:   utils.ResolvePath(manifest.Dir(), manifest.ComponentPath),
				Names:      args,
				Force:      force,
				Progress:   bar,
			})
			_ = bar.Finish()
			if err != nil {
				return err
			}

			cmd.Println()
			cmd.Println(color.New(color.FgGreen, color.Bold).Sprint("Done!"))

			if added := report.Added(); len(added) > 0 {
				cmd.Println()
				cmd.Println("Components added:")
				for _, name := range added {
					cmd.Printf("  %s %s\n", color.CyanString("▸"), name)
				}
			}

			cmd.Println()
			cmd.Println("Next steps:")
			cmd.Println("  1. Import components in your code:")
			cmd.Printf("     %s\n", color.New(color.Faint).Sprint("mod components;"))
			cmd.Println("  2. Use the components in your GPUI app:")
			cmd.Printf("     %s\n", color.New(color.Faint).Sprint("use components::ui::Button;"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")

	return cmd
}

// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"fmt"

	"github.com/gpui-kit/gpui-ui/pkg/cliversion"
	"github.com/spf13/cobra"
)

func Cmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "show the gpui-ui CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := cliversion.Get()

			switch output {
			case "text":
				cmd.Println(info.Version)
			case "json":
				data, err := json.MarshalIndent(info, "", "    ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			default:
				return fmt.Errorf("output format not supported: %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: json, text")

	return cmd
}

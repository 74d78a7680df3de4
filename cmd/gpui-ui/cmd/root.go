// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/add"
	"github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/info"
	initcmd "github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/init"
	"github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/list"
	"github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/update"
	"github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd/version"
	"github.com/gpui-kit/gpui-ui/pkg/logging"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/spf13/cobra"
)

const CliName = "gpui-ui"

func RootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   CliName,
		Short: "manage gpui-ui components in your project",
	}

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	reg, err := registry.Embedded()
	if err != nil {
		return nil, err
	}

	cmd.AddCommand(
		initcmd.Cmd(),
		add.Cmd(reg),
		list.Cmd(reg),
		update.Cmd(reg),
		info.Cmd(reg),
		version.Cmd(),
	)

	return cmd, nil
}

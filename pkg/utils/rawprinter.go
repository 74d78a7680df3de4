// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"github.com/spf13/cobra"
)

type RawPrinter interface {
	Print(i ...interface{})
	Println(i ...interface{})
	Printf(format string, i ...interface{})
	PrintErr(i ...interface{})
	PrintErrln(i ...interface{})
	PrintErrf(format string, i ...interface{})
}

// QuietPrinter discards everything. Useful in tests.
type QuietPrinter struct{}

func (q QuietPrinter) Print(i ...interface{})                 {}
func (q QuietPrinter) Println(i ...interface{})               {}
func (q QuietPrinter) Printf(format string, i ...interface{}) {}
func (q QuietPrinter) PrintErr(i ...interface{})              {}
func (q QuietPrinter) PrintErrln(i ...interface{})            {}
func (q QuietPrinter) PrintErrf(format string, i ...interface{}) {
}

var _ RawPrinter = (*QuietPrinter)(nil)
var _ RawPrinter = (*cobra.Command)(nil)

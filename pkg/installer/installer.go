// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/gpui-kit/gpui-ui/pkg/resolver"
	"github.com/gpui-kit/gpui-ui/pkg/utils"
	"github.com/samber/lo"
)

// Progress receives one increment per staged file. Satisfied by
// progressbar.ProgressBar; nil disables progress reporting.
type Progress interface {
	Add(num int) error
}

type Options struct {
	// SourceRoot is the bundled component source directory.
	SourceRoot string
	// DestRoot is the manifest-declared component install directory.
	DestRoot string
	// Names are the requested components. Each is installed independently,
	// failures don't abort the rest of the batch.
	Names []string
	// Force re-copies files whose destination already exists.
	Force bool

	Progress Progress
}

type Installer struct {
	reg     *registry.Registry
	printer utils.RawPrinter
}

func New(reg *registry.Registry, printer utils.RawPrinter) *Installer {
	return &Installer{reg: reg, printer: printer}
}

// Install stages every requested component (plus transitive dependencies)
// from SourceRoot into DestRoot and records newly installed components in
// the manifest. The manifest is saved once, after the whole batch.
//
// Installing the same components twice without Force is a no-op: no files
// are copied and no records are appended.
func (i *Installer) Install(m *projectmanifest.Manifest, opts Options) (*Report, error) {
	report := &Report{}

	for _, name := range opts.Names {
		report.Components = append(report.Components, i.installOne(m, name, opts))
	}

	if err := m.Save(); err != nil {
		return report, fmt.Errorf("persisting manifest after install: %w", err)
	}
	return report, nil
}

func (i *Installer) installOne(m *projectmanifest.Manifest, name string, opts Options) *ComponentResult {
	res := &ComponentResult{Name: name}

	comp, err := i.reg.Get(name)
	if err != nil {
		res.Err = err
		i.printer.Printf("  %s Component %q not found. Run 'gpui-ui list' to see available components.\n",
			color.RedString("✗"), name)
		return res
	}

	i.printer.Printf("  %s Adding %s\n", color.CyanString("→"), color.New(color.Bold).Sprint(comp.Name))

	closure, err := resolver.Closure(i.reg, name)
	if err != nil {
		res.Err = err
		i.printer.Printf("  %s %s\n", color.RedString("✗"), err.Error())
		return res
	}

	for _, member := range closure {
		c, err := i.reg.Get(member)
		if err != nil {
			// closure members come from the registry, this cannot happen
			res.Err = err
			return res
		}

		i.stageFiles(res, c, name, opts)

		if !m.IsInstalled(member) && !lo.Contains(res.NewlyInstalled, member) {
			res.NewlyInstalled = append(res.NewlyInstalled, member)
		}
	}

	// dependencies are staged but only the requested component gets a record
	if !m.IsInstalled(name) {
		m.RecordInstall(name, comp.Version)
		res.Recorded = true
	}

	i.printer.Printf("    %s %s installed successfully\n", color.GreenString("✓"), comp.Name)
	return res
}

func (i *Installer) stageFiles(res *ComponentResult, c *registry.Definition, requested string, opts Options) {
	for _, f := range c.Files {
		src := filepath.Join(opts.SourceRoot, f)
		dst := filepath.Join(opts.DestRoot, f)

		if !utils.FileExists(src) {
			res.MissingSources = append(res.MissingSources, f)
			i.printer.Printf("    %s Source file not found: %s\n", color.YellowString("⚠"), src)
			i.bump(opts)
			continue
		}

		if utils.FileExists(dst) && !opts.Force {
			res.Skipped = append(res.Skipped, f)
			// only notify for the component the user asked for, skipped
			// shared dependency files would be noise
			if c.Name == requested {
				res.SkipNotices = append(res.SkipNotices, f)
				i.printer.Printf("    %s %s already exists (skipping, use --force to overwrite)\n",
					color.YellowString("⚠"), f)
			}
			i.bump(opts)
			continue
		}

		if err := utils.CopyFile(src, dst); err != nil {
			res.FileErrors = append(res.FileErrors, fmt.Errorf("copying %s: %w", f, err))
			i.printer.Printf("    %s failed to copy %s: %s\n", color.RedString("✗"), f, err.Error())
			i.bump(opts)
			continue
		}

		res.Copied = append(res.Copied, f)
		i.bump(opts)
	}
}

func (i *Installer) bump(opts Options) {
	if opts.Progress != nil {
		_ = opts.Progress.Add(1)
	}
}

// ClosureFileCount returns the number of files the closures of the given
// components declare, counting shared files once per closure member. Lookup
// and resolution failures contribute zero; Install reports them properly.
func (i *Installer) ClosureFileCount(names []string) int {
	total := 0
	for _, name := range names {
		closure, err := resolver.Closure(i.reg, name)
		if err != nil {
			continue
		}
		for _, member := range closure {
			if c, err := i.reg.Get(member); err == nil {
				total += len(c.Files)
			}
		}
	}
	return total
}

// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gpui-kit/gpui-ui/pkg/installer"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/gpui-kit/gpui-ui/pkg/testutil"
	"github.com/gpui-kit/gpui-ui/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	inst     *installer.Installer
	manifest *projectmanifest.Manifest
	opts     installer.Options
}

func setup(t *testing.T) *fixture {
	t.Helper()

	reg := testutil.MustRegistry(t,
		&registry.Definition{Name: "button", Version: "0.1.0", Files: []string{"button.rs"}, Dependencies: []string{"traits"}},
		&registry.Definition{Name: "card", Version: "0.1.0", Files: []string{"card.rs"}},
		&registry.Definition{Name: "traits", Version: "0.1.0", Files: []string{"traits.rs"}, Reserved: true},
		&registry.Definition{Name: "gallery", Version: "0.1.0", Files: []string{"gallery.rs", "missing.rs"}},
	)

	source := testutil.SourceTree(t, map[string]string{
		"button.rs":  "pub struct Button;",
		"card.rs":    "pub struct Card;",
		"traits.rs":  "pub trait Clickable {}",
		"gallery.rs": "pub struct Gallery;",
		// gallery's missing.rs is deliberately absent
	})

	projectDir := t.TempDir()
	manifest := projectmanifest.CreateDefault(projectDir)
	require.NoError(t, manifest.Save())

	return &fixture{
		inst:     installer.New(reg, utils.QuietPrinter{}),
		manifest: manifest,
		opts: installer.Options{
			SourceRoot: source,
			DestRoot:   filepath.Join(projectDir, manifest.ComponentPath),
		},
	}
}

func (f *fixture) install(t *testing.T, names ...string) *installer.Report {
	t.Helper()
	opts := f.opts
	opts.Names = names
	report, err := f.inst.Install(f.manifest, opts)
	require.NoError(t, err)
	return report
}

func (f *fixture) destContent(t *testing.T, file string) string {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join(f.opts.DestRoot, file))
	require.NoError(t, err)
	return string(contents)
}

func TestInstallStagesDependencies(t *testing.T) {
	f := setup(t)

	report := f.install(t, "button")

	assert.Equal(t, "pub struct Button;", f.destContent(t, "button.rs"))
	assert.Equal(t, "pub trait Clickable {}", f.destContent(t, "traits.rs"))

	require.Len(t, report.Components, 1)
	res := report.Components[0]
	assert.NoError(t, res.Err)
	assert.True(t, res.Recorded)
	assert.ElementsMatch(t, []string{"traits.rs", "button.rs"}, res.Copied)
	assert.Equal(t, []string{"traits", "button"}, res.NewlyInstalled)

	// only the requested component gets a manifest record
	assert.True(t, f.manifest.IsInstalled("button"))
	assert.False(t, f.manifest.IsInstalled("traits"))

	// the batch persisted the manifest
	persisted, err := projectmanifest.Load(f.manifest.Dir())
	require.NoError(t, err)
	assert.True(t, persisted.IsInstalled("button"))
}

func TestInstallIsIdempotent(t *testing.T) {
	f := setup(t)

	first := f.install(t, "button")
	assert.Equal(t, 2, first.TotalCopied())

	second := f.install(t, "button")
	assert.Zero(t, second.TotalCopied())
	assert.Len(t, f.manifest.Components, 1)

	res := second.Components[0]
	assert.False(t, res.Recorded)
	assert.ElementsMatch(t, []string{"traits.rs", "button.rs"}, res.Skipped)
}

func TestForceAlwaysCopies(t *testing.T) {
	f := setup(t)

	f.install(t, "button")
	require.NoError(t, os.WriteFile(filepath.Join(f.opts.DestRoot, "button.rs"), []byte("local edits"), 0644))

	f.opts.Force = true
	report := f.install(t, "button")

	assert.Equal(t, 2, report.TotalCopied())
	assert.Equal(t, "pub struct Button;", f.destContent(t, "button.rs"))
}

func TestMissingSourceFileDegradesGracefully(t *testing.T) {
	f := setup(t)

	report := f.install(t, "gallery")

	res := report.Components[0]
	assert.NoError(t, res.Err)
	assert.Equal(t, []string{"missing.rs"}, res.MissingSources)
	assert.Equal(t, []string{"gallery.rs"}, res.Copied)

	// the component is still recorded despite the missing file
	assert.True(t, res.Recorded)
	assert.True(t, f.manifest.IsInstalled("gallery"))
}

func TestBatchIsBestEffort(t *testing.T) {
	f := setup(t)

	report := f.install(t, "tooltip", "card")

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "tooltip", failed[0].Name)
	assert.ErrorIs(t, failed[0].Err, registry.ErrComponentNotFound)

	assert.Equal(t, "pub struct Card;", f.destContent(t, "card.rs"))
	assert.True(t, f.manifest.IsInstalled("card"))
	assert.False(t, f.manifest.IsInstalled("tooltip"))
}

func TestSkipNoticeOnlyForRequestedComponent(t *testing.T) {
	f := setup(t)

	require.NoError(t, utils.EnsureDirs(f.opts.DestRoot))
	require.NoError(t, os.WriteFile(filepath.Join(f.opts.DestRoot, "traits.rs"), []byte("already here"), 0644))

	report := f.install(t, "button")
	res := report.Components[0]

	// the dependency's file is skipped quietly
	assert.Equal(t, []string{"traits.rs"}, res.Skipped)
	assert.Empty(t, res.SkipNotices)

	// but skipping the requested component's own file is called out
	again := f.install(t, "button")
	assert.Contains(t, again.Components[0].SkipNotices, "button.rs")
}

type countingProgress struct {
	n int
}

func (c *countingProgress) Add(num int) error {
	c.n += num
	return nil
}

func TestProgressCoversEveryClosureFile(t *testing.T) {
	f := setup(t)

	assert.Equal(t, 2, f.inst.ClosureFileCount([]string{"button"}))
	assert.Zero(t, f.inst.ClosureFileCount([]string{"tooltip"}))

	progress := &countingProgress{}
	f.opts.Progress = progress
	f.install(t, "button")
	assert.Equal(t, 2, progress.n)
}

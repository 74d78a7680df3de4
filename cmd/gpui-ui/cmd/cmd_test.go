// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gpui "github.com/gpui-kit/gpui-ui/cmd/gpui-ui/cmd"
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/gpui-kit/gpui-ui/pkg/sourcetree"
	"github.com/gpui-kit/gpui-ui/pkg/testutil"
	"github.com/stretchr/testify/suite"
)

type CliSuite struct {
	testutil.ProjectSuite
}

func TestCliSuite(t *testing.T) {
	suite.Run(t, new(CliSuite))
}

func (s *CliSuite) SetupTest() {
	s.ProjectSuite.SetupTest()

	// the embedded registry's components, staged into a fake bundled tree
	source := testutil.SourceTree(s.T(), map[string]string{
		"button.rs":   "pub struct Button;",
		"input.rs":    "pub struct Input;",
		"card.rs":     "pub struct Card;",
		"dialog.rs":   "pub struct Dialog;",
		"checkbox.rs": "pub struct Checkbox;",
		"badge.rs":    "pub struct Badge;",
		"traits.rs":   "pub trait Clickable {}",
		"prelude.rs":  "pub use crate::traits::*;",
	})
	s.T().Setenv(sourcetree.ComponentsDirEnvVar, source)
}

func (s *CliSuite) run(args ...string) (string, error) {
	return s.runWithInput(nil, args...)
}

func (s *CliSuite) runWithInput(stdin io.Reader, args ...string) (string, error) {
	cmd, err := gpui.RootCmd()
	s.Require().NoError(err)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), err
}

func (s *CliSuite) TestInitCreatesManifest() {
	out, err := s.run("init", "--yes")
	s.Require().NoError(err)
	s.Contains(out, "Created "+projectmanifest.ManifestFileName)

	s.True(projectmanifest.Exists("."))
	s.DirExists(projectmanifest.DefaultComponentPath)

	// a second init must refuse
	_, err = s.run("init", "--yes")
	s.ErrorIs(err, projectmanifest.ErrAlreadyInitialized)
}

func (s *CliSuite) TestInitDeclined() {
	out, err := s.runWithInput(strings.NewReader("n\n"), "init")
	s.Require().NoError(err)
	s.Contains(out, "cancelled")
	s.False(projectmanifest.Exists("."))
}

func (s *CliSuite) TestAddRequiresInit() {
	_, err := s.run("add", "button")
	s.ErrorIs(err, projectmanifest.ErrNotInitialized)
}

func (s *CliSuite) TestAddInstallsComponentAndDependencies() {
	_, err := s.run("init", "--yes")
	s.Require().NoError(err)

	out, err := s.run("add", "button")
	s.Require().NoError(err)
	s.Contains(out, "button installed successfully")

	s.FileExists(filepath.Join(projectmanifest.DefaultComponentPath, "button.rs"))
	s.FileExists(filepath.Join(projectmanifest.DefaultComponentPath, "traits.rs"))

	manifest, err := projectmanifest.Load(".")
	s.Require().NoError(err)
	s.True(manifest.IsInstalled("button"))
	s.False(manifest.IsInstalled("traits"))
}

func (s *CliSuite) TestAddUnknownComponentReportsButExitsClean() {
	_, err := s.run("init", "--yes")
	s.Require().NoError(err)

	// batch commands report per-item failures without failing the command
	out, err := s.run("add", "tooltip", "card")
	s.Require().NoError(err)
	s.Contains(out, "not found")
	s.Contains(out, "card installed successfully")
}

func (s *CliSuite) TestAddForceOverwritesLocalEdits() {
	_, err := s.run("init", "--yes")
	s.Require().NoError(err)
	_, err = s.run("add", "card")
	s.Require().NoError(err)

	target := filepath.Join(projectmanifest.DefaultComponentPath, "card.rs")
	s.Require().NoError(os.WriteFile(target, []byte("local edits"), 0644))

	_, err = s.run("add", "--force", "card")
	s.Require().NoError(err)

	contents, err := os.ReadFile(target)
	s.Require().NoError(err)
	s.Equal("pub struct Card;", string(contents))
}

func (s *CliSuite) TestListExcludesReservedComponents() {
	out, err := s.run("list")
	s.Require().NoError(err)
	s.Contains(out, "button")
	s.Contains(out, "badge")
	s.NotContains(out, "traits")
	s.NotContains(out, "prelude")
}

func (s *CliSuite) TestUpdateReportsUpToDate() {
	_, err := s.run("init", "--yes")
	s.Require().NoError(err)
	_, err = s.run("add", "badge")
	s.Require().NoError(err)

	out, err := s.run("update")
	s.Require().NoError(err)
	s.Contains(out, "badge")
	s.Contains(out, "up to date")
}

func (s *CliSuite) TestUpdateUnknownNameDoesNotAbort() {
	_, err := s.run("init", "--yes")
	s.Require().NoError(err)

	out, err := s.run("update", "tooltip")
	s.Require().NoError(err)
	s.Contains(out, "not installed")
}

func (s *CliSuite) TestInfoShowsComponentDetails() {
	out, err := s.run("info", "dialog")
	s.Require().NoError(err)
	s.Contains(out, "Modal dialog with overlay")
	s.Contains(out, "dialog.rs")
}

func (s *CliSuite) TestInfoUnknownComponentFails() {
	_, err := s.run("info", "ghost")
	s.Error(err)
}

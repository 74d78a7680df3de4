// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// WriteFiles creates the given relative-path -> content files under root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), os.ModePerm))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// SourceTree scaffolds a temporary component source directory.
func SourceTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteFiles(t, root, files)
	return root
}

// MustRegistry builds a registry from literal definitions, failing the test
// on validation errors.
func MustRegistry(t *testing.T, defs ...*registry.Definition) *registry.Registry {
	t.Helper()
	reg, err := registry.New(defs)
	require.NoError(t, err)
	return reg
}

// ProjectSuite runs every test inside a fresh temporary project directory,
// so commands operating on the working directory don't see each other's
// manifests.
type ProjectSuite struct {
	suite.Suite
}

func (s *ProjectSuite) SetupTest() {
	t := s.T()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sourcetree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gpui-kit/gpui-ui/pkg/utils"
)

// ComponentsDirEnvVar overrides source tree discovery. Mostly useful for
// tests and packaged installs where the sources don't sit next to the binary.
const ComponentsDirEnvVar = "GPUI_UI_COMPONENTS_DIR"

var ErrSourceTreeNotFound = fmt.Errorf("could not locate the bundled component sources (looked for a components/src directory)")

// Dir locates the directory holding the bundled component source files.
// The env var override wins; otherwise the search walks up from the
// executable's directory looking for components/src.
func Dir() (string, error) {
	if p, ok := os.LookupEnv(ComponentsDirEnvVar); ok && p != "" {
		exists, err := utils.DirExists(p)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("%s points at %q which is not a directory", ComponentsDirEnvVar, p)
		}
		return filepath.Clean(p), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("determining executable path: %w", err)
	}

	dir := filepath.Dir(exe)
	for {
		candidate := filepath.Join(dir, "components", "src")
		exists, err := utils.DirExists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrSourceTreeNotFound
		}
		dir = parent
	}
}

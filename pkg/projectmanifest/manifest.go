// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package projectmanifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
)

// ManifestFileName is the well-known manifest file. Its presence in a
// directory is the sole "this project is initialized" signal.
const ManifestFileName = "gpui-ui.json"

var (
	ErrNotInitialized     = fmt.Errorf("gpui-ui is not initialized in this directory")
	ErrAlreadyInitialized = fmt.Errorf("%s already exists in this directory", ManifestFileName)
	ErrInvalidManifest    = fmt.Errorf("invalid %s", ManifestFileName)
)

const (
	DefaultComponentPath = "src/components/ui"
	DefaultUtilsPath     = "src/lib"
	DefaultGpuiVersion   = "0.2.1"
	DefaultRadius        = "px(4.0)"
)

// Manifest is the persisted per-project state: install paths, style
// configuration and the record of installed components. It is loaded at the
// start of a command, threaded through as a value and saved once at the end.
type Manifest struct {
	ComponentPath string               `json:"component_path"`
	UtilsPath     string               `json:"utils_path"`
	GpuiVersion   string               `json:"gpui_version"`
	Style         StyleConfig          `json:"style"`
	Components    []InstalledComponent `json:"components"`

	dir string
}

// StyleConfig carries visual defaults for generated components. The CLI
// treats it as an opaque passthrough.
type StyleConfig struct {
	Colors ColorConfig `json:"colors"`
	Radius string      `json:"radius"`
}

type ColorConfig struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Destructive string `json:"destructive"`
	Muted       string `json:"muted"`
	Accent      string `json:"accent"`
}

type InstalledComponent struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	InstalledAt string `json:"installed_at"`
}

func defaultColors() ColorConfig {
	return ColorConfig{
		Primary:     "rgb(0x3b82f6)",
		Secondary:   "rgb(0x64748b)",
		Destructive: "rgb(0xef4444)",
		Muted:       "rgb(0xf1f5f9)",
		Accent:      "rgb(0xf0f9ff)",
	}
}

// CreateDefault returns a fresh in-memory manifest for the given project
// directory. The caller decides whether to Save it.
func CreateDefault(dir string) *Manifest {
	return &Manifest{
		ComponentPath: DefaultComponentPath,
		UtilsPath:     DefaultUtilsPath,
		GpuiVersion:   DefaultGpuiVersion,
		Style: StyleConfig{
			Colors: defaultColors(),
			Radius: DefaultRadius,
		},
		dir: dir,
	}
}

// Exists probes for the manifest file without reading it.
func Exists(dir string) bool {
	s, err := os.Stat(filepath.Join(dir, ManifestFileName))
	return err == nil && !s.IsDir()
}

// Load reads and parses the manifest from the given project directory.
// Optional fields absent from the file (manifests written by older versions)
// are filled with their defaults.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	m.dir = dir
	m.applyDefaults()
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.ComponentPath == "" {
		m.ComponentPath = DefaultComponentPath
	}
	if m.UtilsPath == "" {
		m.UtilsPath = DefaultUtilsPath
	}
	if m.GpuiVersion == "" {
		m.GpuiVersion = DefaultGpuiVersion
	}
	if m.Style.Radius == "" {
		m.Style.Radius = DefaultRadius
	}

	defaults := defaultColors()
	if m.Style.Colors.Primary == "" {
		m.Style.Colors.Primary = defaults.Primary
	}
	if m.Style.Colors.Secondary == "" {
		m.Style.Colors.Secondary = defaults.Secondary
	}
	if m.Style.Colors.Destructive == "" {
		m.Style.Colors.Destructive = defaults.Destructive
	}
	if m.Style.Colors.Muted == "" {
		m.Style.Colors.Muted = defaults.Muted
	}
	if m.Style.Colors.Accent == "" {
		m.Style.Colors.Accent = defaults.Accent
	}
}

// Path returns the manifest file location.
func (m *Manifest) Path() string {
	return filepath.Join(m.dir, ManifestFileName)
}

// Dir returns the project directory the manifest belongs to.
func (m *Manifest) Dir() string {
	return m.dir
}

// Save writes the manifest pretty-printed. The content is staged in a
// temporary file and renamed over the target, so a failed save leaves any
// prior manifest untouched.
func (m *Manifest) Save() error {
	contents, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", ManifestFileName, err)
	}

	tmp, err := os.CreateTemp(m.dir, ".gpui-ui-*.json")
	if err != nil {
		return fmt.Errorf("writing %s: %w", m.Path(), err)
	}

	if _, err := tmp.Write(append(contents, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", m.Path(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", m.Path(), err)
	}

	if err := os.Rename(tmp.Name(), m.Path()); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", m.Path(), err)
	}
	return nil
}

// RecordInstall appends an installed-component record with the current
// timestamp. It does not deduplicate; callers check IsInstalled first.
func (m *Manifest) RecordInstall(name, version string) {
	m.Components = append(m.Components, InstalledComponent{
		Name:        name,
		Version:     version,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (m *Manifest) IsInstalled(name string) bool {
	_, ok := m.Installed(name)
	return ok
}

// Installed returns the install record for the given component name, if any.
func (m *Manifest) Installed(name string) (InstalledComponent, bool) {
	return lo.Find(m.Components, func(c InstalledComponent) bool {
		return c.Name == name
	})
}

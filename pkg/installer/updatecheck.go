// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"github.com/gpui-kit/gpui-ui/pkg/projectmanifest"
	"github.com/samber/lo"
)

type UpdateState string

const (
	// UpToDate means installed and registry versions are equal.
	UpToDate UpdateState = "up-to-date"
	// UpdateAvailable means the versions differ. Versions are opaque
	// strings, inequality is the whole comparison.
	UpdateAvailable UpdateState = "update-available"
	// NotInstalled means the component was requested explicitly but has no
	// manifest record.
	NotInstalled UpdateState = "not-installed"
	// NotInRegistry means the manifest records a component the registry no
	// longer knows.
	NotInRegistry UpdateState = "not-in-registry"
)

type UpdateStatus struct {
	Name             string
	InstalledVersion string
	RegistryVersion  string
	State            UpdateState
}

// CheckUpdates compares installed component versions against the registry.
// With no names given, every installed component is checked, in manifest
// order. Purely advisory: neither the manifest nor the filesystem is
// touched; applying an update is a re-install with overwrite.
func (i *Installer) CheckUpdates(m *projectmanifest.Manifest, names []string) []UpdateStatus {
	if len(names) == 0 {
		names = lo.Map(m.Components, func(c projectmanifest.InstalledComponent, _ int) string {
			return c.Name
		})
	}

	return lo.Map(names, func(name string, _ int) UpdateStatus {
		status := UpdateStatus{Name: name}

		if comp, err := i.reg.Get(name); err == nil {
			status.RegistryVersion = comp.Version
		}

		installed, ok := m.Installed(name)
		if !ok {
			status.State = NotInstalled
			return status
		}
		status.InstalledVersion = installed.Version

		switch {
		case status.RegistryVersion == "":
			status.State = NotInRegistry
		case status.InstalledVersion == status.RegistryVersion:
			status.State = UpToDate
		default:
			status.State = UpdateAvailable
		}
		return status
	})
}

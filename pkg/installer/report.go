// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"github.com/samber/lo"
)

// Report describes the outcome of one Install batch, one entry per
// requested component.
type Report struct {
	Components []*ComponentResult
}

// ComponentResult covers a requested component and its whole closure.
// File slices hold paths relative to the component source root.
type ComponentResult struct {
	Name string

	// Err is set when the lookup or dependency resolution failed; no files
	// were staged in that case.
	Err error

	Copied         []string
	Skipped        []string
	SkipNotices    []string
	MissingSources []string
	FileErrors     []error

	// NewlyInstalled lists closure members that were absent from the
	// manifest when this component was processed.
	NewlyInstalled []string
	// Recorded is true when an install record was appended for this
	// component.
	Recorded bool
}

func (r *Report) Failed() []*ComponentResult {
	return lo.Filter(r.Components, func(c *ComponentResult, _ int) bool {
		return c.Err != nil
	})
}

func (r *Report) TotalCopied() int {
	return lo.SumBy(r.Components, func(c *ComponentResult) int {
		return len(c.Copied)
	})
}

// Added returns the names of components newly installed by the batch, in
// first-seen order without duplicates.
func (r *Report) Added() []string {
	var added []string
	for _, c := range r.Components {
		added = append(added, c.NewlyInstalled...)
	}
	return lo.Uniq(added)
}

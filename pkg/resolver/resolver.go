// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"

	"github.com/gpui-kit/gpui-ui/pkg/registry"
	"github.com/gpui-kit/gpui-ui/pkg/utils/stringset"
)

// Closure returns the given component plus all of its transitive
// dependencies, dependencies first, each name exactly once. The requested
// component is always the last element.
//
// The traversal is a post-order walk over an explicit frame stack instead of
// recursion, so closure depth is not bounded by the call stack. A name is
// appended only after every one of its dependencies has been appended, which
// keeps dependencies strictly before their dependents even when siblings
// share a dependency. Dependencies of a component are visited in declared
// order. Registries are validated to be acyclic on construction, the seen
// set here only deduplicates diamond-shaped graphs.
func Closure(reg *registry.Registry, root string) ([]string, error) {
	type frame struct {
		name string
		deps []string
		next int
	}

	c, err := reg.Get(root)
	if err != nil {
		return nil, fmt.Errorf("resolving dependencies of %q: %w", root, err)
	}

	seen := make(stringset.StringSet).Add(root)
	stack := []*frame{{name: root, deps: c.Dependencies}}
	var order []string

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.deps) {
			dep := top.deps[top.next]
			top.next++

			if seen.Contains(dep) {
				continue
			}

			d, err := reg.Get(dep)
			if err != nil {
				return nil, fmt.Errorf("resolving dependencies of %q: %w", root, err)
			}

			seen.Add(dep)
			stack = append(stack, &frame{name: dep, deps: d.Dependencies})
			continue
		}

		// all dependencies emitted, the component itself may follow
		order = append(order, top.name)
		stack = stack[:len(stack)-1]
	}

	return order, nil
}

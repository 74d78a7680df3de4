// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/gpui-kit/gpui-ui/pkg/registry/definitions"
	"github.com/gpui-kit/gpui-ui/pkg/schema"
	"github.com/samber/lo"
)

var (
	ErrInvalidRegistry    = fmt.Errorf("invalid component registry")
	ErrMissingField       = fmt.Errorf("%w: a required field is missing", ErrInvalidRegistry)
	ErrComponentNotFound  = fmt.Errorf("component not found")
	ErrUnknownDependency  = fmt.Errorf("%w: unknown dependency", ErrInvalidRegistry)
	ErrCyclicDependency   = fmt.Errorf("%w: cyclic dependency", ErrInvalidRegistry)
	ErrDuplicateComponent = fmt.Errorf("%w: duplicate component", ErrInvalidRegistry)
)

const (
	RegistryKind          = "ComponentRegistry"
	RegistrySchemaVersion = "v1"
	RegistryAPIVersion    = schema.APIGroup + "/" + RegistrySchemaVersion
)

type Document struct {
	schema.ManifestMeta `yaml:",inline"`
	Spec                *Spec `yaml:"spec"`
}

type Spec struct {
	Components []*Definition `yaml:"components"`
}

// Definition describes a single distributable component: its identity, the
// files belonging to it (relative to the bundled source root) and the names
// of the components it depends on. Reserved entries are installable as
// dependencies but hidden from user-facing listings.
type Definition struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Version      string   `yaml:"version"`
	Files        []string `yaml:"files"`
	Dependencies []string `yaml:"dependencies"`
	Reserved     bool     `yaml:"reserved"`
}

func (d *Definition) UnmarshalYAML(data []byte) error {
	type Alias Definition
	alias := Alias{}
	if err := yaml.UnmarshalWithOptions(data, &alias, yaml.Strict()); err != nil {
		return err
	}
	if alias.Name == "" {
		return fmt.Errorf("%w: 'name'", ErrMissingField)
	}
	if alias.Version == "" {
		return fmt.Errorf("%w: 'version' of component %q", ErrMissingField, alias.Name)
	}
	if len(alias.Files) == 0 {
		return fmt.Errorf("%w: 'files' of component %q", ErrMissingField, alias.Name)
	}
	*d = Definition(alias)
	return nil
}

var _ yaml.BytesUnmarshaler = (*Definition)(nil)

// Registry is the immutable in-memory component catalog. It is built once at
// process start and validated on construction; lookups never mutate it.
type Registry struct {
	components map[string]*Definition
}

// New builds a registry from the given definitions, enforcing unique names,
// a closed dependency universe and the absence of dependency cycles.
func New(defs []*Definition) (*Registry, error) {
	components := make(map[string]*Definition, len(defs))
	for _, d := range defs {
		if _, ok := components[d.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, d.Name)
		}
		if _, err := semver.NewVersion(d.Version); err != nil {
			return nil, fmt.Errorf("%w: component %q has malformed version %q", ErrInvalidRegistry, d.Name, d.Version)
		}
		components[d.Name] = d
	}

	for _, d := range defs {
		for _, dep := range d.Dependencies {
			if _, ok := components[dep]; !ok {
				return nil, fmt.Errorf("%w: %q (required by %q)", ErrUnknownDependency, dep, d.Name)
			}
		}
	}

	if cycle := findCycle(components); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCyclicDependency, strings.Join(cycle, " -> "))
	}

	return &Registry{components: components}, nil
}

// Embedded builds the registry from the definition table bundled into the
// binary.
func Embedded() (*Registry, error) {
	return FromDocument(definitions.ComponentsYaml)
}

func FromDocument(contents []byte) (*Registry, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(contents, &doc, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrInvalidRegistry, err)
	}

	s := schema.ManifestMeta{
		APIVersion: RegistryAPIVersion,
		Kind:       RegistryKind,
	}
	if err := s.ValidateSchema(doc.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegistry, err.Error())
	}

	if doc.Spec == nil {
		return nil, fmt.Errorf("%w: 'spec'", ErrMissingField)
	}

	return New(doc.Spec.Components)
}

// Get returns the definition for the given component name.
func (r *Registry) Get(name string) (*Definition, error) {
	d, ok := r.components[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return d, nil
}

// Components returns all user-facing components sorted by name. Reserved
// entries are excluded.
func (r *Registry) Components() []*Definition {
	visible := lo.Filter(lo.Values(r.components), func(d *Definition, _ int) bool {
		return !d.Reserved
	})
	slices.SortFunc(visible, func(a, b *Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return visible
}

// All returns every component including reserved ones, sorted by name.
func (r *Registry) All() []*Definition {
	all := lo.Values(r.components)
	slices.SortFunc(all, func(a, b *Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return all
}

// findCycle runs an iterative depth-first traversal over the dependency
// edges and returns the first cycle it finds as a name path, or nil.
func findCycle(components map[string]*Definition) []string {
	const (
		white = iota // unvisited
		gray         // on the current path
		black        // fully explored
	)

	colors := make(map[string]int, len(components))

	type frame struct {
		name string
		next int
	}

	roots := lo.Keys(components)
	slices.Sort(roots)

	for _, root := range roots {
		if colors[root] != white {
			continue
		}

		stack := []*frame{{name: root}}
		colors[root] = gray

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			deps := components[top.name].Dependencies

			if top.next >= len(deps) {
				colors[top.name] = black
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			switch colors[dep] {
			case white:
				colors[dep] = gray
				stack = append(stack, &frame{name: dep})
			case gray:
				start := slices.IndexFunc(stack, func(f *frame) bool { return f.name == dep })
				cycle := lo.Map(stack[start:], func(f *frame, _ int) string { return f.name })
				return append(cycle, dep)
			}
		}
	}

	return nil
}

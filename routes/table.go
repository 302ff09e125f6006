// Copyright 2025 The Versioner Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routes

import (
	"sort"
	"strings"

	"github.com/versioner-dev/versioner/version"
)

// Table is the frozen route table. It is built once by
// Builder.Build and never mutated, so it is shared across request
// goroutines without locking.
type Table struct {
	exact     map[string][]Spec // "METHOD /path" for templates without parameters
	wildcards []wildcardRoute
	format    version.Format
	versions  []version.Version
	specs     []Spec
}

type wildcardRoute struct {
	method   string
	segments []string
	specs    []Spec
}

func newTable(specs []Spec, format version.Format) *Table {
	t := &Table{
		exact:  make(map[string][]Spec),
		format: format,
	}

	byRoute := make(map[string][]Spec)
	var routeOrder []string
	for _, spec := range specs {
		key := spec.Method + " " + spec.PathTemplate
		if _, seen := byRoute[key]; !seen {
			routeOrder = append(routeOrder, key)
		}
		byRoute[key] = append(byRoute[key], spec)
	}

	distinct := make(map[string]version.Version)
	for _, key := range routeOrder {
		group := byRoute[key]
		sort.SliceStable(group, func(i, j int) bool {
			c, err := group[i].Version.Compare(group[j].Version)
			return err == nil && c < 0
		})

		for _, spec := range group {
			distinct[spec.Version.String()] = spec.Version
		}
		t.specs = append(t.specs, group...)

		first := group[0]
		if strings.Contains(first.PathTemplate, "{") {
			t.wildcards = append(t.wildcards, wildcardRoute{
				method:   first.Method,
				segments: strings.Split(strings.TrimPrefix(first.PathTemplate, "/"), "/"),
				specs:    group,
			})
			continue
		}
		t.exact[key] = group
	}

	for _, v := range distinct {
		t.versions = append(t.versions, v)
	}
	version.Sort(t.versions)

	return t
}

// Format returns the version format shared by every registered
// version.
func (t *Table) Format() version.Format { return t.format }

// Lookup returns all version variants registered for a path and
// method, in ascending version order. The path must already have its
// version segment stripped. It fails with *RouteNotFoundError when
// the route is unknown under every version.
func (t *Table) Lookup(path, method string) ([]Spec, error) {
	path = normalizePath(path)
	method = strings.ToUpper(method)

	if specs, ok := t.exact[method+" "+path]; ok {
		return specs, nil
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for _, route := range t.wildcards {
		if route.method == method && matchSegments(route.segments, segments) {
			return route.specs, nil
		}
	}

	return nil, &RouteNotFoundError{Path: path, Method: method}
}

// LookupExact returns the variant of a route registered under one
// specific version. It fails with *RouteNotFoundError when the route
// is unknown and *VersionNotFoundError when the route exists but not
// under v.
func (t *Table) LookupExact(path, method string, v version.Version) (Spec, error) {
	specs, err := t.Lookup(path, method)
	if err != nil {
		return Spec{}, err
	}

	key := v.String()
	for _, spec := range specs {
		if spec.Version.String() == key {
			return spec, nil
		}
	}

	return Spec{}, &VersionNotFoundError{Path: normalizePath(path), Method: strings.ToUpper(method), Version: v}
}

// Versions returns every distinct registered version in ascending
// order. The returned slice must not be modified.
func (t *Table) Versions() []version.Version {
	return t.versions
}

// Latest returns the highest registered version.
func (t *Table) Latest() (version.Version, bool) {
	if len(t.versions) == 0 {
		return version.Version{}, false
	}
	return t.versions[len(t.versions)-1], true
}

// Routes returns every registered spec, grouped by route and sorted
// by version within each group, for the discovery document. The
// returned slice must not be modified.
func (t *Table) Routes() []Spec {
	return t.specs
}

// matchSegments matches a concrete path against template segments.
// A "{name}" template segment matches any single non-empty segment.
func matchSegments(template, path []string) bool {
	if len(template) != len(path) {
		return false
	}
	for i, seg := range template {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return true
}

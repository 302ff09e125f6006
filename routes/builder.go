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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/version"
)

// Spec binds one (path, method, version) triple to a handler plus
// optional deprecation metadata.
type Spec struct {
	// PathTemplate is the route path without a version prefix.
	// Segments of the form {name} match any single path segment.
	PathTemplate string

	// Method is the uppercase HTTP method.
	Method string

	// Version identifies this variant of the endpoint.
	Version version.Version

	// Handler serves requests resolved to this variant.
	Handler http.Handler

	// Deprecation is the lifecycle metadata, nil for active versions.
	Deprecation *deprecation.Info
}

// EndpointOption attaches optional metadata to an endpoint
// registration.
type EndpointOption func(*Spec) error

// WithDeprecation marks the endpoint version as deprecated. Applying
// it twice to one registration is a configuration error caught at
// Build time.
func WithDeprecation(info *deprecation.Info) EndpointOption {
	return func(s *Spec) error {
		if s.Deprecation != nil {
			return fmt.Errorf("deprecation set twice for %s %s version %s",
				s.Method, s.PathTemplate, s.Version)
		}
		s.Deprecation = info
		return nil
	}
}

// Builder accumulates endpoint registrations and validates them into
// an immutable Table. All registration happens on one goroutine
// during startup.
type Builder struct {
	specs []Spec
	errs  []error
}

// NewBuilder creates an empty route table builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Endpoint registers a handler for one (path, method, version)
// triple. Registration problems are collected and reported together
// by Build, so a startup sequence reads as a flat list of Endpoint
// calls.
func (b *Builder) Endpoint(pathTemplate, method string, v version.Version, handler http.Handler, opts ...EndpointOption) *Builder {
	spec := Spec{
		PathTemplate: normalizePath(pathTemplate),
		Method:       strings.ToUpper(strings.TrimSpace(method)),
		Version:      v,
		Handler:      handler,
	}

	if spec.Method == "" {
		b.errs = append(b.errs, fmt.Errorf("empty method for %s", spec.PathTemplate))
	}
	if handler == nil {
		b.errs = append(b.errs, fmt.Errorf("nil handler for %s %s version %s", spec.Method, spec.PathTemplate, v))
	}
	for _, opt := range opts {
		if err := opt(&spec); err != nil {
			b.errs = append(b.errs, err)
		}
	}

	b.specs = append(b.specs, spec)
	return b
}

// Build validates the accumulated registrations and freezes them
// into a Table. It fails on any registration error, duplicate
// (path, method, version) triples, or versions of mixed formats.
func (b *Builder) Build() (*Table, error) {
	errs := append([]error(nil), b.errs...)

	if len(b.specs) == 0 {
		errs = append(errs, fmt.Errorf("no endpoints registered"))
	}

	var format version.Format
	seen := make(map[string]struct{}, len(b.specs))
	for i, spec := range b.specs {
		if i == 0 {
			format = spec.Version.Format()
		} else if spec.Version.Format() != format {
			errs = append(errs, fmt.Errorf("mixed version formats: %s %s version %s is %s but the table is %s",
				spec.Method, spec.PathTemplate, spec.Version, spec.Version.Format(), format))
		}

		key := spec.Method + " " + spec.PathTemplate + " " + spec.Version.String()
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("duplicate registration for %s %s version %s",
				spec.Method, spec.PathTemplate, spec.Version))
		}
		seen[key] = struct{}{}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid route table: %w", errors.Join(errs...))
	}

	return newTable(b.specs, format), nil
}

// normalizePath ensures a leading slash and strips a trailing one
// (except for the root path).
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, "/")
}

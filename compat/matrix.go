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

package compat

import (
	"fmt"
	"net/http"

	"github.com/versioner-dev/versioner/version"
)

// UnsupportedVersionError reports that a requested version could not
// be served: it is not available, no direct fallback is available,
// and no servable default exists.
type UnsupportedVersionError struct {
	Requested version.Version
	Available []version.Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("version %s is not supported; available versions: %v",
		e.Requested, version.Strings(e.Available))
}

// HTTPStatus marks the error as a client error at the boundary.
func (e *UnsupportedVersionError) HTTPStatus() int { return http.StatusBadRequest }

// Code returns the machine-readable error code.
func (e *UnsupportedVersionError) Code() string { return "unsupported-version" }

// Details lists the versions a client could retry with.
func (e *UnsupportedVersionError) Details() any {
	return map[string]any{
		"requested": e.Requested.String(),
		"available": version.Strings(e.Available),
	}
}

// Matrix is a compatibility matrix: for each version, the ordered
// list of versions that may serve requests for it.
//
// Build the matrix at startup with Add; it must not be mutated after
// being handed to an engine.
type Matrix struct {
	entries map[string][]version.Version
}

// NewMatrix creates an empty compatibility matrix.
func NewMatrix() *Matrix {
	return &Matrix{entries: make(map[string][]version.Version)}
}

// Add registers fallbacks for a version, appended after any earlier
// entry for the same version. Order is preference order: earlier
// fallbacks are tried first. Returns the matrix for chaining.
func (m *Matrix) Add(from version.Version, fallbacks ...version.Version) *Matrix {
	key := from.String()
	m.entries[key] = append(m.entries[key], fallbacks...)
	return m
}

// Fallbacks returns the registered fallback list for v, in
// preference order. The returned slice must not be modified.
func (m *Matrix) Fallbacks(v version.Version) []version.Version {
	return m.entries[v.String()]
}

// Len returns the number of versions with at least one fallback.
func (m *Matrix) Len() int {
	return len(m.entries)
}

// Negotiate selects the version that will serve a request for
// requested, given the set of available versions.
//
// Selection order:
//  1. requested itself, when available;
//  2. the first available fallback in requested's direct entry;
//  3. def, when non-nil and available.
//
// When none applies, Negotiate returns *UnsupportedVersionError.
// Only requested's own entry is consulted; fallback entries are
// never chained.
func (m *Matrix) Negotiate(requested version.Version, available []version.Version, def *version.Version) (version.Version, error) {
	if contains(available, requested) {
		return requested, nil
	}

	for _, fb := range m.Fallbacks(requested) {
		if contains(available, fb) {
			return fb, nil
		}
	}

	if def != nil && contains(available, *def) {
		return *def, nil
	}

	return version.Version{}, &UnsupportedVersionError{
		Requested: requested,
		Available: available,
	}
}

// contains matches by canonical string, so the comparison is exact
// even across incomparable formats.
func contains(versions []version.Version, v version.Version) bool {
	key := v.String()
	for _, candidate := range versions {
		if candidate.String() == key {
			return true
		}
	}
	return false
}

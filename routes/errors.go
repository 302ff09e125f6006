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
	"fmt"
	"net/http"

	"github.com/versioner-dev/versioner/version"
)

// RouteNotFoundError reports that no handler is registered for a
// path and method under any version.
type RouteNotFoundError struct {
	Path   string
	Method string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route registered for %s %s", e.Method, e.Path)
}

// HTTPStatus marks the error as not-found at the boundary.
func (e *RouteNotFoundError) HTTPStatus() int { return http.StatusNotFound }

// Code returns the machine-readable error code.
func (e *RouteNotFoundError) Code() string { return "route-not-found" }

// VersionNotFoundError reports that a path and method exist but not
// under the requested version.
type VersionNotFoundError struct {
	Path    string
	Method  string
	Version version.Version
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("%s %s is not registered for version %s", e.Method, e.Path, e.Version)
}

// HTTPStatus marks the error as not-found at the boundary.
func (e *VersionNotFoundError) HTTPStatus() int { return http.StatusNotFound }

// Code returns the machine-readable error code.
func (e *VersionNotFoundError) Code() string { return "version-not-found" }

// Details identifies the missing version.
func (e *VersionNotFoundError) Details() any {
	return map[string]any{
		"path":    e.Path,
		"method":  e.Method,
		"version": e.Version.String(),
	}
}

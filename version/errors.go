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

package version

import (
	"fmt"
	"net/http"
)

// InvalidVersionError reports a version token that matched a
// strategy's pattern structurally but failed the format grammar.
// It is always surfaced to the caller, never silently defaulted.
type InvalidVersionError struct {
	Raw    string
	Format Format
	Reason string
}

func (e *InvalidVersionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s version %q: %s", e.Format, e.Raw, e.Reason)
	}
	return fmt.Sprintf("invalid %s version %q", e.Format, e.Raw)
}

// HTTPStatus marks the error as a client error at the boundary.
func (e *InvalidVersionError) HTTPStatus() int { return http.StatusBadRequest }

// Code returns the machine-readable error code.
func (e *InvalidVersionError) Code() string { return "invalid-version" }

// Details exposes the rejected token and expected format.
func (e *InvalidVersionError) Details() any {
	return map[string]any{
		"version": e.Raw,
		"format":  e.Format.String(),
	}
}

// IncomparableVersionError reports an attempt to order versions of
// different formats. This is a configuration error: route tables and
// compatibility matrices are validated at startup so a well-formed
// deployment never sees it per request.
type IncomparableVersionError struct {
	A, B Version
}

func (e *IncomparableVersionError) Error() string {
	return fmt.Sprintf("cannot compare %s version %q with %s version %q",
		e.A.Format(), e.A.String(), e.B.Format(), e.B.String())
}

// HTTPStatus marks the error as a server error at the boundary.
func (e *IncomparableVersionError) HTTPStatus() int { return http.StatusInternalServerError }

// Code returns the machine-readable error code.
func (e *IncomparableVersionError) Code() string { return "incomparable-versions" }

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

package versioner

import (
	"fmt"
	"net/http"

	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/version"
)

// SunsetError reports that a request resolved to a retired version
// while strict sunset enforcement is on.
type SunsetError struct {
	Version version.Version
	Info    *deprecation.Info
}

func (e *SunsetError) Error() string {
	msg := fmt.Sprintf("version %s has been sunset", e.Version)
	if e.Info != nil && e.Info.Replacement != "" {
		msg += fmt.Sprintf("; use version %s instead", e.Info.Replacement)
	}
	return msg
}

// HTTPStatus maps retired versions to 410 Gone.
func (e *SunsetError) HTTPStatus() int { return http.StatusGone }

// Code returns the machine-readable error code.
func (e *SunsetError) Code() string { return "version-sunset" }

// Details names the replacement version, when one exists.
func (e *SunsetError) Details() any {
	d := map[string]any{"version": e.Version.String()}
	if e.Info != nil {
		if e.Info.Replacement != "" {
			d["replacement"] = e.Info.Replacement
		}
		if !e.Info.SunsetDate.IsZero() {
			d["sunset_date"] = e.Info.SunsetDate.UTC().Format("2006-01-02")
		}
	}
	return d
}

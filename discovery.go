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
	"encoding/json"
	"net/http"

	"github.com/versioner-dev/versioner/deprecation"
)

// DiscoveryDocument enumerates the API's versions and their
// lifecycle state, for clients planning migrations.
type DiscoveryDocument struct {
	DefaultVersion string             `json:"default_version,omitempty"`
	Strategies     []string           `json:"strategies"`
	Versions       []DiscoveryVersion `json:"versions"`
}

// DiscoveryVersion describes one registered version.
type DiscoveryVersion struct {
	Version      string                `json:"version"`
	IsDeprecated bool                  `json:"is_deprecated"`
	IsSunset     bool                  `json:"is_sunset"`
	Deprecation  *DiscoveryDeprecation `json:"deprecation,omitempty"`
}

// DiscoveryDeprecation carries the lifecycle metadata of a
// deprecated version.
type DiscoveryDeprecation struct {
	SunsetDate     string `json:"sunset_date,omitempty"`
	Replacement    string `json:"replacement,omitempty"`
	Reason         string `json:"reason,omitempty"`
	MigrationGuide string `json:"migration_guide,omitempty"`
}

// Discovery builds the discovery document. Lifecycle flags are
// evaluated against the current time, so the document reflects
// sunset transitions without a restart. A version deprecated on any
// route is reported deprecated.
func (e *Engine) Discovery() DiscoveryDocument {
	doc := DiscoveryDocument{
		Strategies: e.resolver.Names(),
	}
	if def, ok := e.resolver.Default(); ok {
		doc.DefaultVersion = def.String()
	}

	// First deprecation info seen per version wins; registrations
	// normally attach identical metadata to every route of a version.
	infoByVersion := make(map[string]*deprecation.Info)
	for _, spec := range e.table.Routes() {
		key := spec.Version.String()
		if spec.Deprecation != nil && infoByVersion[key] == nil {
			infoByVersion[key] = spec.Deprecation
		}
	}

	now := e.clock()
	for _, v := range e.table.Versions() {
		entry := DiscoveryVersion{Version: v.String()}

		if info := infoByVersion[v.String()]; info != nil {
			outcome := deprecation.Evaluate(info, now, e.headerNames)
			entry.IsDeprecated = true
			entry.IsSunset = outcome.Status == deprecation.StatusSunset
			entry.Deprecation = &DiscoveryDeprecation{
				Replacement:    info.Replacement,
				Reason:         info.Reason,
				MigrationGuide: info.MigrationGuide,
			}
			if !info.SunsetDate.IsZero() {
				entry.Deprecation.SunsetDate = info.SunsetDate.UTC().Format("2006-01-02")
			}
		}

		doc.Versions = append(doc.Versions, entry)
	}

	return doc
}

// DiscoveryHandler serves the discovery document as JSON, typically
// mounted at /versions.
func (e *Engine) DiscoveryHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(e.Discovery())
	})
}

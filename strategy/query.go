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

package strategy

// QueryParam extracts a version token from a query parameter. A list
// of alternative parameter names is consulted in order; the first
// parameter carrying a non-empty value wins.
type QueryParam struct {
	names []string
}

// NewQueryParam creates a query parameter extraction strategy for
// the given primary parameter name plus optional alternatives.
func NewQueryParam(name string, alternatives ...string) *QueryParam {
	return &QueryParam{names: append([]string{name}, alternatives...)}
}

// Name implements Strategy.
func (s *QueryParam) Name() string { return KindQueryParam }

// Extract implements Strategy.
func (s *QueryParam) Extract(view RequestView) (string, bool) {
	for _, name := range s.names {
		if value := view.QueryParam(name); value != "" {
			return value, true
		}
	}
	return "", false
}

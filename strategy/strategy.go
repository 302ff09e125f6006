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

// Strategy extracts a raw version token from one facet of a request.
//
// Implementations must be pure and safe for concurrent use. A return
// of ("", false) means the facet carried no token; it is never an
// error. Tokens are validated against the version format by the
// Resolver, not by the strategy.
type Strategy interface {
	Extract(view RequestView) (token string, ok bool)

	// Name identifies the extraction method for observability and the
	// discovery document ("path", "header", "query", "accept",
	// "composite").
	Name() string
}

// Known strategy kind names, as used in configuration files and in
// Resolution.Source.
const (
	KindURLPath      = "path"
	KindHeader       = "header"
	KindQueryParam   = "query"
	KindAcceptHeader = "accept"
	KindComposite    = "composite"

	// SourceDefault marks a resolution that fell back to the
	// configured default version because no strategy matched.
	SourceDefault = "default"
)

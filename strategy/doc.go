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

// Package strategy extracts raw version tokens from HTTP requests and
// resolves them into versions.
//
// A Strategy inspects one facet of a request (URL path, header, query
// parameter, Accept header) and either produces a raw token or
// reports no match. Strategies are pure: they never mutate the
// request, and absence of a token is not an error.
//
// The Resolver evaluates strategies in ascending priority order and
// short-circuits on the first token found. This gives callers a
// single deterministic precedence order rather than a voting scheme:
//
//	res, err := strategy.NewResolver(
//	    strategy.WithFormat(version.FormatSimple),
//	    strategy.WithStrategy(1, strategy.NewHeader("X-API-Version")),
//	    strategy.WithStrategy(2, strategy.NewURLPath()),
//	    strategy.WithDefault(version.MustParse("1.0", version.FormatSimple)),
//	)
package strategy

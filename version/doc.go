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

// Package version provides the immutable API version value type used
// throughout the versioner module.
//
// A Version is parsed from a string under one of three formats:
//
//   - FormatSemantic: "2", "2.1", "2.1.3", "2.1.3-beta.1"
//   - FormatSimple:   "2", "2.1"
//   - FormatDate:     "2024-01-15" (ISO-8601 calendar date)
//
// Versions are totally ordered within a single format. Comparing
// versions of different formats is a configuration error and fails
// with *IncomparableVersionError rather than silently coercing.
//
// String returns the canonical form, which is not necessarily the
// original text: under FormatSimple both "1" and "1.0" canonicalize
// to "1.0". Parsing a canonical form yields a version equal to the
// original, so canonicalization is idempotent.
package version

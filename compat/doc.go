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

// Package compat negotiates a servable version for a requested
// version using an explicit compatibility matrix.
//
// The matrix maps a requested version to an ordered list of fallback
// versions that may serve it. Negotiation is direct-only: fallback
// chains are never followed transitively, so every acceptable
// substitution must be listed against the requested version itself.
package compat

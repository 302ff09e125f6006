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

// Package httperr translates resolution errors into HTTP responses.
//
// Engine errors carry their protocol mapping structurally: they
// implement HTTPStatus, Code, and optionally Details. Formatters
// consume those interfaces without knowing the concrete error types,
// so applications can plug in their own error shapes.
//
// Two formatters ship with the package: RFC9457, producing RFC 9457
// Problem Details with "application/problem+json" bodies, and
// Simple, producing a flat {"error", "code", "status"} object.
package httperr

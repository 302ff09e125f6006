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

// Package deprecation evaluates version lifecycle state and produces
// the RFC 8594 response headers that announce it: Deprecation,
// Sunset, Warning, and Link.
//
// Evaluation is pure: it takes the lifecycle metadata and the current
// time and returns a status plus headers, without touching the
// response. The engine applies the headers per request, so a version
// crossing its sunset date changes behavior on the next request
// without a restart.
package deprecation

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

// Package routes holds the version route table: the mapping from
// (path, method, version) to a handler plus optional deprecation
// metadata.
//
// Tables are assembled with a Builder during startup and frozen by
// Build. A built Table is immutable and safe for unlocked concurrent
// reads. Path templates are registered without version prefixes; the
// engine strips path versions before lookup.
package routes

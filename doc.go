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

// Package versioner resolves, per HTTP request, which version of an
// API endpoint should handle it.
//
// An Engine composes the building blocks from the subpackages: a
// route table mapping (path, method, version) to handlers, a
// strategy resolver extracting the requested version from the
// request, a compatibility matrix negotiating a servable version
// when the requested one is absent, and per-request deprecation
// evaluation producing RFC 8594 lifecycle headers.
//
//	table, _ := routes.NewBuilder().
//		Endpoint("/users", "GET", v1, listUsersV1).
//		Endpoint("/users", "GET", v2, listUsersV2).
//		Build()
//
//	resolver, _ := strategy.NewResolver(
//		strategy.WithStrategy(1, strategy.NewHeader("X-API-Version")),
//		strategy.WithStrategy(2, strategy.NewURLPath()),
//		strategy.WithDefault(v1),
//	)
//
//	engine, _ := versioner.New(
//		versioner.WithRoutes(table),
//		versioner.WithResolver(resolver),
//	)
//	http.ListenAndServe(":8080", engine.Handler())
//
// The engine is built once at startup and is immutable afterward, so
// it is shared across request goroutines without locking. All
// resolution work is in-memory computation; nothing blocks on I/O.
package versioner

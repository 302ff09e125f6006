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

// Package configload reads engine configuration from YAML, TOML, or
// JSON files: the version format, the ordered strategy list with
// per-strategy parameters, the default version and strict flag, the
// compatibility matrix, lifecycle header-name overrides, and
// per-version deprecation metadata.
//
// Every file is validated against an embedded JSON Schema before
// decoding, so malformed configuration fails loudly at startup with
// a path to the offending field. The decoded File then builds the
// engine inputs:
//
//	cfg, err := configload.Load("versioner.yaml")
//	resolver, err := cfg.Resolver()
//	matrix, err := cfg.Matrix()
package configload

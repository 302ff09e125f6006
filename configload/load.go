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

package configload

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

// File is the decoded configuration file.
type File struct {
	// Format selects the version grammar: "semantic", "simple", or
	// "date". Default "semantic".
	Format string `mapstructure:"format"`

	// DefaultVersion, when set, serves requests that carry no
	// version token.
	DefaultVersion string `mapstructure:"default_version"`

	// Strict makes unversioned requests fail instead of using the
	// default.
	Strict bool `mapstructure:"strict"`

	// VersionHeader is the response header announcing the served
	// version. Default "X-API-Version".
	VersionHeader string `mapstructure:"version_header"`

	// Strategies is the ordered extraction strategy list.
	Strategies []StrategyConfig `mapstructure:"strategies"`

	// Compatibility maps a version to its ordered fallback list.
	Compatibility map[string][]string `mapstructure:"compatibility"`

	// HeaderNames overrides the lifecycle response header names.
	HeaderNames HeaderNamesConfig `mapstructure:"header_names"`

	// Deprecations maps a version to its lifecycle metadata.
	Deprecations map[string]DeprecationConfig `mapstructure:"deprecations"`
}

// StrategyConfig declares one extraction strategy.
type StrategyConfig struct {
	// Kind is "path", "header", "query", or "accept".
	Kind string `mapstructure:"kind"`

	// Priority orders strategies; lower wins. Zero means "use the
	// position in the list".
	Priority int `mapstructure:"priority"`

	// Parameters are kind-specific settings such as the header name
	// or the path marker.
	Parameters map[string]any `mapstructure:"parameters"`
}

// HeaderNamesConfig overrides individual lifecycle header names.
type HeaderNamesConfig struct {
	Deprecation string `mapstructure:"deprecation"`
	Sunset      string `mapstructure:"sunset"`
	Warning     string `mapstructure:"warning"`
	Link        string `mapstructure:"link"`
}

// DeprecationConfig declares the lifecycle metadata of one version.
type DeprecationConfig struct {
	// SunsetDate is "2006-01-02" or RFC 3339.
	SunsetDate     string `mapstructure:"sunset_date"`
	Level          string `mapstructure:"level"`
	Replacement    string `mapstructure:"replacement"`
	Reason         string `mapstructure:"reason"`
	MigrationGuide string `mapstructure:"migration_guide"`
}

// Load reads and parses a configuration file. The encoding is picked
// from the extension: .yaml/.yml, .toml, or .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	encoding := strings.TrimPrefix(filepath.Ext(path), ".")
	cfg, err := Parse(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration bytes in the named encoding ("yaml",
// "yml", "toml", or "json"), validates them against the embedded
// schema, and applies defaults.
func Parse(data []byte, encoding string) (*File, error) {
	var raw map[string]any
	switch strings.ToLower(encoding) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config encoding %q", encoding)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var cfg File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := mergo.Merge(&cfg, defaults()); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	for i := range cfg.Strategies {
		if cfg.Strategies[i].Priority == 0 {
			cfg.Strategies[i].Priority = i + 1
		}
	}

	return &cfg, nil
}

func defaults() File {
	return File{
		Format:        "semantic",
		VersionHeader: "X-API-Version",
		HeaderNames: HeaderNamesConfig{
			Deprecation: "Deprecation",
			Sunset:      "Sunset",
			Warning:     "Warning",
			Link:        "Link",
		},
	}
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("config.schema.json")
})

// validate checks the raw document against the embedded schema. The
// document is round-tripped through JSON so YAML and TOML values are
// normalized to the types the validator expects.
func validate(raw map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

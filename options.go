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

package versioner

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/versioner-dev/versioner/compat"
	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/httperr"
	"github.com/versioner-dev/versioner/routes"
	"github.com/versioner-dev/versioner/strategy"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRoutes sets the route table. Required.
func WithRoutes(table *routes.Table) Option {
	return func(e *Engine) {
		e.table = table
	}
}

// WithResolver sets the strategy resolver. Required.
func WithResolver(r *strategy.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithMatrix sets the compatibility matrix. Without one, only exact
// version matches (and the resolver default) are served.
func WithMatrix(m *compat.Matrix) Option {
	return func(e *Engine) {
		e.matrix = m
	}
}

// WithHeaderNames overrides the lifecycle response header names.
func WithHeaderNames(names deprecation.HeaderNames) Option {
	return func(e *Engine) {
		e.headerNames = names
	}
}

// WithSunsetEnforcement makes the engine refuse requests for retired
// versions with 410 Gone instead of serving them with lifecycle
// headers.
func WithSunsetEnforcement() Option {
	return func(e *Engine) {
		e.enforceSunset = true
	}
}

// WithVersionHeader sets the response header announcing the served
// version on every response. Empty disables the announcement.
// Default "X-API-Version".
func WithVersionHeader(name string) Option {
	return func(e *Engine) {
		e.versionHeader = name
	}
}

// WithClock injects the time source used for sunset evaluation.
// Tests pin it to cross sunset boundaries deterministically.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Observer receives resolution outcomes for custom bookkeeping.
// Callbacks run synchronously on the request path and must be fast
// and non-blocking; nil fields are skipped.
type Observer struct {
	// OnResolve fires after a successful resolution.
	OnResolve func(res *Resolution)

	// OnDeprecatedUse fires after OnResolve when the served version
	// is deprecated or retired.
	OnDeprecatedUse func(res *Resolution)

	// OnError fires when resolution fails, before the error response
	// is written.
	OnError func(err error)
}

// WithObserver registers resolution callbacks.
func WithObserver(obs Observer) Option {
	return func(e *Engine) {
		e.observer = obs
	}
}

// WithLogger sets the structured logger. Default slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for engine
// metrics. Default is the global provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(e *Engine) {
		if provider != nil {
			e.meterProvider = provider
		}
	}
}

// WithErrorFormatter sets the formatter used to write resolution
// errors. Default is RFC 9457 Problem Details.
func WithErrorFormatter(f httperr.Formatter) Option {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

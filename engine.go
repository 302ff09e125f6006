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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/versioner-dev/versioner/compat"
	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/httperr"
	"github.com/versioner-dev/versioner/routes"
	"github.com/versioner-dev/versioner/strategy"
	"github.com/versioner-dev/versioner/version"
)

// Resolution is the outcome of resolving one request: the handler
// variant to dispatch, how the version was determined, and the
// lifecycle state to announce.
type Resolution struct {
	// Spec is the route variant selected to serve the request.
	Spec routes.Spec

	// Version is the version being served. It differs from Requested
	// when the compatibility matrix negotiated a fallback.
	Version version.Version

	// Requested is the version extracted from the request (or the
	// configured default).
	Requested version.Version

	// Source names the strategy that produced the version token, or
	// "default".
	Source string

	// Deprecation is the lifecycle outcome evaluated for this
	// request.
	Deprecation deprecation.Outcome
}

// Negotiated reports whether the served version differs from the
// requested one.
func (r *Resolution) Negotiated() bool {
	c, err := r.Version.Compare(r.Requested)
	return err == nil && c != 0
}

// Engine is the version resolution engine. Build it once with New;
// it is immutable and safe for concurrent use.
type Engine struct {
	table    *routes.Table
	resolver *strategy.Resolver
	matrix   *compat.Matrix

	headerNames   deprecation.HeaderNames
	enforceSunset bool
	versionHeader string

	clock         func() time.Time
	observer      Observer
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	formatter     httperr.Formatter
	metrics       *engineMetrics
}

// New builds an Engine. A route table and a resolver are required,
// and the resolver's version format must match the table's.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		headerNames:   deprecation.DefaultHeaderNames(),
		versionHeader: "X-API-Version",
		clock:         time.Now,
		logger:        slog.Default(),
		meterProvider: otel.GetMeterProvider(),
		formatter:     httperr.NewRFC9457(""),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.table == nil {
		return nil, errors.New("a route table is required")
	}
	if e.resolver == nil {
		return nil, errors.New("a strategy resolver is required")
	}
	if e.resolver.Format() != e.table.Format() {
		return nil, fmt.Errorf("resolver format %s does not match route table format %s",
			e.resolver.Format(), e.table.Format())
	}
	if e.matrix == nil {
		e.matrix = compat.NewMatrix()
	}

	m, err := newEngineMetrics(e.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	e.metrics = m

	return e, nil
}

// Resolve determines which version variant should serve the request.
//
// The flow per request: strip any path version segment, look up the
// route's registered variants, extract the requested version via the
// configured strategies, negotiate a servable version through the
// compatibility matrix, and evaluate the selected variant's
// lifecycle against the current time. Typed errors from any stage
// are returned unwrapped so callers can inspect them.
func (e *Engine) Resolve(req *http.Request) (*Resolution, error) {
	view := strategy.ViewHTTP(req)
	path := e.resolver.StripPath(view.Path())

	specs, err := e.table.Lookup(path, view.Method())
	if err != nil {
		return nil, e.fail(req, err)
	}

	requested, source, err := e.resolver.Resolve(view)
	if err != nil {
		return nil, e.fail(req, err)
	}

	available := make([]version.Version, len(specs))
	for i, spec := range specs {
		available[i] = spec.Version
	}

	var def *version.Version
	if d, ok := e.resolver.Default(); ok {
		def = &d
	}

	served, err := e.matrix.Negotiate(requested, available, def)
	if err != nil {
		return nil, e.fail(req, err)
	}

	spec, err := e.table.LookupExact(path, view.Method(), served)
	if err != nil {
		return nil, e.fail(req, err)
	}

	res := &Resolution{
		Spec:        spec,
		Version:     served,
		Requested:   requested,
		Source:      source,
		Deprecation: deprecation.Evaluate(spec.Deprecation, e.clock(), e.headerNames),
	}

	e.metrics.recordResolution(req.Context(), res)
	if res.Deprecation.Status != deprecation.StatusActive {
		e.logger.Debug("resolved deprecated version",
			slog.String("version", served.String()),
			slog.String("status", res.Deprecation.Status.String()),
			slog.String("route", spec.Method+" "+spec.PathTemplate),
		)
	}
	if e.observer.OnResolve != nil {
		e.observer.OnResolve(res)
	}
	if e.observer.OnDeprecatedUse != nil && res.Deprecation.Status != deprecation.StatusActive {
		e.observer.OnDeprecatedUse(res)
	}

	return res, nil
}

func (e *Engine) fail(req *http.Request, err error) error {
	e.metrics.recordError(req.Context(), err)
	e.logger.Debug("version resolution failed",
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
		slog.Any("error", err),
	)
	if e.observer.OnError != nil {
		e.observer.OnError(err)
	}
	return err
}

// Versions returns every registered version in ascending order.
func (e *Engine) Versions() []version.Version {
	return e.table.Versions()
}

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
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/httperr"
)

const meterName = "github.com/versioner-dev/versioner"

// engineMetrics are the OpenTelemetry instruments recorded per
// resolution. Instrument creation only fails on malformed names, so
// failures surface at New rather than being silently dropped.
type engineMetrics struct {
	resolutions        metric.Int64Counter
	errors             metric.Int64Counter
	deprecatedRequests metric.Int64Counter
}

func newEngineMetrics(provider metric.MeterProvider) (*engineMetrics, error) {
	meter := provider.Meter(meterName)

	resolutions, err := meter.Int64Counter("versioner.resolutions",
		metric.WithDescription("Requests resolved to a version, by served version and extraction source."),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("versioner.resolution_errors",
		metric.WithDescription("Failed resolutions, by error code."),
	)
	if err != nil {
		return nil, err
	}

	deprecated, err := meter.Int64Counter("versioner.deprecated_requests",
		metric.WithDescription("Requests served by a deprecated or retired version."),
	)
	if err != nil {
		return nil, err
	}

	return &engineMetrics{
		resolutions:        resolutions,
		errors:             errs,
		deprecatedRequests: deprecated,
	}, nil
}

func (m *engineMetrics) recordResolution(ctx context.Context, res *Resolution) {
	attrs := metric.WithAttributes(
		attribute.String("version", res.Version.String()),
		attribute.String("source", res.Source),
		attribute.String("route", res.Spec.Method+" "+res.Spec.PathTemplate),
	)
	m.resolutions.Add(ctx, 1, attrs)

	if res.Deprecation.Status != deprecation.StatusActive {
		m.deprecatedRequests.Add(ctx, 1, metric.WithAttributes(
			attribute.String("version", res.Version.String()),
			attribute.String("status", res.Deprecation.Status.String()),
		))
	}
}

func (m *engineMetrics) recordError(ctx context.Context, err error) {
	code := "internal"
	var coded httperr.ErrorCode
	if errors.As(err, &coded) {
		code = coded.Code()
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}

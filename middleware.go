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
	"net/http"

	"github.com/versioner-dev/versioner/deprecation"
)

type contextKey struct{}

// NewContext returns a context carrying the resolution.
func NewContext(ctx context.Context, res *Resolution) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext returns the resolution stored by Apply or Handler.
func FromContext(ctx context.Context) (*Resolution, bool) {
	res, ok := ctx.Value(contextKey{}).(*Resolution)
	return res, ok
}

// Apply resolves the request and writes the response metadata: the
// lifecycle headers, the served-version header, and, on failure or
// enforced sunset, the error response.
//
// It returns (res, true) when the caller should dispatch the
// resolved handler, and (nil, false) when the response has already
// been written. Framework adapters build on Apply.
func (e *Engine) Apply(w http.ResponseWriter, req *http.Request) (*Resolution, bool) {
	res, err := e.Resolve(req)
	if err != nil {
		e.formatter.Format(req, err).Write(w)
		return nil, false
	}

	header := w.Header()
	for name, values := range res.Deprecation.Headers {
		for _, v := range values {
			header.Add(name, v)
		}
	}
	if e.versionHeader != "" {
		header.Set(e.versionHeader, res.Version.String())
	}

	if e.enforceSunset && res.Deprecation.Status == deprecation.StatusSunset {
		err := &SunsetError{Version: res.Version, Info: res.Spec.Deprecation}
		e.metrics.recordError(req.Context(), err)
		if e.observer.OnError != nil {
			e.observer.OnError(err)
		}
		e.formatter.Format(req, err).Write(w)
		return nil, false
	}

	return res, true
}

// Handler returns an http.Handler that resolves each request and
// dispatches the selected variant's handler with the resolution
// available via FromContext.
func (e *Engine) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		res, ok := e.Apply(w, req)
		if !ok {
			return
		}
		req = req.WithContext(NewContext(req.Context(), res))
		res.Spec.Handler.ServeHTTP(w, req)
	})
}

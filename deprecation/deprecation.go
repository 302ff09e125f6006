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

package deprecation

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Level grades how urgently clients should migrate off a deprecated
// version.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelCritical
)

// String returns the level's configuration name.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "info"
	}
}

// ParseLevel converts a configuration name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return LevelInfo, nil
	case "warning":
		return LevelWarning, nil
	case "critical":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("unknown warning level %q", s)
	}
}

// Status is the lifecycle state of a version at a point in time.
type Status int

const (
	// StatusActive means the version carries no deprecation metadata.
	StatusActive Status = iota

	// StatusDeprecated means the version is deprecated but still
	// serving, with or without a future sunset date.
	StatusDeprecated

	// StatusSunset means the sunset date has passed. The engine may
	// refuse the request depending on enforcement configuration.
	StatusSunset
)

// String returns the status name used in logs and the discovery
// document.
func (s Status) String() string {
	switch s {
	case StatusDeprecated:
		return "deprecated"
	case StatusSunset:
		return "sunset"
	default:
		return "active"
	}
}

// Info is the deprecation metadata attached to a registered version.
// It is set once at registration time and never mutated.
type Info struct {
	// SunsetDate is the instant the version retires. Zero means the
	// version is deprecated without a scheduled sunset.
	SunsetDate time.Time

	// Level grades the Warning header emitted while deprecated.
	Level Level

	// Replacement names the version clients should migrate to,
	// announced via a Link header with rel="successor-version".
	Replacement string

	// Reason is free-form text included in the Warning message.
	Reason string

	// MigrationGuide is a URL announced via a Link header with
	// rel="deprecation".
	MigrationGuide string
}

// HeaderNames are the response header names used for lifecycle
// announcements, overridable for deployments with gateway-mandated
// naming.
type HeaderNames struct {
	Deprecation string
	Sunset      string
	Warning     string
	Link        string
}

// DefaultHeaderNames returns the standard RFC 8594 / RFC 7234 names.
func DefaultHeaderNames() HeaderNames {
	return HeaderNames{
		Deprecation: "Deprecation",
		Sunset:      "Sunset",
		Warning:     "Warning",
		Link:        "Link",
	}
}

// Outcome is the result of evaluating a version's lifecycle for one
// request.
type Outcome struct {
	Status  Status
	Headers http.Header
}

// Evaluate computes the lifecycle outcome for a version at the given
// time. A nil info means the version is active and no headers are
// emitted.
//
// Past the sunset date the status is StatusSunset and the headers
// still announce the deprecation, so a gateway that elects to keep
// serving still informs clients. Before sunset (or with no sunset
// scheduled) the status is StatusDeprecated and a Warning header is
// added, code 199 for LevelCritical and 299 otherwise.
func Evaluate(info *Info, now time.Time, names HeaderNames) Outcome {
	if info == nil {
		return Outcome{Status: StatusActive, Headers: http.Header{}}
	}

	headers := http.Header{}
	headers.Set(names.Deprecation, "true")

	if !info.SunsetDate.IsZero() {
		headers.Set(names.Sunset, info.SunsetDate.UTC().Format(http.TimeFormat))
	}
	if info.Replacement != "" {
		headers.Add(names.Link, fmt.Sprintf("<%s>; rel=\"successor-version\"", info.Replacement))
	}
	if info.MigrationGuide != "" {
		headers.Add(names.Link, fmt.Sprintf("<%s>; rel=\"deprecation\"", info.MigrationGuide))
	}

	if !info.SunsetDate.IsZero() && !now.Before(info.SunsetDate) {
		return Outcome{Status: StatusSunset, Headers: headers}
	}

	code := 299
	if info.Level == LevelCritical {
		code = 199
	}
	headers.Set(names.Warning, fmt.Sprintf("%d - %q", code, info.WarningMessage(now)))

	return Outcome{Status: StatusDeprecated, Headers: headers}
}

// WarningMessage builds the human-readable text carried in the
// Warning header.
func (info *Info) WarningMessage(now time.Time) string {
	var b strings.Builder
	b.WriteString("This API version is deprecated")

	if !info.SunsetDate.IsZero() {
		fmt.Fprintf(&b, " and will be sunset on %s", info.SunsetDate.UTC().Format("2006-01-02"))
		if days := daysUntil(now, info.SunsetDate); days >= 0 {
			fmt.Fprintf(&b, " (%d days remaining)", days)
		}
	}
	b.WriteString(".")

	if info.Replacement != "" {
		fmt.Fprintf(&b, " Use version %s instead.", info.Replacement)
	}
	if info.Reason != "" {
		fmt.Fprintf(&b, " %s", info.Reason)
	}
	return b.String()
}

// daysUntil counts whole days from now to the sunset instant,
// negative once passed.
func daysUntil(now, sunset time.Time) int {
	return int(sunset.Sub(now).Hours() / 24)
}

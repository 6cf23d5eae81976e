// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes build identity for the Carewell binaries.
// The variables are set at link time:
//
//	go build -ldflags "-X github.com/carewell-health/carewell/lib/version.Version=v1.4.0 \
//	  -X github.com/carewell-health/carewell/lib/version.Commit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// Version is the release tag, or "dev" for local builds.
var Version = "dev"

// Commit is the short git commit hash the binary was built from.
var Commit = "unknown"

// Date is the build date in RFC 3339 form.
var Date = "unknown"

// String returns the one-line version banner printed by the version
// command and sent as the User-Agent.
func String() string {
	return fmt.Sprintf("carewell %s (%s, %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

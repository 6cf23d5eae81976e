// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the Carewell dashboard. Built on bubbletea (Elm architecture),
// these components handle common patterns like dropdown overlays,
// scrollbars, fuzzy matching, and ANSI-aware text manipulation.
//
// The dashboard's resource screens import this package for consistent
// look and behavior: same theme, same keyboard conventions, same
// overlay mechanics. Each screen owns its own data source, layout,
// and record-specific rendering.
package tui

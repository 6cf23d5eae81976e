// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the
// Carewell terminal UI. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic record-status categories that recur across
// resources — donors, appointments, feedback, and urgent requests all
// carry a status that maps onto the same open/in-progress/done/
// cancelled palette.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Record status colors.
	StatusOpen     lipgloss.Color // new, registered, requested, open, upcoming
	StatusWorking  lipgloss.Color // contacted, confirmed, dispatched, reviewed, ongoing
	StatusDone     lipgloss.Color // completed, resolved, matched
	StatusStopped  lipgloss.Color // cancelled, deferred, closed
	StatusInactive lipgloss.Color // anything unknown

	// Toast levels.
	ToastSuccess lipgloss.Color
	ToastError   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Stale-data banner shown when a reload fails but older items
	// are still on screen.
	StaleBackground lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Modal overlays (forms, confirmations, dropdowns).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// StatusColor maps a record status string onto the theme's status
// palette. Unknown values render inactive.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "new", "registered", "requested", "open", "upcoming":
		return theme.StatusOpen
	case "contacted", "confirmed", "dispatched", "reviewed", "ongoing":
		return theme.StatusWorking
	case "completed", "resolved", "matched", "active":
		return theme.StatusDone
	case "cancelled", "deferred", "closed":
		return theme.StatusStopped
	default:
		return theme.StatusInactive
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusOpen:     lipgloss.Color("114"), // green
	StatusWorking:  lipgloss.Color("220"), // yellow/amber
	StatusDone:     lipgloss.Color("75"),  // blue
	StatusStopped:  lipgloss.Color("245"), // gray
	StatusInactive: lipgloss.Color("240"), // dim gray

	ToastSuccess: lipgloss.Color("114"), // green
	ToastError:   lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	StaleBackground: lipgloss.Color("58"), // dark amber tint

	SearchHighlightBackground: lipgloss.Color("58"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}

// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces the single-column scrollbar beside a record
// list. The thumb marks the visible slice of the collection; when
// everything fits it spans the full height. The thumb takes the accent
// color while the list pane is focused.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.StatusWorking
	}
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render("┃")

	top, size := thumbBounds(height, totalItems, visibleItems, scrollOffset)

	var column strings.Builder
	for row := range height {
		if row > 0 {
			column.WriteByte('\n')
		}
		if row >= top && row < top+size {
			column.WriteString(thumb)
		} else {
			column.WriteString(track)
		}
	}
	return column.String()
}

// thumbBounds returns the thumb's top row and row count for a list of
// totalItems showing visibleItems rows from scrollOffset. The thumb
// never shrinks below one row and never extends past the track.
func thumbBounds(height, totalItems, visibleItems, scrollOffset int) (top, size int) {
	if totalItems <= 0 || totalItems <= visibleItems {
		return 0, height
	}

	size = height * visibleItems / totalItems
	if size < 1 {
		size = 1
	}

	scrollable := totalItems - visibleItems
	trackRange := height - size
	if scrollable > 0 && trackRange > 0 {
		top = scrollOffset * trackRange / scrollable
	}
	if top+size > height {
		top = height - size
	}
	return top, size
}

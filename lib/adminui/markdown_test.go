// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/carewell-health/carewell/lib/tui"
)

func TestMarkdownRendersHeadingsAndLists(t *testing.T) {
	input := "# Visiting Hours\n\nGeneral ward:\n\n- Morning 10:00–12:00\n- Evening 17:00–19:00\n"
	rendered := renderTerminalMarkdown(input, tui.DefaultTheme, 60)
	plain := ansi.Strip(rendered)

	if !strings.Contains(plain, "Visiting Hours") {
		t.Errorf("heading text missing:\n%s", plain)
	}
	if !strings.Contains(plain, "• Morning 10:00–12:00") {
		t.Errorf("bullet list missing:\n%s", plain)
	}
}

func TestMarkdownWrapsToWidth(t *testing.T) {
	input := strings.Repeat("word ", 40)
	rendered := renderTerminalMarkdown(input, tui.DefaultTheme, 30)
	for _, line := range strings.Split(ansi.Strip(rendered), "\n") {
		if ansi.StringWidth(line) > 30 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestMarkdownCodeBlockSurvives(t *testing.T) {
	input := "```go\nfunc main() {}\n```\n"
	rendered := renderTerminalMarkdown(input, tui.DefaultTheme, 60)
	if !strings.Contains(ansi.Strip(rendered), "func main() {}") {
		t.Errorf("code content missing:\n%s", rendered)
	}
}

func TestMarkdownBlockquotePrefix(t *testing.T) {
	rendered := renderTerminalMarkdown("> stay hydrated", tui.DefaultTheme, 60)
	if !strings.Contains(ansi.Strip(rendered), "│ stay hydrated") {
		t.Errorf("blockquote prefix missing:\n%s", rendered)
	}
}

func TestMarkdownEmptyInput(t *testing.T) {
	if got := strings.TrimSpace(ansi.Strip(renderTerminalMarkdown("", tui.DefaultTheme, 40))); got != "" {
		t.Errorf("empty input rendered %q", got)
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// diffMaxLines caps the per-file diff preview shown before overwrite prompts.
const diffMaxLines = 40

// renderDiffPreview prints a unified diff between the existing and proposed
// file content, truncated to diffMaxLines.
func renderDiffPreview(out io.Writer, name string, existing string, proposed string) {
	diff := udiff.Unified(name+" (existing)", name+" (new)", existing, proposed)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	truncated := false
	if len(lines) > diffMaxLines {
		lines = lines[:diffMaxLines]
		truncated = true
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
	if truncated {
		_, _ = fmt.Fprintf(out, "... diff truncated at %d lines\n", diffMaxLines)
	}
}

// Package version normalizes and classifies envup version strings.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riverbend-labs/envup/internal/messages"
)

// IsDev reports whether raw identifies an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize validates raw as a vX.Y.Z or X.Y.Z version and returns the X.Y.Z form.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
	}
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
		}
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf(messages.UpdateInvalidVersionSegmentFmt, part, err)
		}
	}
	return trimmed, nil
}

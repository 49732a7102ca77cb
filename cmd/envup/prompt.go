package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/riverbend-labs/envup/internal/messages"
)

// promptYesNo asks a yes/no question and reads one line of input.
// An empty answer (or EOF) selects defaultYes.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	format := messages.PromptNoDefaultFmt
	if defaultYes {
		format = messages.PromptYesDefaultFmt
	}
	_, _ = fmt.Fprintf(out, format, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	case "":
		return defaultYes, nil
	default:
		return false, nil
	}
}

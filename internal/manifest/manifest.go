// Package manifest inspects pip requirements files far enough to report on
// them. It never resolves versions; the bootstrap sequence passes the manifest
// path straight to the installer untouched.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Requirement is a single dependency entry from a manifest.
type Requirement struct {
	// Name is the canonical package name (lowercase, underscores folded to hyphens).
	Name string
	// Raw is the entry as written, without comments or continuations.
	Raw string
	// Line is the 1-based line number of the entry's first line.
	Line int
	// Editable reports a -e/--editable entry.
	Editable bool
}

// File is the parsed view of one manifest.
type File struct {
	Path         string
	Requirements []Requirement
	// Includes lists the targets of -r/--requirement directives, unresolved.
	Includes []string
}

// Load reads and parses the manifest at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	parsed.Path = path
	return parsed, nil
}

// Parse parses requirements-file content.
func Parse(content string) (*File, error) {
	file := &File{}
	scanner := bufio.NewScanner(strings.NewReader(content))

	lineNo := 0
	startLine := 0
	pending := ""
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if pending == "" {
			startLine = lineNo
		}
		if trimmed, cont := strings.CutSuffix(strings.TrimRight(line, " \t"), `\`); cont {
			pending += trimmed
			continue
		}
		entry := strings.TrimSpace(pending + line)
		pending = ""
		if entry == "" {
			continue
		}
		if err := file.addEntry(entry, startLine); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest content: %w", err)
	}
	if entry := strings.TrimSpace(pending); entry != "" {
		if err := file.addEntry(entry, startLine); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// Duplicates returns the package names that appear more than once, sorted.
func (f *File) Duplicates() []string {
	seen := make(map[string]int)
	for _, req := range f.Requirements {
		seen[req.Name]++
	}
	var dupes []string
	for name, count := range seen {
		if count > 1 {
			dupes = append(dupes, name)
		}
	}
	sort.Strings(dupes)
	return dupes
}

// addEntry classifies one logical manifest line.
func (f *File) addEntry(entry string, line int) error {
	if strings.HasPrefix(entry, "-") {
		return f.addDirective(entry, line)
	}
	name := packageName(entry)
	if name == "" {
		return fmt.Errorf("line %d: cannot determine package name in %q", line, entry)
	}
	f.Requirements = append(f.Requirements, Requirement{
		Name: name,
		Raw:  entry,
		Line: line,
	})
	return nil
}

// addDirective handles option lines (-r, -e, --index-url, ...).
func (f *File) addDirective(entry string, line int) error {
	flag, rest, _ := strings.Cut(entry, " ")
	if value, ok := strings.CutPrefix(flag, "--requirement="); ok {
		flag, rest = "-r", value
	}
	if value, ok := strings.CutPrefix(flag, "--editable="); ok {
		flag, rest = "-e", value
	}
	rest = strings.TrimSpace(rest)

	switch flag {
	case "-r", "--requirement":
		if rest == "" {
			return fmt.Errorf("line %d: %s requires a file argument", line, flag)
		}
		f.Includes = append(f.Includes, rest)
	case "-e", "--editable":
		if rest == "" {
			return fmt.Errorf("line %d: %s requires a target argument", line, flag)
		}
		f.Requirements = append(f.Requirements, Requirement{
			Name:     editableName(rest),
			Raw:      entry,
			Line:     line,
			Editable: true,
		})
	default:
		// Installer options such as --index-url pass through to pip untouched.
	}
	return nil
}

// stripComment removes a trailing # comment unless it is glued to the entry.
func stripComment(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return ""
	}
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i]
		}
	}
	return line
}

// packageName extracts the canonical name from a constraint entry.
// "Flask >=2.0" and "flask[async]==2.3" both yield "flask".
func packageName(entry string) string {
	name := entry
	if idx := strings.IndexAny(name, "[<>=!~; @"); idx >= 0 {
		name = name[:idx]
	}
	return canonicalize(name)
}

// editableName derives a display name for an editable target path or URL.
func editableName(target string) string {
	if _, fragment, ok := strings.Cut(target, "#egg="); ok {
		if idx := strings.IndexAny(fragment, "&["); idx >= 0 {
			fragment = fragment[:idx]
		}
		if fragment != "" {
			return canonicalize(fragment)
		}
	}
	trimmed := strings.TrimRight(target, "/")
	if idx := strings.LastIndexAny(trimmed, "/\\"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return canonicalize(trimmed)
}

// canonicalize lowercases a name and folds underscores and dots to hyphens.
func canonicalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}

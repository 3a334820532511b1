// core/design/design.go
package design

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one design line: a component name and the marker it references.
// File order is significant and fixes output placement order.
type Entry struct {
	Component string
	MarkerRef string
}

// FormatError reports a malformed design line.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("design line %d: %s", e.Line, e.Msg)
}

// Parse reads "Name, MarkerRef" lines in order. Blank lines and '#' comments
// are skipped. A line must have exactly two comma-separated fields after
// trimming, and component names must be unique within the design.
func Parse(r io.Reader) ([]Entry, error) {
	var out []Entry
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, ",")
		if len(f) != 2 {
			return nil, &FormatError{Line: ln, Msg: fmt.Sprintf("want 2 comma-separated fields, got %d", len(f))}
		}
		name := strings.TrimSpace(f[0])
		ref := strings.TrimSpace(f[1])
		if name == "" || ref == "" {
			return nil, &FormatError{Line: ln, Msg: "empty field"}
		}
		if _, dup := seen[name]; dup {
			return nil, &FormatError{Line: ln, Msg: fmt.Sprintf("duplicate component %q", name)}
		}
		seen[name] = struct{}{}
		out = append(out, Entry{Component: name, MarkerRef: ref})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// References reports whether any entry references marker name.
func References(entries []Entry, name string) bool {
	for _, e := range entries {
		if e.MarkerRef == name {
			return true
		}
	}
	return false
}

// Package uihelpers holds small UI-side helpers shared by both viewer
// binaries, kept free of Fyne types so they stay testable.
package uihelpers

import "path/filepath"

// LogRing is the scrollable preview log: a fixed-capacity line buffer that
// evicts the oldest line once full.
type LogRing struct {
	capacity int
	lines    []string
}

// NewLogRing returns a ring holding at most capacity lines.
func NewLogRing(capacity int) *LogRing {
	if capacity < 1 {
		capacity = 1
	}
	return &LogRing{capacity: capacity}
}

// Add appends a line, evicting the oldest when the ring is full.
func (r *LogRing) Add(line string) {
	r.lines = append(r.lines, line)
	if len(r.lines) > r.capacity {
		r.lines = r.lines[len(r.lines)-r.capacity:]
	}
}

// AddAll appends several lines in order.
func (r *LogRing) AddAll(lines []string) {
	for _, l := range lines {
		r.Add(l)
	}
}

// Len returns the number of retained lines.
func (r *LogRing) Len() int { return len(r.lines) }

// Line returns the i-th retained line, oldest first.
func (r *LogRing) Line(i int) string {
	if i < 0 || i >= len(r.lines) {
		return ""
	}
	return r.lines[i]
}

// Clear drops all retained lines.
func (r *LogRing) Clear() { r.lines = r.lines[:0] }

// TruncatePath shortens a file path for label display, keeping the base name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}

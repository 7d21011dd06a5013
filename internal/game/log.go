package game

import "fmt"

// Log keeps the most recent messages for display.
type Log struct {
	lines []string
	limit int
}

// NewLog creates a log holding at most limit lines.
func NewLog(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{limit: limit}
}

// Addf formats and appends a message, dropping the oldest past the limit.
func (l *Log) Addf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of the messages, oldest first.
func (l *Log) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Last returns the newest message, or "" if there is none.
func (l *Log) Last() string {
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

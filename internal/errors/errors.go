// Package errors formats positioned errors (the driver uses it for parse
// errors) with source context, line/column information, and a caret
// pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/LandaMm/PL-interpreter/pkg/token"
)

// SourceError pairs a message with the position it occurred at and the
// source text it came from, so the driver can render a pretty diagnostic.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a SourceError.
func New(pos token.Position, source, file, message string) *SourceError {
	return &SourceError{Message: message, Source: source, File: file, Pos: pos}
}

// Error implements the error interface with a plain one-line message.
func (e *SourceError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Format renders the error with the offending source line and a caret
// underneath the column, the way a terminal diagnostic should look.
func (e *SourceError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	line := sourceLine(e.Source, e.Pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	return sb.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// File: format.go
// Title: Log Output Formatters
// Description: Formatters turning log entries into JSON, key=value text or
//              a compact console line for the rix command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text and logfmt
// - 2025-10-19 v0.2.0: Folded logfmt into text, sorted field output

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log entries
type Format int

const (
	// FormatText outputs key=value pairs
	FormatText Format = iota

	// FormatJSON outputs one JSON object per line
	FormatJSON

	// FormatConsole outputs a short human oriented line
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "logfmt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "console", "pretty":
		return FormatConsole, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter renders a log entry as bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Microseconds()) / 1000.0
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(raw, '\n'), nil
}

// TextFormatter formats log entries as key=value pairs
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as key=value text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer

	if !f.DisableTimestamp {
		writePair(&buf, "time", entry.Timestamp.Format(f.TimestampFormat))
	}
	writePair(&buf, "level", entry.Level.String())
	writePair(&buf, "msg", entry.Message)
	if entry.Logger != "" {
		writePair(&buf, "logger", entry.Logger)
	}
	if entry.RequestID != "" {
		writePair(&buf, "request_id", entry.RequestID)
	}
	if entry.Error != nil {
		writePair(&buf, "error", entry.Error.Error())
	}
	if entry.Duration > 0 {
		writePair(&buf, "duration", entry.Duration.String())
	}
	for _, k := range sortedKeys(entry.Fields) {
		writePair(&buf, k, fmt.Sprint(entry.Fields[k]))
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ConsoleFormatter formats log entries for terminal output
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// Format formats a log entry as a single console line
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(entry.Timestamp.Format("15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(entry.Level.ShortString())
	buf.WriteByte(' ')
	if entry.Logger != "" {
		buf.WriteString("[" + entry.Logger + "] ")
	}
	buf.WriteString(entry.Message)
	if entry.Error != nil {
		buf.WriteString(": " + entry.Error.Error())
	}
	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&buf, " %s=%v", k, entry.Fields[k])
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewTextFormatter()
	}
}

func writePair(buf *bytes.Buffer, key, value string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
	buf.WriteString(key)
	buf.WriteByte('=')
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		buf.WriteString(fmt.Sprintf("%q", value))
		return
	}
	buf.WriteString(value)
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

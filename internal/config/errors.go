package config

import (
	"bytes"
	"errors"
	"fmt"
)

// MalformedError reports a configuration file that was read but is not
// valid JSON.
type MalformedError struct {
	Path   string
	Line   int   // 1-based
	Column int   // 1-based, in bytes
	Offset int64 // 0-based byte offset of the failure
	Err    error
}

func newMalformed(path string, data []byte, offset int64, err error) *MalformedError {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	column := len(before) - bytes.LastIndexByte(before, '\n')
	return &MalformedError{
		Path:   path,
		Line:   line,
		Column: column,
		Offset: offset,
		Err:    err,
	}
}

// Message is the parser message with its position.
func (e *MalformedError) Message() string {
	return fmt.Sprintf("%v: line %d column %d (char %d)", e.Err, e.Line, e.Column, e.Offset)
}

// Diagnostic is the one-line report printed before aborting.
func (e *MalformedError) Diagnostic() string {
	return fmt.Sprintf("Malformed line in file: '%s': %s", e.Path, e.Message())
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("parsing config file %s: %s", e.Path, e.Message())
}

func (e *MalformedError) Unwrap() error { return e.Err }

// LoadError reports any failure other than malformed content: a missing
// file, a permission problem, a read error.
type LoadError struct {
	Path string
	Err  error
}

// Diagnostic is the one-line report printed before the error propagates.
func (e *LoadError) Diagnostic() string {
	return fmt.Sprintf("Failed to load configuration file '%s'. Aborting.", e.Path)
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsMalformed reports whether err is, or wraps, a *MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// KeyError reports a lookup path that does not resolve in a Document.
type KeyError struct {
	Key string
	// Missing is the first path segment that could not be resolved.
	Missing string
	Reason  string
}

func (e *KeyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("key %q: %s at %q", e.Key, e.Reason, e.Missing)
	}
	return fmt.Sprintf("key %q not found", e.Key)
}

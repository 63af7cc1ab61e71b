// Package errors provides structured error types for confread output.
package errors

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Code represents an error code.
type Code string

const (
	CodeMalformedConfig Code = "malformed_config"
	CodeLoadError       Code = "load_error"
	CodeKeyNotFound     Code = "key_not_found"
	CodeInvalidKey      Code = "invalid_key"
	CodeUnknownFormat   Code = "unknown_format"
)

// ConfError is a structured error with suggestions for self-correction.
type ConfError struct {
	Code        Code           `json:"code"`
	Message     string         `json:"message"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *ConfError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("%s (did you mean: %s?)", e.Message, strings.Join(e.Suggestions, ", "))
	}
	return e.Message
}

// ToJSON returns the error as JSON bytes.
func (e *ConfError) ToJSON() ([]byte, error) {
	wrapper := struct {
		Error *ConfError `json:"error"`
	}{Error: e}
	return json.MarshalIndent(wrapper, "", "  ")
}

// NewMalformedConfig creates an error for a file that is not valid JSON.
func NewMalformedConfig(path string, line, column int, msg string) *ConfError {
	return &ConfError{
		Code:    CodeMalformedConfig,
		Message: fmt.Sprintf("Malformed line in file: '%s': %s", path, msg),
		Context: map[string]any{"path": path, "line": line, "column": column},
	}
}

// NewLoadError creates an error for a file that could not be read.
func NewLoadError(path string, err error) *ConfError {
	return &ConfError{
		Code:    CodeLoadError,
		Message: fmt.Sprintf("Failed to load configuration file '%s': %v", path, err),
		Context: map[string]any{"path": path},
	}
}

// NewKeyNotFound creates a key not found error with suggestions.
func NewKeyNotFound(key string, suggestions []string) *ConfError {
	return &ConfError{
		Code:        CodeKeyNotFound,
		Message:     fmt.Sprintf("Cannot resolve key '%s'", key),
		Suggestions: suggestions,
		Context:     map[string]any{"key": key},
	}
}

// NewInvalidKey creates an error for a key path that addresses into a
// value it cannot descend into.
func NewInvalidKey(key, segment, reason string) *ConfError {
	return &ConfError{
		Code:    CodeInvalidKey,
		Message: fmt.Sprintf("Invalid key '%s': %s at '%s'", key, reason, segment),
		Context: map[string]any{"key": key, "segment": segment},
	}
}

// NewUnknownFormat creates an unknown output format error.
func NewUnknownFormat(name string, available []string) *ConfError {
	return &ConfError{
		Code:        CodeUnknownFormat,
		Message:     fmt.Sprintf("Unknown output format '%s'", name),
		Suggestions: SuggestSimilar(name, available, 3),
		Context:     map[string]any{"format": name},
	}
}

// SuggestKeys ranks candidate key paths against target. Fuzzy matches
// come first; when there are none it falls back to SuggestSimilar so
// transpositions like "nmae" still find "name".
func SuggestKeys(target string, candidates []string, limit int) []string {
	if len(candidates) == 0 || limit <= 0 {
		return nil
	}

	result := make([]string, 0, limit)
	for _, m := range fuzzy.Find(target, candidates) {
		if len(result) >= limit {
			break
		}
		result = append(result, m.Str)
	}
	if len(result) > 0 {
		return result
	}
	return SuggestSimilar(target, candidates, limit)
}

// SuggestSimilar returns up to limit candidates within edit distance of
// target, closest first. Comparison ignores case; ties keep input order.
func SuggestSimilar(target string, candidates []string, limit int) []string {
	if len(candidates) == 0 || limit <= 0 {
		return nil
	}

	type match struct {
		key  string
		dist int
	}
	maxDist := len(target)/2 + 2
	lower := strings.ToLower(target)

	var matches []match
	for _, c := range candidates {
		if d := levenshtein(lower, strings.ToLower(c)); d <= maxDist {
			matches = append(matches, match{c, d})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		return cmp.Compare(a.dist, b.dist)
	})

	var out []string
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.key)
	}
	return out
}

// levenshtein is the rune edit distance between a and b, computed in a
// single row.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i, ca := range ra {
		diag := row[0]
		row[0] = i + 1
		for j, cb := range rb {
			above := row[j+1]
			if ca == cb {
				row[j+1] = diag
			} else {
				row[j+1] = 1 + min(diag, above, row[j])
			}
			diag = above
		}
	}
	return row[len(rb)]
}

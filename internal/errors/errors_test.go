package errors

import (
	"encoding/json"
	"io/fs"
	"slices"
	"strings"
	"testing"
)

func TestConfError_Error(t *testing.T) {
	tests := []struct {
		name        string
		err         *ConfError
		wantContain string
	}{
		{
			name:        "no suggestions",
			err:         NewLoadError("/etc/app/config.json", fs.ErrNotExist),
			wantContain: "/etc/app/config.json",
		},
		{
			name:        "with suggestions",
			err:         NewKeyNotFound("sevrer.port", []string{"server.port"}),
			wantContain: "did you mean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("Error() = %q, want to contain %q", got, tt.wantContain)
			}
		})
	}
}

func TestConfError_ToJSON(t *testing.T) {
	err := NewKeyNotFound("sevrer.port", []string{"server.port", "server.host"})

	jsonBytes, jsonErr := err.ToJSON()
	if jsonErr != nil {
		t.Fatalf("ToJSON() error: %v", jsonErr)
	}

	var parsed struct {
		Error struct {
			Code        string   `json:"code"`
			Message     string   `json:"message"`
			Suggestions []string `json:"suggestions"`
		} `json:"error"`
	}

	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("parse JSON: %v", err)
	}

	if parsed.Error.Code != string(CodeKeyNotFound) {
		t.Errorf("code = %q, want %q", parsed.Error.Code, CodeKeyNotFound)
	}
	if len(parsed.Error.Suggestions) != 2 {
		t.Errorf("suggestions count = %d, want 2", len(parsed.Error.Suggestions))
	}
}

func TestNewMalformedConfig(t *testing.T) {
	err := NewMalformedConfig("config.json", 3, 7, "invalid character '}'")

	if err.Code != CodeMalformedConfig {
		t.Errorf("Code = %q, want %q", err.Code, CodeMalformedConfig)
	}
	if !strings.HasPrefix(err.Message, "Malformed line in file: 'config.json': ") {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Context["line"] != 3 || err.Context["column"] != 7 {
		t.Errorf("Context = %v, want line 3 column 7", err.Context)
	}
}

func TestNewInvalidKey(t *testing.T) {
	err := NewInvalidKey("name.first", "first", "cannot descend into string")

	if err.Code != CodeInvalidKey {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidKey)
	}
	if !strings.Contains(err.Message, "cannot descend into string") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	err := NewUnknownFormat("ymal", []string{"json", "yaml", "pretty", "flat"})

	if err.Code != CodeUnknownFormat {
		t.Errorf("Code = %q, want %q", err.Code, CodeUnknownFormat)
	}
	if len(err.Suggestions) == 0 || err.Suggestions[0] != "yaml" {
		t.Errorf("Suggestions = %v, want yaml first", err.Suggestions)
	}
}

func TestSuggestKeys(t *testing.T) {
	candidates := []string{
		"debug",
		"name",
		"servers.0.host",
		"servers.0.port",
		"servers.1.host",
	}

	tests := []struct {
		target  string
		limit   int
		want    []string // every result must be in this set
		wantLen int
	}{
		{target: "host", limit: 5, want: []string{"servers.0.host", "servers.1.host"}, wantLen: 2},
		{target: "nmae", limit: 1, want: []string{"name"}, wantLen: 1},
		{target: "servers", limit: 2, want: []string{"servers.0.host", "servers.0.port", "servers.1.host"}, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := SuggestKeys(tt.target, candidates, tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("SuggestKeys(%q) = %v, want %d results", tt.target, got, tt.wantLen)
			}
			for _, g := range got {
				if !slices.Contains(tt.want, g) {
					t.Errorf("SuggestKeys(%q) returned %q, want one of %v", tt.target, g, tt.want)
				}
			}
		})
	}

	if got := SuggestKeys("x", nil, 3); got != nil {
		t.Errorf("SuggestKeys with no candidates = %v, want nil", got)
	}
}

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{
		"server.port",
		"server.host",
		"server.hosts",
		"log.level",
		"log.format",
	}

	tests := []struct {
		target string
		limit  int
		want   []string
	}{
		{
			target: "server.prot",
			limit:  3,
			want:   []string{"server.port"},
		},
		{
			target: "server.host",
			limit:  2,
			want:   []string{"server.host", "server.hosts"},
		},
		{
			target: "log.levle",
			limit:  1,
			want:   []string{"log.level"},
		},
		{
			target: "completely.different",
			limit:  3,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := SuggestSimilar(tt.target, candidates, tt.limit)

			if tt.want == nil {
				if len(got) > 0 {
					t.Errorf("SuggestSimilar(%q) = %v, want nil", tt.target, got)
				}
				return
			}

			if len(got) == 0 {
				t.Errorf("SuggestSimilar(%q) returned empty, want %v", tt.target, tt.want)
				return
			}
			if got[0] != tt.want[0] {
				t.Errorf("SuggestSimilar(%q)[0] = %q, want %q", tt.target, got[0], tt.want[0])
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "adc", 1},
		{"kitten", "sitting", 3},
		{"name", "nmae", 2},
	}

	for _, tt := range tests {
		got := levenshtein(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	resp := CheckResponse{
		Path: "config.json",
		Kind: "object",
		Keys: 3,
	}

	if err := w.Write(resp); err != nil {
		t.Fatalf("write: %v", err)
	}

	var parsed CheckResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if parsed != resp {
		t.Errorf("round trip = %+v, want %+v", parsed, resp)
	}
}

func TestWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	err := w.WriteError(
		"key_not_found",
		"Cannot resolve key 'sevrer.port'",
		[]string{"server.port", "server.host"},
		map[string]any{"key": "sevrer.port"},
	)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}

	var parsed ErrorResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if parsed.Error.Code != "key_not_found" {
		t.Errorf("code = %q, want %q", parsed.Error.Code, "key_not_found")
	}
	if len(parsed.Error.Suggestions) != 2 {
		t.Errorf("suggestions count = %d, want 2", len(parsed.Error.Suggestions))
	}
}

func TestWriter_PrettyPrint(t *testing.T) {
	var compact, pretty bytes.Buffer

	compactW := NewWriter(&compact, false)
	prettyW := NewWriter(&pretty, true)

	data := map[string]string{"key": "value"}

	if err := compactW.Write(data); err != nil {
		t.Fatalf("write compact: %v", err)
	}
	if err := prettyW.Write(data); err != nil {
		t.Fatalf("write pretty: %v", err)
	}

	if pretty.Len() <= compact.Len() {
		t.Errorf("pretty output (%d bytes) should be longer than compact (%d bytes)", pretty.Len(), compact.Len())
	}
}

func TestNewWriterWithFormat(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriterWithFormat(&buf, "yaml")
	if err != nil {
		t.Fatalf("NewWriterWithFormat(yaml) error: %v", err)
	}
	if err := w.Write(KeysResponse{Keys: []string{"a"}, Count: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "count: 1") {
		t.Errorf("yaml output = %q", buf.String())
	}

	if _, err := NewWriterWithFormat(&buf, "nope"); err == nil {
		t.Error("NewWriterWithFormat(nope) should fail")
	}
}

// Package config loads a JSON configuration file into a schema-less
// Document and publishes it as the process-wide configuration.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DefaultPath is the file loaded when no path is given.
const DefaultPath = "config.json"

// Document is a parsed configuration file. Root holds the decoded JSON
// value: nil, bool, json.Number, string, []any or map[string]any.
type Document struct {
	Path string
	Root any
}

// Load reads and parses the JSON file at path. An empty path loads
// DefaultPath from the working directory. Nothing global is modified.
func Load(path string) (*Document, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes exactly one JSON value from r. path only labels errors.
func Parse(r io.Reader, path string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("reading config file: %w", err)}
	}

	if off := invalidUTF8(data); off >= 0 {
		return nil, newMalformed(path, data, int64(off), fmt.Errorf("invalid UTF-8 byte %#02x", data[off]))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, newMalformed(path, data, decodeOffset(err, dec, data), decodeMessage(err))
	}

	// json.Decoder stops after the first value; anything but whitespace
	// after it is an error.
	end := dec.InputOffset()
	if _, err := dec.Token(); err != io.EOF {
		offset := end + int64(len(data[end:])-len(bytes.TrimLeft(data[end:], " \t\r\n")))
		return nil, newMalformed(path, data, offset, errors.New("extra data after top-level value"))
	}

	return &Document{Path: path, Root: root}, nil
}

// invalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func decodeMessage(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return errors.New("no JSON value could be decoded")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("unexpected end of JSON input")
	}
	return err
}

func decodeOffset(err error, dec *json.Decoder, data []byte) int64 {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		// Offset points just past the offending byte.
		if se.Offset > 0 {
			return se.Offset - 1
		}
		return 0
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return int64(len(data))
	}
	return dec.InputOffset()
}

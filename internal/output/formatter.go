package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/jasonmoo/confread/internal/config"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// Formatter transforms output into a specific format.
type Formatter interface {
	// Format transforms the result into the desired output format
	Format(result any) ([]byte, error)

	// Name returns the formatter name (e.g., "json", "yaml")
	Name() string

	// Description returns help text for --help
	Description() string
}

// Registry manages available formatters.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry with built-in formatters.
func NewRegistry() *Registry {
	r := &Registry{
		formatters: make(map[string]Formatter),
	}
	r.Register(&JSONFormatter{Pretty: true})
	r.Register(&YAMLFormatter{})
	r.Register(&PrettyFormatter{})
	r.Register(&FlatFormatter{})
	return r
}

// Register adds a formatter to the registry.
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[f.Name()] = f
}

// Get returns a formatter by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.formatters[name]; ok {
		return f, nil
	}

	if tmplPath, ok := strings.CutPrefix(name, "template:"); ok {
		return NewTemplateFormatter(tmplPath)
	}

	return nil, fmt.Errorf("formatter %q not found", name)
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// All returns all formatters with descriptions.
func (r *Registry) All() []Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formatters := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		formatters = append(formatters, f)
	}
	return formatters
}

// JSONFormatter outputs JSON.
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) Name() string        { return "json" }
func (f *JSONFormatter) Description() string { return "JSON output (default)" }

func (f *JSONFormatter) Format(result any) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if f.Pretty {
		b, err = json.MarshalIndent(result, "", "  ")
	} else {
		b, err = json.Marshal(result)
	}
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Name() string        { return "yaml" }
func (f *YAMLFormatter) Description() string { return "YAML output" }

func (f *YAMLFormatter) Format(result any) ([]byte, error) {
	data, err := toGeneric(result)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(plainNumbers(data))
}

// PrettyFormatter outputs Go syntax, useful when pasting a config into
// test fixtures.
type PrettyFormatter struct{}

func (f *PrettyFormatter) Name() string        { return "pretty" }
func (f *PrettyFormatter) Description() string { return "Go-syntax pretty print" }

func (f *PrettyFormatter) Format(result any) ([]byte, error) {
	return []byte(fmt.Sprintf("%# v\n", pretty.Formatter(result))), nil
}

// FlatFormatter outputs one key=value line per leaf, values JSON encoded.
type FlatFormatter struct{}

func (f *FlatFormatter) Name() string        { return "flat" }
func (f *FlatFormatter) Description() string { return "One key=value line per leaf" }

func (f *FlatFormatter) Format(result any) ([]byte, error) {
	data, err := toGeneric(result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var werr error
	doc := &config.Document{Root: data}
	doc.Leaves(func(path string, v any) {
		if werr != nil {
			return
		}
		b, err := json.Marshal(v)
		if err != nil {
			werr = err
			return
		}
		if path == "" {
			fmt.Fprintf(&buf, "%s\n", b)
			return
		}
		fmt.Fprintf(&buf, "%s=%s\n", path, b)
	})
	if werr != nil {
		return nil, werr
	}
	return buf.Bytes(), nil
}

// TemplateFormatter uses Go templates.
type TemplateFormatter struct {
	path string
	tmpl *template.Template
}

func NewTemplateFormatter(path string) (*TemplateFormatter, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	return &TemplateFormatter{path: path, tmpl: tmpl}, nil
}

func (f *TemplateFormatter) Name() string        { return "template:" + f.path }
func (f *TemplateFormatter) Description() string { return "Custom Go template" }

func (f *TemplateFormatter) Format(result any) ([]byte, error) {
	data, err := toGeneric(result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// toGeneric round-trips result through JSON so structs and documents
// share one representation. Numbers stay json.Number.
func toGeneric(result any) (any, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// plainNumbers replaces json.Number with int64 or float64 so encoders
// that do not know the type render bare numbers instead of strings.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainNumbers(val)
		}
		return out
	}
	return v
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

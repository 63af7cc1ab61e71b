package output

import "io"

// Writer handles output formatting.
type Writer struct {
	w         io.Writer
	formatter Formatter
}

// NewWriter creates a new JSON output writer.
func NewWriter(w io.Writer, pretty bool) *Writer {
	return &Writer{
		w:         w,
		formatter: &JSONFormatter{Pretty: pretty},
	}
}

// NewWriterWithFormat creates a writer using a formatter from DefaultRegistry.
func NewWriterWithFormat(w io.Writer, format string) (*Writer, error) {
	f, err := DefaultRegistry.Get(format)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, formatter: f}, nil
}

// Write writes any value in the writer's format.
func (w *Writer) Write(v any) error {
	b, err := w.formatter.Format(v)
	if err != nil {
		return err
	}
	_, err = w.w.Write(b)
	return err
}

// WriteError writes an error response.
func (w *Writer) WriteError(code, message string, suggestions []string, context map[string]any) error {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:        code,
			Message:     message,
			Suggestions: suggestions,
			Context:     context,
		},
	}
	return w.Write(resp)
}

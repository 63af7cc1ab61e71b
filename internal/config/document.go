package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the JSON type of a decoded value.
type Kind string

const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// KindOf returns the Kind of a value produced by Parse. Values of any
// other Go type report an empty Kind.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number, float64, int, int64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	return ""
}

// Kind returns the Kind of the document root.
func (d *Document) Kind() Kind {
	return KindOf(d.Root)
}

// Map returns the root as an object.
func (d *Document) Map() (map[string]any, bool) {
	m, ok := d.Root.(map[string]any)
	return m, ok
}

// Lookup resolves a dotted key path. Object members are addressed by
// name and array elements by decimal index, e.g. "servers.0.host".
// Inside a segment a backslash makes the next character literal, so
// `\.` is a dot within a name, and a segment written `""` is the empty
// member name. An unescaped path still resolves a member whose name
// contains dots when no single segment matches. The empty key returns
// the root.
func (d *Document) Lookup(key string) (any, error) {
	if key == "" {
		return d.Root, nil
	}

	segs := splitKey(key)
	cur := d.Root
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				// "log.level" typed without escapes.
				for j := len(segs); j > i+1; j-- {
					if next, ok = v[strings.Join(segs[i:j], ".")]; ok {
						i = j - 1
						break
					}
				}
			}
			if !ok {
				return nil, &KeyError{Key: key, Missing: seg}
			}
			cur = next
		case []any:
			n, err := strconv.Atoi(seg)
			if err != nil {
				return nil, &KeyError{Key: key, Missing: seg, Reason: "array index is not a number"}
			}
			if n < 0 || n >= len(v) {
				return nil, &KeyError{Key: key, Missing: seg, Reason: fmt.Sprintf("index out of range [0,%d)", len(v))}
			}
			cur = v[n]
		default:
			return nil, &KeyError{Key: key, Missing: seg, Reason: fmt.Sprintf("cannot descend into %s", KindOf(cur))}
		}
	}
	return cur, nil
}

// Keys returns the sorted dotted paths of every leaf in the document,
// escaped so that Lookup resolves each of them. Empty objects and arrays
// count as leaves. A scalar root has no keys.
func (d *Document) Keys() []string {
	var keys []string
	walkLeaves(d.Root, "", true, func(path string, _ any) {
		keys = append(keys, path)
	})
	slices.Sort(keys)
	return keys
}

// Leaves calls fn with the dotted path and value of every leaf. A scalar
// or empty root is reported once with the empty path.
func (d *Document) Leaves(fn func(path string, v any)) {
	switch t := d.Root.(type) {
	case map[string]any:
		if len(t) > 0 {
			walkLeaves(t, "", true, fn)
			return
		}
	case []any:
		if len(t) > 0 {
			walkLeaves(t, "", true, fn)
			return
		}
	}
	fn("", d.Root)
}

// walkLeaves reports leaves below v. At the root an empty container and
// a scalar are not leaves of their own.
func walkLeaves(v any, prefix string, root bool, fn func(string, any)) {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			if !root {
				fn(prefix, t)
			}
			return
		}
		names := make([]string, 0, len(t))
		for name := range t {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			walkLeaves(t[name], join(prefix, root, EscapeSegment(name)), false, fn)
		}
	case []any:
		if len(t) == 0 {
			if !root {
				fn(prefix, t)
			}
			return
		}
		for i, item := range t {
			walkLeaves(item, join(prefix, root, strconv.Itoa(i)), false, fn)
		}
	default:
		if !root {
			fn(prefix, t)
		}
	}
}

func join(prefix string, root bool, seg string) string {
	if root {
		return seg
	}
	return prefix + "." + seg
}

// EscapeSegment encodes one member name as a key path segment.
func EscapeSegment(name string) string {
	if name == "" {
		return `""`
	}
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '.', '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitKey splits a key path on unescaped dots and decodes each segment.
func splitKey(key string) []string {
	var (
		segs    []string
		val     strings.Builder
		raw     strings.Builder
		escaped bool
	)
	flush := func() {
		if raw.String() == `""` {
			segs = append(segs, "")
		} else {
			segs = append(segs, val.String())
		}
		val.Reset()
		raw.Reset()
	}
	for _, r := range key {
		switch {
		case escaped:
			val.WriteRune(r)
			raw.WriteRune('\\')
			raw.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '.':
			flush()
		default:
			val.WriteRune(r)
			raw.WriteRune(r)
		}
	}
	if escaped {
		val.WriteRune('\\')
		raw.WriteRune('\\')
	}
	flush()
	return segs
}

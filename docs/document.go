// Package docs provides the schemaless document model used throughout
// vitae: typed accessors with documented defaults, deep copies for pipeline
// isolation, alias-tolerant fuzzy retrieval, and the layered chain merge
// used to overlay one collection on another.
package docs

// Document is one schemaless record: a mapping of field name to value.
// Values are scalars, sequences, or nested documents as produced by a YAML
// or JSON decoder. Fields are read defensively through the typed accessors;
// there is no fixed schema.
type Document map[string]any

// Collection is an ordered list of documents of the same record kind.
type Collection []Document

// ID returns the document's identity under "_id", or "" when absent.
func (d Document) ID() string {
	return d.Str("_id")
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Str returns the string under key, or "" when the key is absent or holds a
// non-string value.
func (d Document) Str(key string) string {
	s, _ := d[key].(string)
	return s
}

// StrOr returns the string under key, or fallback when absent or non-string.
func (d Document) StrOr(key, fallback string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return fallback
}

// Int returns the integer under key. Whole-valued floats (a YAML decoder may
// produce either) are accepted.
func (d Document) Int(key string) (int, bool) {
	return AsInt(d[key])
}

// IntOr returns the integer under key, or fallback when absent or
// non-numeric.
func (d Document) IntOr(key string, fallback int) int {
	if n, ok := AsInt(d[key]); ok {
		return n
	}
	return fallback
}

// Float returns the float under key.
func (d Document) Float(key string) (float64, bool) {
	return AsFloat(d[key])
}

// FloatOr returns the float under key, or fallback when absent or
// non-numeric.
func (d Document) FloatOr(key string, fallback float64) float64 {
	if f, ok := AsFloat(d[key]); ok {
		return f
	}
	return fallback
}

// List returns the sequence under key. A scalar value is treated as a
// one-element sequence; an absent key yields nil.
func (d Document) List(key string) []any {
	v, ok := d[key]
	if !ok || v == nil {
		return nil
	}
	switch seq := v.(type) {
	case []any:
		return seq
	case []Document:
		out := make([]any, len(seq))
		for i, sub := range seq {
			out[i] = sub
		}
		return out
	case []string:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

// StrList returns the string members of the sequence under key, skipping
// non-string members.
func (d Document) StrList(key string) []string {
	items := d.List(key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DocList returns the nested documents of the sequence under key, skipping
// non-mapping members.
func (d Document) DocList(key string) []Document {
	items := d.List(key)
	if items == nil {
		return nil
	}
	out := make([]Document, 0, len(items))
	for _, it := range items {
		if sub, ok := AsDocument(it); ok {
			out = append(out, sub)
		}
	}
	return out
}

// Sub returns the nested document under key.
func (d Document) Sub(key string) (Document, bool) {
	return AsDocument(d[key])
}

// DeepCopy returns a copy of the document with all nested mappings and
// sequences copied. Filters copy before normalizing so callers' inputs are
// never mutated.
func (d Document) DeepCopy() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = deepCopyValue(v)
	}
	return out
}

// DeepCopy returns a copy of the collection with every document deep-copied.
func (c Collection) DeepCopy() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, d := range c {
		out[i] = d.DeepCopy()
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case Document:
		return val.DeepCopy()
	case map[string]any:
		return Document(val).DeepCopy()
	case []any:
		out := make([]any, len(val))
		for i, it := range val {
			out[i] = deepCopyValue(it)
		}
		return out
	case []Document:
		out := make([]Document, len(val))
		for i, sub := range val {
			out[i] = sub.DeepCopy()
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// AsInt converts a scalar to an integer. Whole-valued floats are accepted.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if float64(n) == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat converts a scalar to a float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsDocument converts a decoded mapping value to a Document.
func AsDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, m != nil
	case map[string]any:
		return Document(m), m != nil
	default:
		return nil, false
	}
}

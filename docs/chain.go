package docs

// Chain is a lazy, read-only overlay of two documents. Lookups check the
// superior layer first and fall through to the inferior layer; when both
// layers hold a mapping under the same key, the nested mappings are chained
// recursively instead of the superior mapping replacing the inferior one
// wholesale.
//
// The chain never copies its layers. A report that reads three fields of a
// merged grant pays for three lookups, not a full merge.
type Chain struct {
	inferior Document
	superior Document
}

// Merge overlays superior on inferior. Neither document is copied or
// mutated.
func Merge(inferior, superior Document) *Chain {
	return &Chain{inferior: inferior, superior: superior}
}

// Get returns the merged value under key. The superior layer wins on
// conflict; nested mappings present in both layers are returned as a nested
// *Chain.
func (c *Chain) Get(key string) (any, bool) {
	sup, supOK := c.superior[key]
	inf, infOK := c.inferior[key]
	if supOK && infOK {
		supDoc, supIsDoc := AsDocument(sup)
		infDoc, infIsDoc := AsDocument(inf)
		if supIsDoc && infIsDoc {
			return Merge(infDoc, supDoc), true
		}
	}
	if supOK {
		return sup, true
	}
	if infOK {
		return inf, true
	}
	return nil, false
}

// Sub returns the nested merged view under key. A mapping present in only
// one layer is chained against an empty layer so the caller always gets a
// *Chain.
func (c *Chain) Sub(key string) (*Chain, bool) {
	v, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	switch nested := v.(type) {
	case *Chain:
		return nested, true
	default:
		if doc, isDoc := AsDocument(nested); isDoc {
			return Merge(nil, doc), true
		}
	}
	return nil, false
}

// Str returns the merged string under key, or "" when absent or non-string.
func (c *Chain) Str(key string) string {
	v, _ := c.Get(key)
	s, _ := v.(string)
	return s
}

// ID returns the merged document identity.
func (c *Chain) ID() string {
	return c.Str("_id")
}

// Has reports whether key is present in either layer.
func (c *Chain) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the union of both layers' keys. Inferior-only keys follow
// the inferior's iteration, then superior-only keys; order is not otherwise
// specified.
func (c *Chain) Keys() []string {
	keys := make([]string, 0, len(c.inferior)+len(c.superior))
	for k := range c.inferior {
		keys = append(keys, k)
	}
	for k := range c.superior {
		if _, shared := c.inferior[k]; !shared {
			keys = append(keys, k)
		}
	}
	return keys
}

// Len returns the number of distinct keys across both layers.
func (c *Chain) Len() int {
	n := len(c.inferior)
	for k := range c.superior {
		if _, shared := c.inferior[k]; !shared {
			n++
		}
	}
	return n
}

// Flatten materializes the merged view as a plain document, recursing into
// nested chains. Use it only when a consumer needs the whole record; field
// access through Get stays lazy.
func (c *Chain) Flatten() Document {
	out := make(Document, c.Len())
	for _, k := range c.Keys() {
		v, _ := c.Get(k)
		if nested, isChain := v.(*Chain); isChain {
			out[k] = nested.Flatten()
			continue
		}
		out[k] = v
	}
	return out
}

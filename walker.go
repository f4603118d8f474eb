package mailwalk

import (
	"slices"
	"strings"
)

// DefaultKey is the object key whose string values are collected.
const DefaultKey = "email"

// Walker collects the string values stored under a target key anywhere in a
// decoded JSON value. The zero value is not usable; use NewWalker.
type Walker struct {
	key         string
	stringLists bool
}

// NewWalker returns a Walker matching DefaultKey, configured by opts.
func NewWalker(opts ...Option) *Walker {
	w := &Walker{key: DefaultKey}
	Apply(w, opts...)
	return w
}

// Extract walks value depth-first and returns every string found under a key
// that case-insensitively equals "email". See Walker.Extract.
func Extract(value any, opts ...Option) []string {
	return NewWalker(opts...).Extract(value)
}

// Extract walks value depth-first and returns the matched strings in
// encounter order: object entries in document order, array elements in index
// order. The result is never nil.
//
// A matched key whose value is not a string is skipped entirely, including
// any matches nested inside it, so {"email": {"email": "a@x.com"}} yields
// nothing. WithStringLists relaxes this for arrays of strings only.
//
// Objects may be D or map[string]any; map keys are visited in sorted order.
// Arrays may be A or []any. Any other value contributes nothing.
func (w *Walker) Extract(value any) []string {
	out := []string{}
	w.walk(value, &out)
	return out
}

func (w *Walker) walk(value any, out *[]string) {
	switch v := value.(type) {
	case D:
		for _, e := range v {
			w.visit(e.Key, e.Value, out)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			w.visit(k, v[k], out)
		}
	case A:
		for _, elem := range v {
			w.walk(elem, out)
		}
	case []any:
		for _, elem := range v {
			w.walk(elem, out)
		}
	}
}

func (w *Walker) visit(key string, value any, out *[]string) {
	if strings.EqualFold(key, w.key) {
		switch v := value.(type) {
		case string:
			*out = append(*out, v)
		case A:
			w.appendStrings(v, out)
		case []any:
			w.appendStrings(v, out)
		}
		return
	}
	if isContainer(value) {
		w.walk(value, out)
	}
}

func (w *Walker) appendStrings(list []any, out *[]string) {
	if !w.stringLists {
		return
	}
	for _, elem := range list {
		if s, ok := elem.(string); ok {
			*out = append(*out, s)
		}
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case D, A, map[string]any, []any:
		return true
	}
	return false
}

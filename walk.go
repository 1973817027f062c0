package scrub

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// walker removes every value accepted by match from a document tree.
type walker struct {
	match func(any) bool
	opts  options
}

// root cleans object, which must be an object or a sequence.
func (w *walker) root(object any) (any, error) {
	switch o := object.(type) {
	case map[string]any:
		w.object(o)
		return o, nil
	case []any:
		return w.sequence(o), nil
	}
	return nil, checkObject(object)
}

// checkObject returns a KindTypeError error unless object is an object or a
// sequence.
func checkObject(object any) error {
	switch object.(type) {
	case map[string]any, []any:
		return nil
	}
	return &Error{
		Kind: KindTypeError,
		Err:  validation.NewError("scrub_type_error", fmt.Sprintf("object must be a map[string]any or []any, got %T", object)),
	}
}

func (w *walker) object(m map[string]any) {
	for k, v := range m {
		if w.match(v) {
			delete(m, k)
			continue
		}
		if !w.opts.recursive {
			continue
		}
		c, ok, empty := w.child(v)
		switch {
		case !ok:
		case w.opts.pruneEmpty && empty:
			delete(m, k)
		default:
			if _, isSeq := c.([]any); isSeq {
				m[k] = c
			}
		}
	}
}

// sequence compacts s in place and returns the shortened slice.
func (w *walker) sequence(s []any) []any {
	out := s[:0]
	for _, v := range s {
		if w.match(v) {
			continue
		}
		if w.opts.recursive {
			if c, ok, empty := w.child(v); ok {
				if w.opts.pruneEmpty && empty {
					continue
				}
				v = c
			}
		}
		out = append(out, v)
	}
	clear(s[len(out):])
	return out
}

// child cleans v if it is a container and reports whether it was one and
// whether it is empty afterwards.
func (w *walker) child(v any) (cleaned any, container, empty bool) {
	switch c := v.(type) {
	case map[string]any:
		w.object(c)
		return c, true, len(c) == 0
	case []any:
		c = w.sequence(c)
		return c, true, len(c) == 0
	}
	return v, false, false
}

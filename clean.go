package scrub

// CleanObject removes every key of object whose value matches cleaner, and
// returns object. object must be a map[string]any or a []any; removed
// sequence elements are compacted out, so callers holding a []any must use
// the returned value.
//
// A slice or array cleaner is a list of values to remove unless
// [WholeValue] is set; any other cleaner, including nil, is a single value.
// Numbers match across Go numeric types (int 1 matches float64 1), while
// maps, slices and funcs only match themselves.
//
// Nested objects and sequences are cleaned as well unless Recursive(false)
// is given, and with [PruneEmpty] those left empty are removed. Only
// map[string]any and []any are walked; typed containers such as
// []map[string]any or map[string]string are treated as opaque values.
func CleanObject(object, cleaner any, opts ...Option) (any, error) {
	o := newOptions(opts)
	w := &walker{opts: o, match: valueMatcher(cleaner, o.whole)}
	return w.root(object)
}

func valueMatcher(cleaner any, whole bool) func(any) bool {
	if !whole {
		if values, ok := sequence(cleaner); ok {
			return func(v any) bool {
				for _, c := range values {
					if sameValueZero(v, c) {
						return true
					}
				}
				return false
			}
		}
	}
	return func(v any) bool {
		return strictEqual(v, cleaner)
	}
}

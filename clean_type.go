package scrub

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var knownTypeNames = func() []any {
	names := make([]any, 0, len(typeNames))
	for name := range typeNames {
		names = append(names, name)
	}
	return names
}()

// CleanObjectByType removes every key of object whose value belongs to the
// named type category, and returns object. Categories follow the OpenAPI
// type names: "null", "boolean", "integer", "number", "string", "object" and
// "array", plus "function" for Go funcs. "undefined", "nil", "bool", "map",
// "slice" and "func" are accepted as aliases. Names are case-insensitive.
//
// Objects and sequences that are not removed themselves are cleaned
// recursively unless Recursive(false) is given. WholeValue has no effect.
//
//	doc, err := scrub.CleanObjectByType(doc, "null", scrub.PruneEmpty(true))
func CleanObjectByType(object any, typeName string, opts ...Option) (any, error) {
	if err := checkObject(object); err != nil {
		return nil, err
	}
	category, err := resolveTypeName(typeName)
	if err != nil {
		return nil, err
	}
	w := &walker{
		opts:  newOptions(opts),
		match: func(v any) bool { return isType(v, category) },
	}
	return w.root(object)
}

func resolveTypeName(typeName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(typeName))
	if err := validation.Validate(name, validation.Required); err != nil {
		return "", argumentError(KindMissingArgument, err)
	}
	if err := validation.Validate(name, validation.In(knownTypeNames...).Error("must name a known type category")); err != nil {
		return "", argumentError(KindInvalidType, err)
	}
	return typeNames[name], nil
}

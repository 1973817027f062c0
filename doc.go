// Package scrub removes unwanted values from decoded documents and tidies
// string capitalisation.
//
// Documents are the trees produced by encoding/json or yaml.v3 when decoding
// into any: map[string]any objects, []any sequences and scalars. Cleaning
// mutates the tree in place and returns it:
//
//	doc, err := scrub.CleanObject(doc, nil, scrub.PruneEmpty(true))
//
// removes every nil value at any depth, then drops objects and sequences left
// empty by the removal.
//
// [CleanObjectByType] removes values by type category instead ("string",
// "number", "integer", "object", ...), and [CapitaliseFirst] upper-cases the
// first letter of a string, optionally fixing sentence starts after '.', '!'
// and '?'.
//
// For request bodies and config files, [UnmarshalAndClean],
// [DecodeAndClean] and [UnmarshalYAMLAndClean] combine decoding with
// cleaning in one step.
//
// Errors are returned as [*Error] values; compare them with [errors.Is]
// against [ErrTypeMismatch], [ErrMissingArgument] and [ErrInvalidType].
//
// Sub-packages:
//   - transform – struct string transformation utilities
package scrub

// Package transform rewrites string fields of structs recursively. It is
// the struct counterpart of the map cleaners in [scrub], typically used to
// tidy request types after decoding.
package transform

package scrub

// Option configures [CleanObject] and [CleanObjectByType].
type Option func(*options)

type options struct {
	whole      bool
	recursive  bool
	pruneEmpty bool
}

func newOptions(opts []Option) options {
	o := options{recursive: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WholeValue makes CleanObject treat a slice cleaner as one value to match,
// instead of a list of values. Defaults to false. CleanObjectByType ignores it.
func WholeValue(b bool) Option {
	return func(o *options) { o.whole = b }
}

// Recursive controls whether nested objects and sequences are cleaned too.
// Defaults to true.
func Recursive(b bool) Option {
	return func(o *options) { o.recursive = b }
}

// PruneEmpty removes objects and sequences that are empty after their own
// cleaning. Defaults to false.
func PruneEmpty(b bool) Option {
	return func(o *options) { o.pruneEmpty = b }
}

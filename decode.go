package scrub

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Cleaner cleans a decoded document in place and returns it.
type Cleaner func(object any) (any, error)

// ByValue returns a Cleaner that calls [CleanObject] with cleaner and opts.
func ByValue(cleaner any, opts ...Option) Cleaner {
	return func(object any) (any, error) {
		return CleanObject(object, cleaner, opts...)
	}
}

// ByType returns a Cleaner that calls [CleanObjectByType] with typeName and opts.
func ByType(typeName string, opts ...Option) Cleaner {
	return func(object any) (any, error) {
		return CleanObjectByType(object, typeName, opts...)
	}
}

// UnmarshalAndClean decodes the JSON document b, then cleans it with c.
func UnmarshalAndClean(b []byte, c Cleaner) (any, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return c(doc)
}

// DecodeAndClean reads one JSON document from r using a streaming decoder,
// then cleans it with c. Use this instead of [UnmarshalAndClean] when reading
// directly from an [io.Reader] such as an HTTP request body.
func DecodeAndClean(r io.Reader, c Cleaner) (any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return c(doc)
}

// UnmarshalYAMLAndClean decodes the YAML document b, then cleans it with c.
// Mappings with non-string keys decode to map[any]any and are left alone.
func UnmarshalYAMLAndClean(b []byte, c Cleaner) (any, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return c(doc)
}

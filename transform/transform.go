package transform

import (
	"reflect"
	"strings"

	"github.com/Gobd/scrub"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	StructStringFunc(v, strings.ToLower)
}

// StructCapitaliseFirst runs [scrub.CapitaliseFirst] with opts on every
// non-empty string field in the struct recursively.
func StructCapitaliseFirst(v any, opts ...scrub.CaseOption) {
	StructStringFunc(v, func(s string) string {
		out, err := scrub.CapitaliseFirst(s, opts...)
		if err != nil {
			return s
		}
		return out
	})
}

// StructStringFunc applies f to every string field in the struct recursively.
// v must be a pointer to a struct; anything else is left untouched.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	walk(rv.Elem(), f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// walk rewrites the strings reachable from rv. rv must be settable for
// strings to change; map values are copied out, rewritten and stored back.
func walk(rv reflect.Value, f func(string) string) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(f(rv.String()))
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if field := rv.Field(i); field.CanSet() {
				walk(field, f)
			}
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			walk(rv.Elem(), f)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			walk(rv.Index(i), f)
		}
	case reflect.Map:
		if rv.IsNil() {
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			val := iter.Value()
			switch val.Kind() {
			case reflect.String, reflect.Struct, reflect.Array:
				cp := reflect.New(val.Type()).Elem()
				cp.Set(val)
				walk(cp, f)
				rv.SetMapIndex(iter.Key(), cp)
			case reflect.Pointer, reflect.Slice, reflect.Map:
				walk(val, f)
			}
		}
	case reflect.Interface:
		// The dynamic value is not addressable; leave it alone.
	}
}

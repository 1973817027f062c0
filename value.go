package scrub

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// TypeFunction is the type name of Go func values. OpenAPI has no equivalent.
const TypeFunction = "function"

// typeNames maps every accepted (lower-case) type name to its category.
var typeNames = map[string]string{
	openapi3.TypeNull:    openapi3.TypeNull,
	openapi3.TypeBoolean: openapi3.TypeBoolean,
	openapi3.TypeInteger: openapi3.TypeInteger,
	openapi3.TypeNumber:  openapi3.TypeNumber,
	openapi3.TypeString:  openapi3.TypeString,
	openapi3.TypeObject:  openapi3.TypeObject,
	openapi3.TypeArray:   openapi3.TypeArray,
	TypeFunction:         TypeFunction,

	"undefined": openapi3.TypeNull,
	"nil":       openapi3.TypeNull,
	"bool":      openapi3.TypeBoolean,
	"map":       openapi3.TypeObject,
	"slice":     openapi3.TypeArray,
	"func":      TypeFunction,
}

// typeOf returns the type category of v, or "" when v fits none of them
// (channels, unsafe pointers, complex numbers).
func typeOf(v any) string {
	if v == nil {
		return openapi3.TypeNull
	}
	if _, ok := v.(json.Number); ok {
		return openapi3.TypeNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return openapi3.TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return openapi3.TypeNumber
	case reflect.String:
		return openapi3.TypeString
	case reflect.Map, reflect.Struct:
		return openapi3.TypeObject
	case reflect.Slice, reflect.Array:
		return openapi3.TypeArray
	case reflect.Func:
		return TypeFunction
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return openapi3.TypeNull
		}
		return typeOf(rv.Elem().Interface())
	}
	return ""
}

// isType reports whether v belongs to category. Integers are the numbers
// with no fractional part, so every integer is also a number.
func isType(v any, category string) bool {
	if category == openapi3.TypeInteger {
		n, ok := numeric(indirect(v))
		if !ok {
			return false
		}
		if n.kind != floatNum {
			return true
		}
		return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
	}
	t := typeOf(v)
	return t != "" && t == category
}

// indirect follows pointers and interfaces down to the value they hold.
func indirect(v any) any {
	for v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}
	return nil
}

type numKind uint8

const (
	intNum numKind = iota
	uintNum
	floatNum
)

// num holds a number in the widest representation of its kind, so that
// integers are compared exactly.
type num struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func (n num) float() float64 {
	switch n.kind {
	case intNum:
		return float64(n.i)
	case uintNum:
		return float64(n.u)
	}
	return n.f
}

// numeric returns v as a num if it is any Go numeric kind or a json.Number.
// Pointers are not followed.
func numeric(v any) (num, bool) {
	if jn, ok := v.(json.Number); ok {
		if i, err := jn.Int64(); err == nil {
			return num{kind: intNum, i: i}, true
		}
		f, err := jn.Float64()
		return num{kind: floatNum, f: f}, err == nil
	}
	if v == nil {
		return num{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return num{kind: intNum, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return num{kind: uintNum, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return num{kind: floatNum, f: rv.Float()}, true
	}
	return num{}, false
}

// numEqual compares integers exactly and falls back to float64 only when a
// float is involved.
func numEqual(a, b num) bool {
	switch {
	case a.kind == intNum && b.kind == intNum:
		return a.i == b.i
	case a.kind == uintNum && b.kind == uintNum:
		return a.u == b.u
	case a.kind == intNum && b.kind == uintNum:
		return a.i >= 0 && uint64(a.i) == b.u
	case a.kind == uintNum && b.kind == intNum:
		return b.i >= 0 && uint64(b.i) == a.u
	}
	return a.float() == b.float()
}

// strictEqual compares like JavaScript's ===: numbers by value with NaN
// unequal to itself, containers and funcs by identity, everything else
// with == when the dynamic values are comparable.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := numeric(a); ok {
		y, ok := numeric(b)
		return ok && numEqual(x, y)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		// Zero-capacity slices share one base address, so they carry no identity.
		if ra.Cap() == 0 || rb.Cap() == 0 {
			return false
		}
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	if !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return a == b
}

// sameValueZero is strictEqual except that NaN equals NaN. Membership tests
// use it, like Array.prototype.includes.
func sameValueZero(a, b any) bool {
	if x, ok := numeric(a); ok {
		if y, ok := numeric(b); ok && math.IsNaN(x.float()) && math.IsNaN(y.float()) {
			return true
		}
	}
	return strictEqual(a, b)
}

// sequence returns the elements of v if it is a slice or array.
func sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

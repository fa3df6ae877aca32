/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package anymap provides uniform string-keyed access over the container
// shapes that error values and input arguments arrive in: map[string]any
// (decoded JSON, goerr values, gqlgen variable maps), other string-keyed
// maps, and structs (gqlgen generates input types as structs with json
// tags).
//
// The selector engine and the mapper walk both need "does this value have
// key K, and what is under it?" without caring which of those shapes they
// were handed; this package is that single answer.
package anymap

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Get returns the value stored under key in container, and whether the key
// is present at all. A present key with a nil value (an explicit GraphQL
// null) reports true.
//
// Supported containers:
//   - map[string]any (fast path, no reflection);
//   - any other map whose key type is string (or a string kind);
//   - structs and pointers to structs: exported fields, matched by json tag
//     first, then by exact field name, then by the lowerCamel form of the
//     field name. A nil pointer field counts as absent.
//
// Everything else (scalars, lists, nil) has no keys.
func Get(container any, key string) (any, bool) {
	switch m := container.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil, false
}

// Has reports whether container has a value for key.
func Has(container any, key string) bool {
	_, ok := Get(container, key)
	return ok
}

// HasKeys reports whether container is a shape that can have string keys at
// all: a string-keyed map or a (pointer to) struct.
func HasKeys(container any) bool {
	switch container.(type) {
	case nil:
		return false
	case map[string]any:
		return true
	}
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

// IsList reports whether v is a slice or array. []byte is excluded: a byte
// slice is one scalar value (usually text), not a collection of inputs.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// Elements returns the elements of a list as []any. The fast path avoids
// reflection for the []any shape decoded JSON produces.
func Elements(v any) ([]any, bool) {
	if !IsList(v) {
		return nil, false
	}
	if el, ok := v.([]any); ok {
		return el, true
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// StringKeyed converts any string-keyed map into map[string]any. The fast
// path returns map[string]any unchanged (no copy).
func StringKeyed(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// structField resolves key against the visible exported fields of rv.
func structField(rv reflect.Value, key string) (any, bool) {
	fields := reflect.VisibleFields(rv.Type())

	// pass 1: json tag
	for _, f := range fields {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if name, _, _ := strings.Cut(tag, ","); name == key {
			return fieldValue(rv.FieldByIndex(f.Index))
		}
	}
	// pass 2: exact field name, then lowerCamel of the field name
	for _, f := range fields {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if f.Name == key || lowerFirst(f.Name) == key {
			return fieldValue(rv.FieldByIndex(f.Index))
		}
	}
	return nil, false
}

// fieldValue unwraps one level of pointer, treating nil as absent. gqlgen
// generates optional input fields as pointers, and an unset optional field
// must behave like a missing map key.
func fieldValue(fv reflect.Value) (any, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil, false
		}
		return fv.Elem().Interface(), true
	}
	return fv.Interface(), true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

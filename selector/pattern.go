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

package selector

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"dirpx.dev/gqlerrors/internal/anymap"
)

type patternKind uint8

const (
	kindInvalid patternKind = iota
	kindEq
	kindType
	kindErrIs
	kindErrAs
	kindMap
	kindAny
	kindIsMap
	kindIsList
	kindFunc
)

// Pattern is a structural predicate over an arbitrary error value. Patterns
// are built from the constructors below and compose through Map; the zero
// Pattern matches nothing.
type Pattern struct {
	kind   patternKind
	lit    any
	typ    reflect.Type
	target error
	probe  func(error) bool
	keys   map[string]Pattern
	fn     func(any) bool
	label  string
}

// Eq matches values deeply equal to want. Eq(nil) matches only nil.
func Eq(want any) Pattern {
	return Pattern{kind: kindEq, lit: want}
}

// TypeOf matches values whose dynamic type is exactly T. When T is an
// interface type, any value implementing it matches.
func TypeOf[T any]() Pattern {
	return Pattern{kind: kindType, typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// ErrIs matches error values whose chain contains target, in the sense of
// errors.Is. Non-error values never match.
func ErrIs(target error) Pattern {
	return Pattern{kind: kindErrIs, target: target}
}

// ErrAs matches error values whose chain contains a T, in the sense of
// errors.As. Non-error values never match.
func ErrAs[T error]() Pattern {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return Pattern{
		kind: kindErrAs,
		probe: func(err error) bool {
			var out T
			return errors.As(err, &out)
		},
		label: t.String(),
	}
}

// Map matches keyed values: string-keyed maps, and structs whose exported
// fields act as keys. Every pattern key must be present in the value and its
// sub-pattern must match the value under it, recursively. An empty key set
// matches any keyed value.
func Map(keys map[string]Pattern) Pattern {
	return Pattern{kind: kindMap, keys: keys}
}

// Any matches every value, including nil. Placed last in a set it acts as a
// catch-all.
func Any() Pattern {
	return Pattern{kind: kindAny}
}

// IsMap matches any keyed value, regardless of its contents.
func IsMap() Pattern {
	return Pattern{kind: kindIsMap}
}

// IsList matches slices and arrays. []byte is a scalar, not a list.
func IsList() Pattern {
	return Pattern{kind: kindIsList}
}

// Func wraps an arbitrary predicate for matches the structural constructors
// cannot express.
func Func(fn func(v any) bool) Pattern {
	return Pattern{kind: kindFunc, fn: fn}
}

// Match reports whether v satisfies the pattern.
func (p Pattern) Match(v any) bool {
	switch p.kind {
	case kindEq:
		return reflect.DeepEqual(v, p.lit)
	case kindType:
		if v == nil {
			return false
		}
		t := reflect.TypeOf(v)
		if p.typ.Kind() == reflect.Interface {
			return t.Implements(p.typ)
		}
		return t == p.typ
	case kindErrIs:
		err, ok := v.(error)
		return ok && errors.Is(err, p.target)
	case kindErrAs:
		err, ok := v.(error)
		return ok && p.probe(err)
	case kindMap:
		if !anymap.HasKeys(v) {
			return false
		}
		for key, sub := range p.keys {
			child, ok := anymap.Get(v, key)
			if !ok || !sub.Match(child) {
				return false
			}
		}
		return true
	case kindAny:
		return true
	case kindIsMap:
		return anymap.HasKeys(v)
	case kindIsList:
		return anymap.IsList(v)
	case kindFunc:
		return p.fn(v)
	}
	return false
}

// String renders a compact description of the pattern, used in no-match
// warnings.
func (p Pattern) String() string {
	switch p.kind {
	case kindEq:
		return fmt.Sprintf("eq(%v)", p.lit)
	case kindType:
		return "type(" + p.typ.String() + ")"
	case kindErrIs:
		return fmt.Sprintf("is(%v)", p.target)
	case kindErrAs:
		return "as(" + p.label + ")"
	case kindMap:
		keys := make([]string, 0, len(p.keys))
		for k := range p.keys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + p.keys[k].String()
		}
		return "map{" + strings.Join(parts, ", ") + "}"
	case kindAny:
		return "any"
	case kindIsMap:
		return "is_map"
	case kindIsList:
		return "is_list"
	case kindFunc:
		return "func"
	}
	return "invalid"
}

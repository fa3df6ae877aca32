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
	"fmt"
	"strings"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/internal/anymap"
)

// FallbackMessage is the client-safe message on the generic record returned
// when no selector matches. It mirrors apis.FallbackMessage so the engine
// and the rendering boundary degrade to the same wire text.
const FallbackMessage = apis.FallbackMessage

// component tags no-match warnings in the log output.
const component = "selector"

// A Selector pairs a structural predicate with the transform invoked when
// the predicate is the first in its set to match.
//
// Transform receives the matched value and returns the resulting records as
// one of: a Record, a []Record, a []*TopLevelError, a []*UserError, or a
// []any whose elements are Records. nil and empty results are valid — a
// transform may decide the value produces no records at all. Any other
// shape panics; see Classify.
type Selector struct {
	Predicate Pattern
	Transform func(v any) any
}

// Set is an ordered sequence of selectors. Order is the tie-break: the first
// predicate to match wins. A frozen Set is safe for concurrent use.
type Set []Selector

// String renders the predicates of the set in order.
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, sel := range s {
		parts[i] = sel.Predicate.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Option configures a Classify call.
type Option func(*options)

type options struct {
	log         apis.Logger
	fallbackExt map[string]any
}

// WithLogger routes no-match warnings to l. The default discards them.
func WithLogger(l apis.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithFallbackExtensions sets the extensions carried by the generic record
// produced when no selector matches.
func WithFallbackExtensions(ext map[string]any) Option {
	return func(o *options) {
		o.fallbackExt = ext
	}
}

// Classify finds the first selector in set whose predicate matches v and
// returns the records its transform produces, with matched=true.
//
// Slices and arrays (except []byte) hold many discrete error values: each
// element is classified independently and the results concatenated in
// element order. The reported match is then true only if every element
// matched.
//
// When no predicate matches, Classify logs a warning naming the value and
// the set, and returns a single generic internal-server-error record with
// matched=false. Classification never fails on unrecognized data.
//
// A transform returning anything but records is a misconfigured selector,
// not a runtime condition: Classify panics so the mistake surfaces in
// development instead of producing an unrenderable response.
func Classify(v any, set Set, opts ...Option) ([]gqlerrors.Record, bool) {
	o := options{log: apis.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	return classify(v, set, &o)
}

func classify(v any, set Set, o *options) ([]gqlerrors.Record, bool) {
	if elems, ok := anymap.Elements(v); ok {
		var out []gqlerrors.Record
		matched := true
		for _, el := range elems {
			recs, ok := classify(el, set, o)
			out = append(out, recs...)
			matched = matched && ok
		}
		return out, matched
	}

	for _, sel := range set {
		if sel.Predicate.Match(v) {
			return normalize(sel.Transform(v)), true
		}
	}

	o.log.Warn(component, "no selector matched, returning the generic fallback",
		"value", fmt.Sprintf("%+v", v),
		"selectors", set.String())

	fb := gqlerrors.Top(category.InternalServerError, FallbackMessage)
	if len(o.fallbackExt) > 0 {
		fb = fb.WithExtensions(o.fallbackExt)
	}
	return []gqlerrors.Record{fb}, false
}

// normalize flattens a transform result into records. Any non-record shape
// is a contract violation and panics.
func normalize(out any) []gqlerrors.Record {
	switch out := out.(type) {
	case nil:
		return nil
	case gqlerrors.Record:
		return []gqlerrors.Record{mustRecord(out)}
	case []gqlerrors.Record:
		recs := make([]gqlerrors.Record, 0, len(out))
		for _, r := range out {
			recs = append(recs, mustRecord(r))
		}
		return recs
	case []*gqlerrors.TopLevelError:
		recs := make([]gqlerrors.Record, 0, len(out))
		for _, r := range out {
			if r == nil {
				panic("gqlerrors/selector: transform returned a nil record")
			}
			recs = append(recs, r)
		}
		return recs
	case []*gqlerrors.UserError:
		recs := make([]gqlerrors.Record, 0, len(out))
		for _, r := range out {
			if r == nil {
				panic("gqlerrors/selector: transform returned a nil record")
			}
			recs = append(recs, r)
		}
		return recs
	case []any:
		recs := make([]gqlerrors.Record, 0, len(out))
		for _, el := range out {
			r, ok := el.(gqlerrors.Record)
			if !ok {
				panic(fmt.Sprintf("gqlerrors/selector: transform returned a %T inside its result list, want a record", el))
			}
			recs = append(recs, mustRecord(r))
		}
		return recs
	default:
		panic(fmt.Sprintf("gqlerrors/selector: transform returned %T, want a record or a list of records", out))
	}
}

// mustRecord rejects typed-nil records hiding inside the interface; they
// satisfy Record but explode at render time.
func mustRecord(r gqlerrors.Record) gqlerrors.Record {
	switch rec := r.(type) {
	case *gqlerrors.TopLevelError:
		if rec == nil {
			panic("gqlerrors/selector: transform returned a nil record")
		}
	case *gqlerrors.UserError:
		if rec == nil {
			panic("gqlerrors/selector: transform returned a nil record")
		}
	}
	return r
}

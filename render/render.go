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

package render

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
)

// component tags degrade warnings in the log output.
const component = "render"

// ErrUnrecognized is wrapped by Record, List and JSON under
// apis.PolicyRaise when a value is neither a top-level nor a user error.
var ErrUnrecognized = errors.New("gqlerrors/render: unrecognized record value")

// TopLevel renders an operation-wide error into its wire view.
//
// The extensions object is assembled in layers: the caller extensions
// (values coerced JSON-safe), then the category under apis.ExtensionCode,
// then the injected apis.ExtensionRequestID and apis.ExtensionTimestamp
// members. Later layers win on key conflict — code, request_id and
// timestamp belong to the boundary, not to callers.
//
// An empty or non-normalized category is replaced with
// category.InternalServerError and logged. The boundary never guesses what
// a malformed category meant.
func TopLevel(e apis.CategorizedError, opts ...Option) apis.TopLevelView {
	o := buildOptions(opts).resolved()
	return topLevel(e, &o)
}

func topLevel(e apis.CategorizedError, o *options) apis.TopLevelView {
	c := category.Category(e.ErrorCategory())
	if err := category.Validate(c); err != nil {
		o.log.Warn(component, "invalid category on top-level error, rendering as internal",
			"category", e.ErrorCategory(),
			"reason", err.Error())
		c = category.InternalServerError
	}

	src := e.ErrorExtensions()
	ext := make(map[string]any, len(src)+3)
	for k, v := range src {
		ext[o.key(k)] = o.coerce(v)
	}
	o.stamp(ext, c)

	return apis.TopLevelView{Message: e.ErrorMessage(), Extensions: ext}
}

// stamp writes the boundary-owned extension members.
func (o *options) stamp(ext map[string]any, c category.Category) {
	ext[o.key(apis.ExtensionCode)] = string(c)
	ext[o.key(apis.ExtensionRequestID)] = o.requestID
	ext[o.key(apis.ExtensionTimestamp)] = o.timestamp.UTC().Format(time.RFC3339)
}

// User renders a field-scoped error into its wire view. The field path is
// copied, so the view stays stable however the record is reused afterwards.
//
// Options are accepted for call-site symmetry with TopLevel; none currently
// change the user view. Key casing applies to object keys, and a field path
// is data, not keys — rewriting its segments is the mapper's job.
func User(e apis.FieldedError, opts ...Option) apis.UserErrorView {
	return userView(e)
}

func userView(e apis.FieldedError) apis.UserErrorView {
	f := e.ErrorField()
	field := make([]string, len(f))
	copy(field, f)
	return apis.UserErrorView{Message: e.ErrorMessage(), Field: field}
}

// Record renders one classified value into its wire view. User errors are
// the narrower signal and are checked first: a value implementing both
// contracts renders as apis.UserErrorView, everything categorized renders
// as apis.TopLevelView.
//
// Any other value — including a nil record hiding behind the interface — is
// unrecognized, and the configured policy decides the outcome:
// apis.PolicyIgnore substitutes the generic fallback view silently,
// apis.PolicyWarn logs first, apis.PolicyRaise aborts with an error
// wrapping ErrUnrecognized.
func Record(v any, opts ...Option) (any, error) {
	o := buildOptions(opts).resolved()
	return record(v, &o)
}

func record(v any, o *options) (any, error) {
	if !isNil(v) {
		switch e := v.(type) {
		case apis.FieldedError:
			return userView(e), nil
		case apis.CategorizedError:
			return topLevel(e, o), nil
		}
	}

	switch o.policy {
	case apis.PolicyRaise:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognized, v)
	case apis.PolicyWarn:
		o.log.Warn(component, "unrecognized value, substituting the generic fallback view",
			"value", fmt.Sprintf("%T", v))
	}
	return o.fallbackView(), nil
}

// List renders a batch of values in order. All views built by one call
// share one request id and timestamp, so the errors of a single operation
// correlate. Under apis.PolicyRaise the first unrecognized value aborts
// the whole batch.
//
// The result is never nil: an empty batch renders as an empty list.
func List(vals []any, opts ...Option) ([]any, error) {
	o := buildOptions(opts).resolved()
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		view, err := record(v, &o)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// JSON renders v via Record and encodes the view with the configured
// marshaler.
func JSON(v any, opts ...Option) ([]byte, error) {
	o := buildOptions(opts).resolved()
	view, err := record(v, &o)
	if err != nil {
		return nil, err
	}
	return o.marshal(view)
}

// fallbackView is the generic view substituted for unrecognized values. It
// mirrors the record the selector engine degrades to, plus any configured
// fallback extensions.
func (o *options) fallbackView() apis.TopLevelView {
	ext := make(map[string]any, len(o.fallbackExt)+3)
	for k, v := range o.fallbackExt {
		ext[o.key(k)] = o.coerce(v)
	}
	o.stamp(ext, category.InternalServerError)
	return apis.TopLevelView{Message: apis.FallbackMessage, Extensions: ext}
}

// isNil reports whether v is nil or a typed nil pointer. A nil record
// satisfies the record interfaces but has nothing renderable behind it, so
// dispatch must treat it as unrecognized rather than dereference it.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

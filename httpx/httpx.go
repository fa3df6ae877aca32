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

// Package httpx projects classified records onto plain HTTP responses.
//
// GraphQL traffic answers 200 with errors in the body, but the services
// embedding this library usually keep a few REST-ish companions around:
// health endpoints, webhook receivers, file handlers. Writer gives those
// surfaces the same classification and rendering pipeline, with the HTTP
// status projected from the first top-level category.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/config"
	"dirpx.dev/gqlerrors/internal/strcase"
	"dirpx.dev/gqlerrors/render"
	"dirpx.dev/gqlerrors/selector"
)

const component = "httpx"

// RetryAfterExtension is the extension member WriteRecords projects onto
// the Retry-After response header when a top-level view carries it.
const RetryAfterExtension = "retry_after_seconds"

// Writer writes classified errors as JSON HTTP responses. The zero value
// is usable: raw errors then degrade to the generic internal record and
// the body is encoded with encoding/json.
type Writer struct {
	// Set classifies the raw errors handed to WriteError.
	Set selector.Set

	// Config carries the boundary knobs. FieldKey and RootSegment play
	// no role on this surface; an invalid UnrecognizedPolicy falls back
	// to apis.PolicyWarn.
	Config config.Config

	// Logger receives degrade warnings. Nil discards them.
	Logger apis.Logger

	// Marshal encodes the response document. Nil means encoding/json.
	Marshal apis.Marshaler
}

// WriteError classifies err through the writer's set and writes the
// resulting records. A nil error writes nothing.
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	recs, _ := selector.Classify(err, w.Set, w.classifyOpts()...)
	w.WriteRecords(rw, recs)
}

// WriteRecords renders records into one {"errors": [...]} document and
// writes it. The status comes from the first top-level view's category; a
// batch of only user errors is the client's fault and answers 400, and an
// empty batch has nothing to report but failure, so it answers 500.
func (w Writer) WriteRecords(rw http.ResponseWriter, recs []gqlerrors.Record) {
	vals := make([]any, len(recs))
	for i, rec := range recs {
		vals[i] = rec
	}
	views, _ := render.List(vals, w.renderOpts()...)

	body, err := w.marshal()(map[string]any{"errors": views})
	if err != nil {
		w.logger().Warn(component, "response encoding failed, writing the plain fallback",
			"error", err.Error())
		http.Error(rw, apis.FallbackMessage, http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if retry := w.retryAfter(views); retry > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(retry))
	}
	rw.WriteHeader(w.status(views))
	_, _ = rw.Write(body)
}

// status projects a rendered batch onto one HTTP status code.
func (w Writer) status(views []any) int {
	for _, v := range views {
		tv, ok := v.(apis.TopLevelView)
		if !ok {
			continue
		}
		code, _ := tv.Extensions[w.key(apis.ExtensionCode)].(string)
		return category.HTTPStatus(category.Category(code))
	}
	if len(views) > 0 {
		return category.HTTPStatus(category.BadUserInput)
	}
	return http.StatusInternalServerError
}

// retryAfter reads the retry hint from the view that decided the status.
func (w Writer) retryAfter(views []any) int {
	for _, v := range views {
		tv, ok := v.(apis.TopLevelView)
		if !ok {
			continue
		}
		return seconds(tv.Extensions[w.key(RetryAfterExtension)])
	}
	return 0
}

func seconds(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func (w Writer) key(k string) string {
	if w.Config.CamelCaseKeys {
		return strcase.LowerCamel(k)
	}
	return k
}

func (w Writer) classifyOpts() []selector.Option {
	opts := []selector.Option{selector.WithLogger(w.logger())}
	if len(w.Config.FallbackExtensions) > 0 {
		opts = append(opts, selector.WithFallbackExtensions(w.Config.FallbackExtensions))
	}
	return opts
}

// renderOpts projects the writer's configuration onto the render calls.
// apis.PolicyRaise degrades to apis.PolicyWarn: a writer that must produce
// a response cannot abort it halfway through.
func (w Writer) renderOpts() []render.Option {
	p := w.Config.UnrecognizedPolicy
	if p.Validate() != nil || p == apis.PolicyRaise {
		p = apis.PolicyWarn
	}
	opts := []render.Option{render.WithPolicy(p), render.WithLogger(w.logger())}
	if w.Config.CamelCaseKeys {
		opts = append(opts, render.WithCamelCase())
	}
	if len(w.Config.FallbackExtensions) > 0 {
		opts = append(opts, render.WithFallbackExtensions(w.Config.FallbackExtensions))
	}
	return opts
}

func (w Writer) logger() apis.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return apis.Nop
}

func (w Writer) marshal() apis.Marshaler {
	if w.Marshal != nil {
		return w.Marshal
	}
	return json.Marshal
}

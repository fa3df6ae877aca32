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

package gqlx

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/render"
	"dirpx.dev/gqlerrors/selector"
)

const component = "gqlx"

// BadInputMessage is the operation-wide message on errors whose records are
// all field-scoped.
const BadInputMessage = "Invalid user input"

// Presenter returns a gqlgen error presenter that classifies each resolver
// error through set and presents the resulting records.
//
// The first top-level record becomes the presented message and extensions
// (path and locations preserved); accompanying user errors land under the
// field key. When every record is field-scoped the error presents as
// BAD_USER_INPUT with the views under the field key. Errors with no
// resolver error behind them — gqlgen's own parse and validation failures,
// hand-built gqlerrors — pass through untouched.
func Presenter(set selector.Set, opts ...Option) graphql.ErrorPresenterFunc {
	o := buildOptions(opts)
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		cause := gqlErr.Unwrap()
		if cause == nil {
			return gqlErr
		}

		ropts := o.renderOpts(ctx)
		r := renderAll(classifyError(cause, set, o), ropts, o)

		if len(r.tops) > 0 {
			if len(r.tops) > 1 {
				o.log.Warn(component, "multiple top-level records on one error, presenting the first",
					"count", len(r.tops))
			}
			o.logMasked(r.srcs[0], cause, gqlErr.Path.String())
			view := r.tops[0]
			gqlErr.Message = view.Message
			gqlErr.Extensions = view.Extensions
			if len(r.users) > 0 {
				gqlErr.Extensions[o.key(o.fieldKey)] = r.users
			}
			return gqlErr
		}

		view := render.TopLevel(gqlerrors.Top(category.BadUserInput, BadInputMessage), ropts...)
		view.Extensions[o.key(o.fieldKey)] = r.users
		gqlErr.Message = view.Message
		gqlErr.Extensions = view.Extensions
		return gqlErr
	}
}

// Recover converts a resolver panic into a masked internal record, ready
// for the presenter. Plug it into gqlgen's SetRecoverFunc.
func Recover(ctx context.Context, p any) error {
	return gqlerrors.Top(category.InternalServerError, apis.FallbackMessage,
		gqlerrors.WithCause(fmt.Errorf("panic: %v", p)))
}

// ToGQLErrors renders records into a gqlerror list for hand-built
// responses: one entry per record, top-level views verbatim, user errors as
// BAD_USER_INPUT entries carrying the field under extensions. The batch
// shares one correlation id and timestamp.
func ToGQLErrors(records []gqlerrors.Record, opts ...Option) gqlerror.List {
	o := buildOptions(opts)
	return renderAll(records, o.renderOpts(context.Background()), o).list()
}

// Payload shapes one mutation response from resolver data and records.
//
// Any top-level record nulls the data: the first result is nil and every
// record renders into the returned error list. Otherwise the user-error
// views merge into a copy of data under the field key, next to a
// "successful" flag, and the error list is nil.
func Payload(data map[string]any, records []gqlerrors.Record, opts ...Option) (map[string]any, gqlerror.List) {
	o := buildOptions(opts)
	r := renderAll(records, o.renderOpts(context.Background()), o)

	if len(r.tops) > 0 {
		return nil, r.list()
	}

	out := make(map[string]any, len(data)+2)
	for k, v := range data {
		out[k] = v
	}
	out[o.key(o.fieldKey)] = r.users
	out["successful"] = len(r.users) == 0
	return out, nil
}

// classifyError produces the records for one resolver error. Records
// returned by resolvers directly short-circuit the selector set, the
// field-scoped probe first.
func classifyError(err error, set selector.Set, o *options) []gqlerrors.Record {
	var user *gqlerrors.UserError
	if errors.As(err, &user) {
		return []gqlerrors.Record{user}
	}
	var top *gqlerrors.TopLevelError
	if errors.As(err, &top) {
		return []gqlerrors.Record{top}
	}

	sopts := []selector.Option{selector.WithLogger(o.log)}
	if len(o.fallbackExt) > 0 {
		sopts = append(sopts, selector.WithFallbackExtensions(o.fallbackExt))
	}
	recs, _ := selector.Classify(err, set, sopts...)
	if len(recs) == 0 {
		o.log.Warn(component, "classification produced no records, masking the error",
			"error", err.Error())
		recs = []gqlerrors.Record{
			gqlerrors.Top(category.InternalServerError, apis.FallbackMessage,
				gqlerrors.WithCause(err)),
		}
	}
	return recs
}

// rendered is one batch of records turned into wire views. srcs aligns
// index-wise with tops so the presenter can reach the record behind a view.
type rendered struct {
	tops  []apis.TopLevelView
	srcs  []gqlerrors.Record
	users []apis.UserErrorView
}

func renderAll(recs []gqlerrors.Record, ropts []render.Option, o *options) rendered {
	r := rendered{users: make([]apis.UserErrorView, 0, len(recs))}
	for _, rec := range recs {
		v, err := render.Record(rec, ropts...)
		if err != nil {
			o.log.Warn(component, "unrenderable record skipped", "error", err.Error())
			continue
		}
		switch view := v.(type) {
		case apis.UserErrorView:
			r.users = append(r.users, view)
		case apis.TopLevelView:
			r.tops = append(r.tops, view)
			r.srcs = append(r.srcs, rec)
		}
	}
	return r
}

// list renders the batch as gqlgen's error list type.
func (r rendered) list() gqlerror.List {
	list := make(gqlerror.List, 0, len(r.tops)+len(r.users))
	for _, v := range r.tops {
		list = append(list, &gqlerror.Error{Message: v.Message, Extensions: v.Extensions})
	}
	for _, v := range r.users {
		list = append(list, &gqlerror.Error{
			Message: v.Message,
			Extensions: map[string]any{
				apis.ExtensionCode: string(category.BadUserInput),
				"field":            v.Field,
			},
		})
	}
	return list
}

// logMasked leaves a log trail behind internal presentations: the wire
// carries only the generic message, so this entry is where the real
// failure remains visible.
func (o *options) logMasked(rec gqlerrors.Record, resolverErr error, path string) {
	cat, ok := rec.(apis.CategorizedError)
	if !ok || cat.ErrorCategory() != string(category.InternalServerError) {
		return
	}
	kv := []any{"error", resolverErr.Error(), "path", path}
	c := causeOf(rec)
	if c == nil {
		c = causeOf(resolverErr)
	}
	if c != nil && c.Error() != resolverErr.Error() {
		kv = append(kv, "cause", c.Error())
	}
	o.log.Warn(component, "internal error presented with the generic message", kv...)
}

// causeOf probes the explicit apis contract first, then the stdlib
// convention.
func causeOf(v any) error {
	switch e := v.(type) {
	case apis.CausedError:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}
	return nil
}

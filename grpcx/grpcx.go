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

// Package grpcx classifies errors returned by gRPC upstreams into records.
//
// Resolvers that call backend services get status errors back; this
// adapter translates them into the library's vocabulary: the status code
// picks the category, google.rpc.BadRequest violations become field-scoped
// user errors, and the remaining detail payloads survive into extensions.
// Selector packages the translation for a classification set.
package grpcx

import (
	"encoding/json"
	"fmt"
	"strings"

	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/fieldpath"
	"dirpx.dev/gqlerrors/mapper"
	"dirpx.dev/gqlerrors/selector"
)

// component tags skip warnings in the log output.
const component = "grpcx"

// Option configures the adapter.
type Option func(*options)

type options struct {
	root string
	log  apis.Logger
}

func buildOptions(opts []Option) *options {
	o := &options{root: mapper.DefaultRoot, log: apis.Nop}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRoot sets the leading segment for violation field paths. An empty
// root uses the violation fields as-is.
func WithRoot(root string) Option {
	return func(o *options) { o.root = root }
}

// WithLogger routes skip warnings to l. The default discards them.
func WithLogger(l apis.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// categories maps transport codes onto the GraphQL category vocabulary.
// The inverse of the category package's HTTP table: this one classifies
// what a backend answered, rather than deciding what to answer.
var categories = map[gcodes.Code]category.Category{
	gcodes.Canceled:         category.Canceled,
	gcodes.Unknown:          category.InternalServerError,
	gcodes.InvalidArgument:  category.BadUserInput,
	gcodes.DeadlineExceeded: category.Timeout,
	gcodes.NotFound:         category.NotFound,
	gcodes.AlreadyExists:    category.AlreadyExists,
	gcodes.PermissionDenied: category.Forbidden,

	// ResourceExhausted covers both rate limits and quotas; without an
	// ErrorInfo there is no way to tell them apart, so the shorter-lived
	// condition wins.
	gcodes.ResourceExhausted: category.RateLimited,

	gcodes.FailedPrecondition: category.PreconditionFailed,

	// Aborted is a concurrency conflict (transaction races, optimistic
	// locking), which is what CONFLICT means to a GraphQL client.
	gcodes.Aborted: category.Conflict,

	gcodes.OutOfRange:      category.BadUserInput,
	gcodes.Unimplemented:   category.Unsupported,
	gcodes.Internal:        category.InternalServerError,
	gcodes.Unavailable:     category.Unavailable,
	gcodes.DataLoss:        category.InternalServerError,
	gcodes.Unauthenticated: category.Unauthenticated,
}

// Category translates one transport code. Codes outside the table (OK, or
// codes added after this table was written) classify as internal: an
// unclassifiable failure is a server problem, not a client one.
func Category(c gcodes.Code) category.Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return category.InternalServerError
}

// Selector pairs "is this a gRPC status error" with FromError, ready to
// drop into a classification set.
func Selector(opts ...Option) selector.Selector {
	return selector.Selector{
		Predicate: selector.Func(isStatusError),
		Transform: func(v any) any {
			return FromError(v.(error), opts...)
		},
	}
}

// isStatusError reports whether v is a non-nil error carrying a gRPC
// status, directly or somewhere down its wrap chain.
func isStatusError(v any) bool {
	err, ok := v.(error)
	if !ok || err == nil {
		return false
	}
	_, ok = gstatus.FromError(err)
	return ok
}

// FromError classifies one gRPC upstream error into records.
//
// The status code picks the category via Category. google.rpc.BadRequest
// details become user errors, each violation's dot-separated field split
// into path segments under the configured root. google.rpc.ErrorInfo lands
// in the extensions under reason/domain/metadata, and any remaining detail
// payloads are rendered through protojson into extensions["details"] with
// their @type tags intact.
//
// An input-class status that carries field violations produces user errors
// only — the failure is fully described next to the fields. Every other
// status produces a top-level record first, carrying err as its cause.
// Internal-class failures take the generic message, so backend internals
// reach logs but never clients.
//
// Errors without a gRPC status classify as internal via the same path;
// FromError never returns an empty result for a non-nil error.
func FromError(err error, opts ...Option) []gqlerrors.Record {
	if err == nil {
		return nil
	}
	o := buildOptions(opts)

	st := gstatus.Convert(err)
	cat := Category(st.Code())

	users, ext := splitDetails(st, o)
	if cat == category.BadUserInput && len(users) > 0 {
		return users
	}

	msg := st.Message()
	if cat == category.InternalServerError {
		msg = apis.FallbackMessage
	}

	top := gqlerrors.Top(cat, msg, gqlerrors.WithCause(err)).
		WithExtension("grpc_code", st.Code().String())
	if len(ext) > 0 {
		top = top.WithExtensions(ext)
	}

	return append([]gqlerrors.Record{top}, users...)
}

// splitDetails walks the status details once, separating field violations
// from extension payload.
func splitDetails(st *gstatus.Status, o *options) ([]gqlerrors.Record, map[string]any) {
	var users []gqlerrors.Record
	ext := map[string]any{}
	var leftovers []any

	raw := st.Proto().GetDetails()
	for i, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				users = append(users,
					gqlerrors.User(violationPath(v.GetField(), o.root), v.GetDescription()))
			}
		case *errdetails.ErrorInfo:
			if r := d.GetReason(); r != "" {
				ext["reason"] = r
			}
			if dom := d.GetDomain(); dom != "" {
				ext["domain"] = dom
			}
			if md := d.GetMetadata(); len(md) > 0 {
				ext["metadata"] = md
			}
		default:
			if i < len(raw) {
				if m, ok := detailMap(raw[i]); ok {
					leftovers = append(leftovers, m)
					continue
				}
			}
			o.log.Warn(component, "undecodable status detail, skipping",
				"index", i, "type", fmt.Sprintf("%T", d))
		}
	}
	if len(leftovers) > 0 {
		ext["details"] = leftovers
	}
	return users, ext
}

// violationPath splits a violation field like "comments.body" into path
// segments under root. Foreign field names pass through unvalidated — the
// backend owns its naming, and the path only has to render.
func violationPath(field, root string) fieldpath.Path {
	var p fieldpath.Path
	if root != "" {
		p = fieldpath.Path{root}
	}
	for _, seg := range strings.Split(field, ".") {
		if seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

// detailMap renders one packed detail through protojson — which knows the
// json_name spellings and the well-known types — and reshapes the result
// into plain maps for the extensions payload.
func detailMap(a *anypb.Any) (map[string]any, bool) {
	b, err := protojson.Marshal(a)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	return m, true
}

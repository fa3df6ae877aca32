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
	"strings"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/config"
	"dirpx.dev/gqlerrors/internal/strcase"
	"dirpx.dev/gqlerrors/render"
)

// Option configures the boundary.
type Option func(*options)

type options struct {
	policy      apis.Policy
	fieldKey    string
	camel       bool
	fallbackExt map[string]any
	log         apis.Logger
	ridFn       func(ctx context.Context) string
}

func buildOptions(opts []Option) *options {
	cfg := config.Default()
	o := &options{
		policy:      cfg.UnrecognizedPolicy,
		fieldKey:    cfg.FieldKey,
		camel:       cfg.CamelCaseKeys,
		fallbackExt: cfg.FallbackExtensions,
		log:         apis.Nop,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig applies the boundary knobs of cfg: unrecognized policy, field
// key, camel casing, fallback extensions. RootSegment belongs to the source
// adapters and is ignored here.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		if cfg.UnrecognizedPolicy.Validate() == nil {
			o.policy = cfg.UnrecognizedPolicy
		}
		if strings.TrimSpace(cfg.FieldKey) != "" {
			o.fieldKey = cfg.FieldKey
		}
		o.camel = cfg.CamelCaseKeys
		o.fallbackExt = cfg.FallbackExtensions
	}
}

// WithLogger routes degrade warnings and masked internal causes to l. The
// default discards them.
func WithLogger(l apis.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRequestIDFunc extracts the correlation id from the request context,
// so the rendered request_id matches the one the surrounding middleware
// logs. An empty return falls back to per-error generation.
func WithRequestIDFunc(fn func(ctx context.Context) string) Option {
	return func(o *options) { o.ridFn = fn }
}

// key returns k in the configured casing convention.
func (o *options) key(k string) string {
	if !o.camel {
		return k
	}
	return strcase.LowerCamel(k)
}

// renderOpts builds one batch's render options. The batch shares one
// correlation id and timestamp, like render.List.
func (o *options) renderOpts(ctx context.Context) []render.Option {
	ropts := []render.Option{
		render.WithRequestID(o.requestID(ctx)),
		render.WithTimestamp(time.Now()),
		render.WithLogger(o.log),
		render.WithPolicy(boundaryPolicy(o.policy)),
	}
	if o.camel {
		ropts = append(ropts, render.WithCamelCase())
	}
	if len(o.fallbackExt) > 0 {
		ropts = append(ropts, render.WithFallbackExtensions(o.fallbackExt))
	}
	return ropts
}

func (o *options) requestID(ctx context.Context) string {
	if o.ridFn != nil && ctx != nil {
		if id := o.ridFn(ctx); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

// boundaryPolicy degrades raise to warn: a presenter and a payload shaper
// cannot abort the response they are part of.
func boundaryPolicy(p apis.Policy) apis.Policy {
	if p == apis.PolicyRaise {
		return apis.PolicyWarn
	}
	return p
}

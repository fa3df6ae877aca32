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

// Package goerrx bridges goerr-built errors into records.
//
// Services that annotate failures with goerr.V values get classified by
// convention: a value tree under "validation" runs through a mapper
// definition against the input arguments under "input", a "category" value
// names the top-level category, and every remaining value survives into
// the rendered extensions.
package goerrx

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/internal/anymap"
	"dirpx.dev/gqlerrors/mapper"
	"dirpx.dev/gqlerrors/selector"
)

// Value keys consumed by the bridge. Everything else in goerr.Values
// passes through into extensions.
const (
	// DefaultValidationKey holds the nested error tree for the mapper.
	DefaultValidationKey = "validation"
	// DefaultInputKey holds the operation input the tree correlates with.
	DefaultInputKey = "input"
	// CategoryKey optionally names the top-level category.
	CategoryKey = "category"
)

// component tags degrade warnings in the log output.
const component = "goerrx"

// Option configures the bridge.
type Option func(*options)

type options struct {
	validationKey string
	inputKey      string
	root          string
	log           apis.Logger
}

func buildOptions(opts []Option) *options {
	o := &options{
		validationKey: DefaultValidationKey,
		inputKey:      DefaultInputKey,
		root:          mapper.DefaultRoot,
		log:           apis.Nop,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithValidationKey overrides the value key holding the error tree.
func WithValidationKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.validationKey = key
		}
	}
}

// WithInputKey overrides the value key holding the operation input.
func WithInputKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.inputKey = key
		}
	}
}

// WithRoot sets the leading segment for mapped field paths. An empty root
// disables the leading segment.
func WithRoot(root string) Option {
	return func(o *options) { o.root = root }
}

// WithLogger routes degrade warnings to l. The default discards them.
func WithLogger(l apis.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Selector pairs "does the chain carry a goerr error" with FromError,
// ready to drop into a classification set. def may be nil when no
// validation trees are expected.
func Selector(def *mapper.Definition, opts ...Option) selector.Selector {
	return selector.Selector{
		Predicate: selector.ErrAs[*goerr.Error](),
		Transform: func(v any) any {
			return FromError(v.(error), def, opts...)
		},
	}
}

// FromError classifies one goerr-annotated error into records.
//
// When the values carry a keyed tree under the validation key and def is
// non-nil, the tree runs through def.Map against the input arguments
// under the input key, and the mapped user errors are the result. A tree
// that maps to nothing (unknown keys, input mismatch) degrades to a
// top-level bad-input record instead of vanishing.
//
// Otherwise the result is one top-level record: the category comes from
// the optional "category" value (normalized leniently; anything
// unparseable logs and falls back to internal), the remaining values
// become extensions, and err is kept as the cause. Internal-class records
// take the generic message so annotation-free failures stay unexposed.
// The consumed keys are owned by the bridge and never reach extensions.
//
// Errors without a *goerr.Error in their chain produce no records.
func FromError(err error, def *mapper.Definition, opts ...Option) []gqlerrors.Record {
	var ge *goerr.Error
	if err == nil || !errors.As(err, &ge) {
		return nil
	}
	o := buildOptions(opts)

	vals := ge.Values()

	if raw, present := vals[o.validationKey]; present {
		tree, keyed := anymap.StringKeyed(raw)
		switch {
		case !keyed:
			o.log.Warn(component, "validation value is not a keyed tree, classifying top-level",
				"key", o.validationKey)
		case def == nil:
			o.log.Warn(component, "validation tree present but no mapper definition configured, classifying top-level",
				"key", o.validationKey)
		default:
			users := def.Map(tree, vals[o.inputKey],
				mapper.WithRoot(o.root),
				mapper.WithLogger(o.log),
			)
			if len(users) > 0 {
				recs := make([]gqlerrors.Record, len(users))
				for i, u := range users {
					recs[i] = u
				}
				return recs
			}
			o.log.Warn(component, "validation tree mapped to no user errors, degrading to a top-level record",
				"error", ge.Error())
			return []gqlerrors.Record{
				gqlerrors.Top(category.BadUserInput, ge.Error(), gqlerrors.WithCause(err)),
			}
		}
	}

	cat, categorized := topCategory(vals, o)

	msg := ge.Error()
	if !categorized {
		msg = apis.FallbackMessage
	}

	top := gqlerrors.Top(cat, msg, gqlerrors.WithCause(err))
	if ext := remainingValues(vals, o); len(ext) > 0 {
		top = top.WithExtensions(ext)
	}
	return []gqlerrors.Record{top}
}

// topCategory resolves the optional "category" value. The second result
// reports whether the error was deliberately categorized.
func topCategory(vals map[string]any, o *options) (category.Category, bool) {
	raw, ok := vals[CategoryKey]
	if !ok {
		return category.InternalServerError, false
	}
	c, err := category.Parse(fmt.Sprintf("%v", raw))
	if err != nil {
		o.log.Warn(component, "unparseable category value, classifying as internal",
			"category", fmt.Sprintf("%v", raw))
		return category.InternalServerError, false
	}
	return c, true
}

// remainingValues copies the goerr values minus the consumed keys.
func remainingValues(vals map[string]any, o *options) map[string]any {
	ext := make(map[string]any, len(vals))
	for k, v := range vals {
		switch k {
		case CategoryKey, o.validationKey, o.inputKey:
			continue
		}
		ext[k] = v
	}
	return ext
}

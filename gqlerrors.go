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

package gqlerrors

import (
	"fmt"

	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/fieldpath"
)

// Record is the closed set of error shapes that classification produces and
// the rendering boundary accepts: *TopLevelError or *UserError, nothing
// else. Keeping the set sealed is what lets every consumer downstream of the
// selector engine switch on exactly two cases.
type Record interface {
	error

	// record is unexported on purpose: only the two types in this package
	// can satisfy the interface.
	record()
}

var (
	_ Record = (*TopLevelError)(nil)
	_ Record = (*UserError)(nil)
)

// The rendering boundary consumes records through the apis contracts, not
// through these concrete types.
var (
	_ apis.CategorizedError = (*TopLevelError)(nil)
	_ apis.FieldedError     = (*UserError)(nil)
)

// TopLevelError is an operation-wide failure: the whole query or mutation
// did not produce its result.
//
// It carries:
//   - Code: the normalized category rendered into extensions["code"];
//   - Message: human-oriented, client-safe description;
//   - Extensions: arbitrary key/value payload merged into the rendered
//     extensions (request ids, limits, retry hints);
//   - Cause: wrapped underlying error for debugging / unwrapping. The cause
//     is never rendered.
//
// All mutation helpers (WithX) return a shallow copy, so TopLevelError
// instances can be safely shared and adjusted in a functional style.
type TopLevelError struct {
	// Code is the primary classification, e.g. category.NotFound or
	// category.InternalServerError. Must be a normalized category.
	Code category.Category

	// Message is a human-readable explanation. This is what ends up in the
	// "message" member of the rendered GraphQL error.
	Message string

	// Extensions is an optional, shallow map of extra members for the
	// rendered extensions object. The map is treated as immutable:
	// WithExtension/WithExtensions always copy it.
	Extensions map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for logging in lower layers; it is not
	// exposed to clients.
	Cause error
}

// Top is the constructor for TopLevelError.
//
// Usage:
//
//	return gqlerrors.Top(category.NotFound, "profile does not exist",
//	    gqlerrors.WithExtension("profile_id", id),
//	)
//
// It always returns a *new* TopLevelError and applies all options in order.
func Top(c category.Category, msg string, opts ...Option) *TopLevelError {
	e := &TopLevelError{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<CODE>: <message>
//
// which keeps log lines both human- and machine-scannable.
func (e *TopLevelError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *TopLevelError) Unwrap() error { return e.Cause }

func (e *TopLevelError) record() {}

// ErrorCategory returns the category in its canonical string form.
func (e *TopLevelError) ErrorCategory() string { return string(e.Code) }

// ErrorMessage returns the message without the category prefix.
func (e *TopLevelError) ErrorMessage() string { return e.Message }

// ErrorExtensions returns the extension payload. The returned map must be
// treated as read-only; use WithExtension to derive modified copies.
func (e *TopLevelError) ErrorExtensions() map[string]any { return e.Extensions }

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Code/Extensions but present the message
// in a different language or context.
func (e *TopLevelError) WithMessage(msg string) *TopLevelError {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithExtension returns a shallow copy of e with one extra key/value in
// Extensions.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *TopLevelError) WithExtension(k string, v any) *TopLevelError {
	cp := *e
	// No extensions yet — create a new single-entry map.
	if len(cp.Extensions) == 0 {
		cp.Extensions = map[string]any{k: v}
		return &cp
	}
	// Copy existing extensions and add one more.
	m := make(map[string]any, len(cp.Extensions)+1)
	for k0, v0 := range cp.Extensions {
		m[k0] = v0
	}
	m[k] = v
	cp.Extensions = m
	return &cp
}

// WithExtensions returns a shallow copy of e with all provided kv merged
// into Extensions.
//
// If the error already has Extensions, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (e *TopLevelError) WithExtensions(kv map[string]any) *TopLevelError {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	// No existing extensions — just copy kv.
	if len(cp.Extensions) == 0 {
		m := make(map[string]any, len(kv))
		for k, v := range kv {
			m[k] = v
		}
		cp.Extensions = m
		return &cp
	}
	// Merge existing + new.
	m := make(map[string]any, len(cp.Extensions)+len(kv))
	for k0, v0 := range cp.Extensions {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Extensions = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *TopLevelError) WithCause(err error) *TopLevelError {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// UserError is a field-scoped failure: one message attached to one argument
// of the operation's input. User errors are expected data — they render into
// the mutation payload, not into the GraphQL "errors" list.
type UserError struct {
	// Field locates the failing argument, one segment per nesting level,
	// starting with the configured root segment (by default "input").
	Field fieldpath.Path

	// Message is the human-readable message shown next to the field.
	Message string
}

// User is the constructor for UserError.
//
// Usage:
//
//	gqlerrors.User(fieldpath.MustParse("input.title"), "can't be blank")
func User(field fieldpath.Path, msg string) *UserError {
	return &UserError{Field: field, Message: msg}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<field.path>: <message>
func (e *UserError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Field) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *UserError) record() {}

// ErrorMessage returns the message for the field.
func (e *UserError) ErrorMessage() string { return e.Message }

// ErrorField returns the path as a plain []string, the shape clients
// consume it in.
func (e *UserError) ErrorField() []string { return e.Field }

// WithPrefix returns a shallow copy of e whose field path is prefixed with
// the given segments. The original error is not modified.
func (e *UserError) WithPrefix(prefix fieldpath.Path) *UserError {
	if len(prefix) == 0 {
		return e
	}
	cp := *e
	cp.Field = e.Field.Concat(prefix)
	return &cp
}

// WithField returns a shallow copy of e with a replaced field path.
func (e *UserError) WithField(field fieldpath.Path) *UserError {
	cp := *e
	cp.Field = field
	return &cp
}

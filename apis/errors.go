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

package apis

// CategorizedError represents an operation-wide error that is classified
// into a well-defined, machine-readable *category*.
//
// A category denotes a broad class following the GraphQL extension-code
// vocabulary, such as:
//   - "BAD_USER_INPUT"        — the request arguments were wrong,
//   - "NOT_FOUND"             — a referenced object does not exist,
//   - "UNAUTHENTICATED"       — the caller must authenticate,
//   - "INTERNAL_SERVER_ERROR" — unexpected server-side failure.
//
// Categories are intended to be stable and enumerable. They are the primary
// value that the rendering boundary writes into extensions["code"] and that
// clients switch on.
//
// Implementations are expected to return a *canonicalized* category string —
// normalized to the format enforced by the category package (UPPER_SNAKE,
// length limits, etc.). Renderers should treat unknown or empty categories
// as internal/server errors.
type CategorizedError interface {
	error

	// ErrorCategory returns the machine-readable category.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the category package. Callers should not try
	// to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorCategory() string

	// ErrorMessage returns the human-readable message without any category
	// prefix. This is what the renderer puts into the "message" member.
	ErrorMessage() string

	// ErrorExtensions returns additional structured data to merge into the
	// rendered extensions map. May return nil. The renderer never mutates
	// the returned map.
	ErrorExtensions() map[string]any
}

// FieldedError represents a field-scoped failure: one message attached to
// one argument of the operation's input.
//
// While a CategorizedError fails the operation as a whole, a FieldedError is
// expected data that a client renders next to the referenced form field. The
// rendering boundary checks FieldedError first because the field path is the
// more specific signal.
type FieldedError interface {
	error

	// ErrorMessage returns the human-readable message for the field.
	ErrorMessage() string

	// ErrorField returns the path locating the failing argument, one
	// segment per nesting level, starting with the root segment (by
	// default "input"). It MUST be non-empty.
	ErrorField() []string
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// boundary code work with wrapped errors where the contract should stay
// explicit (e.g. deciding whether an internal cause may be logged).
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one, if any.
	// May return nil.
	Cause() error
}

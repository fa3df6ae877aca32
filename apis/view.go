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

// Well-known extension keys written by the rendering boundary.
//
// They are declared here (not in the render package) so that adapters and
// tests can reference the wire contract without importing the renderer.
const (
	// ExtensionCode carries the UPPER_SNAKE category.
	ExtensionCode = "code"
	// ExtensionRequestID carries the per-request correlation token.
	ExtensionRequestID = "request_id"
	// ExtensionTimestamp carries the render time in RFC 3339 UTC form.
	ExtensionTimestamp = "timestamp"
)

// FallbackMessage is the client-safe message on the generic
// internal-server-error substituted when classification finds no match or
// the renderer is handed a value it does not recognize. Clients may show it
// verbatim.
const FallbackMessage = "An unexpected error occurred"

// TopLevelView is the serializable representation of an operation-wide
// error. It is the exact shape written into a GraphQL "errors" entry.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire. Keeping it here (in apis)
// allows the renderer and the transport adapters to share the same struct.
type TopLevelView struct {
	// Message is the human-readable, client-safe message.
	Message string `json:"message"`

	// Extensions carries the category under the "code" key, any caller
	// extensions, and the injected request_id / timestamp members. Values
	// MUST already be JSON-safe when the view is built.
	Extensions map[string]any `json:"extensions"`
}

// UserErrorView is the serializable representation of a field-scoped
// failure, rendered into mutation payloads.
type UserErrorView struct {
	// Message is the human-readable message shown next to the field.
	Message string `json:"message"`

	// Field is the path to the failing argument, one segment per nesting
	// level, e.g. ["input","comments","body"].
	Field []string `json:"field"`
}

// Marshaler encodes a view (or any JSON-safe value) into bytes.
//
// The renderer uses encoding/json by default; embedding applications that
// standardize on another encoder can swap it at the boundary without the
// library taking a dependency on it.
type Marshaler func(v any) ([]byte, error)

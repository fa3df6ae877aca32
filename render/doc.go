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

// Package render is the boundary where classified records become the
// JSON-safe views that cross the wire.
//
// Upstream packages produce records: operation-wide failures carrying a
// category, and field-scoped failures carrying a path. This package owns
// the last step — turning either into the exact object a GraphQL response
// embeds, with nothing in it that an encoder could choke on.
//
// # Views
//
// TopLevel builds an apis.TopLevelView:
//
//	{
//	  "message": "profile does not exist",
//	  "extensions": {
//	    "code": "NOT_FOUND",
//	    "profile_id": 42,
//	    "request_id": "4cf9…",
//	    "timestamp": "2025-06-01T12:00:00Z"
//	  }
//	}
//
// The code, request_id and timestamp members are written by the boundary
// on every view. Request id defaults to a fresh UUID, timestamp to the
// current time in RFC 3339 UTC form; WithRequestID and WithTimestamp pin
// them, which batch callers and tests want.
//
// User builds an apis.UserErrorView:
//
//	{"message": "can't be blank", "field": ["input", "title"]}
//
// # Dispatch
//
// Record and List accept anything and dispatch on the apis contracts:
// apis.FieldedError first (the field path is the more specific signal),
// apis.CategorizedError second. A value satisfying neither follows the
// apis.Policy configured with WithPolicy — substitute the generic fallback
// view silently, warn first, or abort with ErrUnrecognized. Rendering a
// response never panics on foreign data.
//
// # Coercion and casing
//
// Extension values are coerced JSON-safe before encoding: times to RFC
// 3339 strings, errors and stringers to text, nested maps and lists
// rebuilt recursively. WithCamelCase additionally renders snake_case
// object keys as lowerCamel for schemas that follow the GraphQL casing
// convention end to end.
//
// # Encoding
//
// JSON encodes a rendered view with encoding/json. Applications that
// standardize on another encoder swap it via WithMarshaler; the views are
// plain structs and maps, so any JSON encoder works.
package render

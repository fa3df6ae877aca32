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
	"fmt"
	"time"

	"dirpx.dev/gqlerrors/internal/anymap"
	"dirpx.dev/gqlerrors/internal/strcase"
)

// coerce rewrites one extension value into a JSON-safe shape:
//
//   - time.Time renders as RFC 3339 (the caller's offset preserved);
//   - errors render as their Error() text;
//   - fmt.Stringer renders as its String() — for path-like values the
//     dotted form wins over the list form;
//   - string-keyed maps and lists are rebuilt recursively;
//   - everything else passes through for the encoder to handle.
//
// With camel casing enabled, rebuilt maps convert their keys too.
func (o *options) coerce(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.Format(time.RFC3339)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	if m, ok := anymap.StringKeyed(v); ok {
		out := make(map[string]any, len(m))
		for k, el := range m {
			out[o.key(k)] = o.coerce(el)
		}
		return out
	}
	if elems, ok := anymap.Elements(v); ok {
		out := make([]any, len(elems))
		for i, el := range elems {
			out[i] = o.coerce(el)
		}
		return out
	}
	return v
}

// key returns k in the configured casing convention.
func (o *options) key(k string) string {
	if !o.camel {
		return k
	}
	return strcase.LowerCamel(k)
}

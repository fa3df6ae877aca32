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

// Package strcase converts the library's snake_case wire keys to the
// lowerCamel convention GraphQL clients often prefer. Both the render
// boundary and the gqlx payload shaping apply the same conversion, so it
// lives here rather than in either of them.
package strcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerCamel converts one snake_case key to lowerCamel. A key without an
// underscore is already in some caller-chosen convention and passes through
// untouched.
func LowerCamel(k string) string {
	if !strings.Contains(k, "_") {
		return k
	}
	var b strings.Builder
	b.Grow(len(k))
	first := true
	for _, chunk := range strings.Split(k, "_") {
		if chunk == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(chunk)
		if first {
			b.WriteRune(unicode.ToLower(r))
			first = false
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		b.WriteString(chunk[size:])
	}
	// Underscores only. Nothing sensible to build, keep the original.
	if b.Len() == 0 {
		return k
	}
	return b.String()
}

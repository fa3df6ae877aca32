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

package fieldpath

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Path is the canonical, validated representation of a field path: the
// ordered list of segments that locates one argument inside a (possibly
// nested) GraphQL input object.
//
// Example paths, shown in their dotted text form:
//
//   - "input.title"
//   - "input.comments.body"
//   - "input.user.address.city"
//
// A Path is an ordered []string rather than a dotted string because
// consumers (GraphQL clients, form libraries) address fields segment by
// segment; the dotted form exists only for configs, logs and diagnostics.
type Path []string

// MaxDepth and MaxSegment bound a canonical path.
//
// We allow paths to be reasonably deep because input objects nest, but a
// runaway depth almost always indicates a walk gone wrong rather than a
// legitimate schema.
const (
	// MaxDepth is the maximum number of segments in a valid path.
	MaxDepth = 16

	// MaxSegment is the maximum length of a single segment.
	// 64 characters covers real GraphQL field names with room to spare.
	MaxSegment = 64
)

var (
	// ErrSegmentInvalid is returned when a path segment is empty, too long,
	// or contains characters outside the GraphQL name alphabet.
	ErrSegmentInvalid = errors.New("gqlerrors: invalid field path segment")

	// ErrPathTooDeep is returned when a path exceeds MaxDepth segments.
	ErrPathTooDeep = errors.New("gqlerrors: field path too deep")
)

// Ensure Path implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config structs using the dotted text form.
var (
	_ encoding.TextMarshaler   = (Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// New builds a validated Path from individual segments.
func New(segments ...string) (Path, error) {
	if len(segments) > MaxDepth {
		return nil, ErrPathTooDeep
	}
	p := make(Path, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if err := ValidateSegment(seg); err != nil {
			return nil, err
		}
		p = append(p, seg)
	}
	return p, nil
}

// Parse takes a dotted string such as "input.comments.body", splits it into
// segments and validates each one. The empty string parses to a nil Path.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return New(strings.Split(s, ".")...)
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level path constants in var blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if len(p) == 0 {
		panic("gqlerrors: empty path in MustParse")
	}
	return p
}

// ValidateSegment checks one segment against the GraphQL name alphabet:
// a letter or underscore first, then letters, digits or underscores.
// Unlike categories, segments keep their case — GraphQL field names are
// case-sensitive and conventionally camelCase.
func ValidateSegment(seg string) error {
	if seg == "" || len(seg) > MaxSegment {
		return ErrSegmentInvalid
	}
	c := seg[0]
	if !isAlpha(c) && c != '_' {
		return ErrSegmentInvalid
	}
	for i := 1; i < len(seg); i++ {
		c = seg[i]
		if isAlpha(c) || isDigit(c) || c == '_' {
			continue
		}
		return ErrSegmentInvalid
	}
	return nil
}

// Validate checks whether every segment of the path is canonical.
// A nil/empty path is valid here; callers that require a non-empty path
// should check the length at call site.
func Validate(p Path) error {
	if len(p) > MaxDepth {
		return ErrPathTooDeep
	}
	for _, seg := range p {
		if err := ValidateSegment(seg); err != nil {
			return err
		}
	}
	return nil
}

// String returns the dotted text form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns a new Path with one more segment appended.
//
// It always allocates a fresh backing array. Walks build sibling paths from
// a shared parent, so an in-place append would let one branch overwrite
// another's segments.
func (p Path) Child(seg string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// Concat returns prefix followed by p, again in a fresh backing array.
func (p Path) Concat(prefix Path) Path {
	if len(prefix) == 0 {
		return p.Clone()
	}
	out := make(Path, 0, len(prefix)+len(p))
	out = append(out, prefix...)
	out = append(out, p...)
	return out
}

// Clone returns a copy of the path that shares no memory with the original.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler using the dotted form.
func (p Path) MarshalText() ([]byte, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It parses the dotted form and validates every segment before assigning.
// Empty or whitespace-only input produces a nil path.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

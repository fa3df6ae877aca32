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

package mapper

import (
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/fieldpath"
)

// ResolveFunc may rewrite the (message, field) pair of every user error
// emitted for its key, e.g. to relocate an error onto a sibling field or to
// replace a backend message with client-friendly wording.
//
// The returned field must be a non-empty, valid field path; anything else is
// a misconfiguration and Map panics. The callback receives its own copy of
// the field, so it may edit it in place.
type ResolveFunc func(message string, field fieldpath.Path) (string, fieldpath.Path)

// KeyDef declares one expected error-tree key. Declarations are built with
// Key and frozen into a Definition by New.
type KeyDef struct {
	name     string
	inputKey string
	resolve  ResolveFunc
	nested   []KeyDef
}

// Key declares an expected error key. A bare Key(name) and a Key with empty
// options behave identically: the key maps to the input argument of the same
// name, messages pass through unchanged, and nothing beneath it is mapped.
func Key(name string, opts ...KeyOption) KeyDef {
	d := KeyDef{name: name}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// KeyOption configures a single key declaration.
type KeyOption func(*KeyDef)

// WithInputKey correlates the error key with a differently named input
// argument key. The default is the error key itself. The emitted field path
// uses the input key, since that is the name the client sent.
func WithInputKey(inputKey string) KeyOption {
	return func(d *KeyDef) { d.inputKey = inputKey }
}

// WithResolve installs a callback rewriting message and field for every user
// error emitted at this key.
func WithResolve(fn ResolveFunc) KeyOption {
	return func(d *KeyDef) { d.resolve = fn }
}

// WithNested declares the child keys mapped beneath this key. A key without
// nested declarations exposes nothing below it: declarations are an
// allow-list, so an undeclared child is dropped no matter how many messages
// the error tree holds there.
func WithNested(keys ...KeyDef) KeyOption {
	return func(d *KeyDef) { d.nested = append(d.nested, keys...) }
}

// MapOption configures a single Map call.
type MapOption func(*mapOptions)

type mapOptions struct {
	root   string
	prefix fieldpath.Path
	log    apis.Logger
}

// WithRoot replaces the leading segment of every emitted field path. The
// default is DefaultRoot. An empty root emits paths without a leading
// segment.
func WithRoot(segment string) MapOption {
	return func(o *mapOptions) { o.root = segment }
}

// WithFieldPrefix prepends prefix to every emitted field path, before the
// root segment.
func WithFieldPrefix(prefix fieldpath.Path) MapOption {
	return func(o *mapOptions) { o.prefix = prefix }
}

// WithLogger routes walk diagnostics (skipped unsupported shapes) to l. The
// default discards them.
func WithLogger(l apis.Logger) MapOption {
	return func(o *mapOptions) {
		if l != nil {
			o.log = l
		}
	}
}

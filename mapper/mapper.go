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
	"fmt"
	"strings"

	"dirpx.dev/gqlerrors/mapper/internal/keytree"
)

// Definition is an immutable, frozen mapping definition: which error-tree
// keys are exposed as user errors, how each correlates with the input
// arguments, and how messages and fields are rewritten on the way out.
//
// A Definition is built once by New and reused for the lifetime of the
// process; lookups are O(depth) and safe for concurrent use. No references
// to caller-provided structures remain after construction.
type Definition struct {
	tree *keytree.Tree[keyOptions]
}

// New constructs an immutable Definition snapshot from key declarations.
//
// Build process overview:
//
//  1. Validate every declared key and input key as a field-path segment.
//  2. Insert each declaration into a key tree; a key declared twice at the
//     same level is a configuration error.
//  3. Freeze the tree. Nothing mutates it after New returns.
//
// Errors indicate misdeclared keys, never data conditions.
func New(keys ...KeyDef) (*Definition, error) {
	tree := keytree.New[keyOptions]()
	for _, k := range keys {
		if err := insert(tree, nil, k); err != nil {
			return nil, err
		}
	}
	return &Definition{tree: tree}, nil
}

// MustNew is New that panics on error. Intended for package-level
// definitions known correct at compile time.
func MustNew(keys ...KeyDef) *Definition {
	d, err := New(keys...)
	if err != nil {
		panic(fmt.Sprintf("mapper: MustNew: %v", err))
	}
	return d
}

// Explain produces a textual trace of how an error-key path resolves
// against the definition: for each hop, whether the key is declared, which
// input key it correlates with, whether a resolve callback is installed, and
// how many nested keys are declared beneath it.
//
// Example output:
//
//	key="comments.body"
//	comments: declared input_key="comments" (default) resolve=none nested=1
//	  body: declared input_key="body" (default) resolve=set nested=0
//
// This is a diagnostic tool for inspection and tests, not for stable
// machine parsing.
func (d *Definition) Explain(path ...string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "key=%q\n", strings.Join(path, "."))

	if len(path) == 0 {
		_, _ = fmt.Fprintf(&b, "top-level keys=%d\n", d.tree.Len())
		return strings.TrimSuffix(b.String(), "\n")
	}

	node := d.tree
	for i, seg := range path {
		indent := strings.Repeat("  ", i)
		child, ok := node.Child(seg)
		if !ok {
			_, _ = fmt.Fprintf(&b, "%s%s: undeclared -> subtree dropped\n", indent, seg)
			break
		}

		opts, _ := child.Value()
		inputKey, source := opts.inputKey, ""
		if inputKey == "" {
			inputKey, source = seg, " (default)"
		}
		resolve := "none"
		if opts.resolve != nil {
			resolve = "set"
		}
		_, _ = fmt.Fprintf(&b, "%s%s: declared input_key=%q%s resolve=%s nested=%d\n",
			indent, seg, inputKey, source, resolve, child.Len())

		node = child
	}
	return strings.TrimSuffix(b.String(), "\n")
}

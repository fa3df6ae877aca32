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

	"dirpx.dev/gqlerrors/fieldpath"
	"dirpx.dev/gqlerrors/mapper/internal/keytree"
)

// keyOptions is the frozen per-key configuration stored at each declared
// node of the tree. The zero value is a bare key: input key defaults to the
// error key, messages pass through unchanged.
type keyOptions struct {
	// inputKey is the input-argument key this error key correlates with.
	// Empty means "same as the error key".
	inputKey string
	// resolve rewrites (message, field) before emission, or nil.
	resolve ResolveFunc
}

// insert validates one declaration and adds it, with all nested
// declarations, to the tree at the given parent path.
func insert(tree *keytree.Tree[keyOptions], parent []string, d KeyDef) error {
	if err := fieldpath.ValidateSegment(d.name); err != nil {
		return fmt.Errorf("mapper: invalid key %q under %q: %w", d.name, strings.Join(parent, "."), err)
	}
	if d.inputKey != "" {
		if err := fieldpath.ValidateSegment(d.inputKey); err != nil {
			return fmt.Errorf("mapper: invalid input key %q for key %q: %w", d.inputKey, d.name, err)
		}
	}

	// Fresh slice per declaration: sibling declarations extend the same
	// parent path.
	path := make([]string, len(parent)+1)
	copy(path, parent)
	path[len(parent)] = d.name

	if err := tree.Insert(path, keyOptions{inputKey: d.inputKey, resolve: d.resolve}); err != nil {
		return fmt.Errorf("mapper: cannot declare key %q: %w", strings.Join(path, "."), err)
	}

	for _, nested := range d.nested {
		if err := insert(tree, path, nested); err != nil {
			return err
		}
	}
	return nil
}

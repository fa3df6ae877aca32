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

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/fieldpath"
	"dirpx.dev/gqlerrors/internal/anymap"
	"dirpx.dev/gqlerrors/mapper/internal/keytree"
)

// Map correlates a nested error tree against the user-supplied input
// arguments and the frozen definition, producing flat, field-qualified user
// errors in traversal order.
//
// Tree values may be a message (string), messages ([]string or []any of
// strings), a nested error tree (string-keyed map), or a list of nested
// trees — one per element of a list-valued input, correlated positionally.
// Unsupported shapes are logged and skipped.
//
// Two silent-drop rules bound what reaches the client:
//
//   - a key with no declaration in the definition is dropped, subtree
//     included — declarations are an allow-list of what is safe to expose;
//   - a key whose input object does not contain the correlated input key is
//     dropped — the error does not correspond to anything the user sent.
//
// The input may be a map, a struct (gqlgen input types), or a list of
// either; a list input is tested element-wise.
func (d *Definition) Map(tree map[string]any, input any, opts ...MapOption) []*gqlerrors.UserError {
	o := mapOptions{root: DefaultRoot, log: apis.Nop}
	for _, opt := range opts {
		opt(&o)
	}

	var root fieldpath.Path
	if o.root != "" {
		root = fieldpath.Path{o.root}
	}

	w := &walker{o: &o}
	w.level(d.tree, tree, input, root)
	return w.out
}

// walker carries one Map invocation's options and accumulator.
type walker struct {
	o   *mapOptions
	out []*gqlerrors.UserError
}

// level walks one level of the error tree. Keys are visited in sorted
// order: Go maps are unordered, and emission order must be deterministic.
func (w *walker) level(node *keytree.Tree[keyOptions], tree map[string]any, input any, path fieldpath.Path) {
	for _, key := range sortedKeys(tree) {
		w.key(node, key, tree[key], input, path)
	}
}

// key dispatches one error-tree entry by the shape of its value.
func (w *walker) key(node *keytree.Tree[keyOptions], key string, val any, input any, path fieldpath.Path) {
	child, declared := node.Child(key)
	if !declared {
		// Allow-list: an undeclared key is dropped, not an error.
		return
	}
	opts, _ := child.Value()
	inputKey := opts.inputKey
	if inputKey == "" {
		inputKey = key
	}

	switch v := val.(type) {
	case string:
		w.leaf(opts, inputKey, []string{v}, input, path)
	case []string:
		w.leaf(opts, inputKey, v, input, path)
	case map[string]any:
		w.nested(child, inputKey, v, input, path, -1)
	case []map[string]any:
		for i, el := range v {
			w.nested(child, inputKey, el, input, path, i)
		}
	case []any:
		for i, el := range v {
			if msg, ok := el.(string); ok {
				w.leaf(opts, inputKey, []string{msg}, input, path)
				continue
			}
			if sub, ok := anymap.StringKeyed(el); ok {
				w.nested(child, inputKey, sub, input, path, i)
				continue
			}
			w.o.log.Warn(component, "unsupported error tree element, skipping",
				"key", key, "index", i, "type", fmt.Sprintf("%T", el))
		}
	default:
		if sub, ok := anymap.StringKeyed(val); ok {
			w.nested(child, inputKey, sub, input, path, -1)
			return
		}
		w.o.log.Warn(component, "unsupported error tree value, skipping",
			"key", key, "type", fmt.Sprintf("%T", val))
	}
}

// nested descends into a child error tree. listIndex >= 0 marks this tree
// as the n-th element of a list of child trees; against a list input the
// n-th tree correlates with the n-th input element, and an out-of-range
// index is dropped.
func (w *walker) nested(node *keytree.Tree[keyOptions], inputKey string, tree map[string]any, input any, path fieldpath.Path, listIndex int) {
	for _, holder := range inputObjects(input) {
		childInput, ok := anymap.Get(holder, inputKey)
		if !ok {
			// Not user-supplied at this level, nothing to expose.
			continue
		}
		target := childInput
		if listIndex >= 0 {
			if elems, isList := anymap.Elements(childInput); isList {
				if listIndex >= len(elems) {
					continue
				}
				target = elems[listIndex]
			}
		}
		w.level(node, tree, target, path.Child(inputKey))
	}
}

// leaf emits one user error per input object containing the key, per
// message. Multiple messages at the same leaf each produce their own
// record.
func (w *walker) leaf(opts keyOptions, inputKey string, messages []string, input any, path fieldpath.Path) {
	for _, holder := range inputObjects(input) {
		if !anymap.Has(holder, inputKey) {
			// The error has no user-supplied counterpart, e.g. a
			// database-only constraint.
			continue
		}
		field := path.Child(inputKey)
		if len(w.o.prefix) > 0 {
			field = field.Concat(w.o.prefix)
		}
		for _, msg := range messages {
			w.emit(opts, inputKey, msg, field)
		}
	}
}

// emit applies the resolve callback, validates its output, and appends the
// user error.
func (w *walker) emit(opts keyOptions, inputKey, msg string, field fieldpath.Path) {
	if opts.resolve != nil {
		m, f := opts.resolve(msg, field.Clone())
		if len(f) == 0 {
			panic(fmt.Sprintf("mapper: resolve for key %q returned an empty field path", inputKey))
		}
		if err := fieldpath.Validate(f); err != nil {
			panic(fmt.Sprintf("mapper: resolve for key %q returned invalid field path %q: %v", inputKey, f, err))
		}
		msg, field = m, f
	}
	w.out = append(w.out, gqlerrors.User(field, msg))
}

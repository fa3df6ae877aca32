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

package keytree

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Tree is a nested exact-match index for field-key paths. Each node
// represents one key segment and may carry a value for the path ending
// there; descent is one exact segment at a time. Once built, a Tree is
// read-only and safe for concurrent lookups.
type Tree[T any] struct {
	children map[string]*Tree[T]
	hasVal   bool
	val      T
}

var (
	// ErrInvalidKey is returned when inserting an empty path or a path with
	// an empty segment.
	ErrInvalidKey = errors.New("keytree: invalid key")
	// ErrDuplicateKey is returned when inserting a path that already carries
	// a value.
	ErrDuplicateKey = errors.New("keytree: duplicate key")
)

// New creates an empty tree ready for inserts.
func New[T any]() *Tree[T] {
	return &Tree[T]{children: make(map[string]*Tree[T])}
}

// Insert associates val with the node reached by path, creating intermediate
// nodes as needed. Segment charset rules belong to the caller; here a
// segment only has to be non-empty. Inserting the same path twice returns
// ErrDuplicateKey.
func (t *Tree[T]) Insert(path []string, val T) error {
	if t == nil || len(path) == 0 {
		return ErrInvalidKey
	}
	for _, seg := range path {
		if seg == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidKey, strings.Join(path, "."))
		}
	}

	cur := t
	for _, seg := range path {
		child, exists := cur.children[seg]
		if !exists {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	if cur.hasVal {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, strings.Join(path, "."))
	}
	cur.hasVal = true
	cur.val = val
	return nil
}

// Child returns the subtree under the given key segment.
func (t *Tree[T]) Child(name string) (*Tree[T], bool) {
	if t == nil {
		return nil, false
	}
	child, ok := t.children[name]
	return child, ok
}

// Value returns the value carried by this node, if any.
func (t *Tree[T]) Value() (T, bool) {
	var zero T
	if t == nil || !t.hasVal {
		return zero, false
	}
	return t.val, true
}

// Len reports the number of direct children.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.children)
}

// Keys returns the direct child segments in sorted order. Sorting makes
// traversal output deterministic across runs.
func (t *Tree[T]) Keys() []string {
	if t == nil || len(t.children) == 0 {
		return nil
	}
	keys := make([]string, 0, len(t.children))
	for k := range t.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

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
	"reflect"
	"testing"
)

func TestInsertAndLookup(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert([]string{"title"}, 1))
	must(t, tr.Insert([]string{"comments"}, 2))
	must(t, tr.Insert([]string{"comments", "body"}, 3))

	if v, ok := childOf(t, tr, "title").Value(); !ok || v != 1 {
		t.Fatalf("title value = %v, %v; want 1, true", v, ok)
	}
	if v, ok := childOf(t, tr, "comments").Value(); !ok || v != 2 {
		t.Fatalf("comments value = %v, %v; want 2, true", v, ok)
	}

	comments := childOf(t, tr, "comments")
	if v, ok := childOf(t, comments, "body").Value(); !ok || v != 3 {
		t.Fatalf("comments.body value = %v, %v; want 3, true", v, ok)
	}
}

func TestIntermediateNodeHasNoValue(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert([]string{"a", "b", "c"}, 9))

	a := childOf(t, tr, "a")
	if _, ok := a.Value(); ok {
		t.Fatalf("intermediate node a carries a value")
	}
	b := childOf(t, a, "b")
	if _, ok := b.Value(); ok {
		t.Fatalf("intermediate node a.b carries a value")
	}
	if v, ok := childOf(t, b, "c").Value(); !ok || v != 9 {
		t.Fatalf("a.b.c value = %v, %v; want 9, true", v, ok)
	}
}

func TestChild_Missing(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert([]string{"title"}, 1))

	if _, ok := tr.Child("body"); ok {
		t.Fatalf("Child(body) reported present")
	}
	var nilTree *Tree[int]
	if _, ok := nilTree.Child("x"); ok {
		t.Fatalf("nil tree reported a child")
	}
	if _, ok := nilTree.Value(); ok {
		t.Fatalf("nil tree reported a value")
	}
}

func TestInsert_Invalid(t *testing.T) {
	tr := New[int]()
	if err := tr.Insert(nil, 1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("empty path: err = %v, want ErrInvalidKey", err)
	}
	if err := tr.Insert([]string{"a", ""}, 1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("empty segment: err = %v, want ErrInvalidKey", err)
	}
	var nilTree *Tree[int]
	if err := nilTree.Insert([]string{"a"}, 1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("nil tree: err = %v, want ErrInvalidKey", err)
	}
}

func TestInsert_Duplicate(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert([]string{"title"}, 1))

	err := tr.Insert([]string{"title"}, 2)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate insert: err = %v, want ErrDuplicateKey", err)
	}
	if v, _ := childOf(t, tr, "title").Value(); v != 1 {
		t.Fatalf("duplicate insert overwrote value: %v", v)
	}

	// a deeper path under an existing value node is fine
	must(t, tr.Insert([]string{"title", "inner"}, 3))
}

func TestKeysSortedAndLen(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert([]string{"zeta"}, 1))
	must(t, tr.Insert([]string{"alpha"}, 2))
	must(t, tr.Insert([]string{"mid"}, 3))

	if got, want := tr.Keys(), []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	if New[int]().Keys() != nil {
		t.Fatalf("empty tree Keys() should be nil")
	}
}

func childOf[T any](t *testing.T, tr *Tree[T], name string) *Tree[T] {
	t.Helper()
	child, ok := tr.Child(name)
	if !ok {
		t.Fatalf("missing child %q", name)
	}
	return child
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

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

package gqlerrors

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/fieldpath"
)

func TestTopLevelError_Basics(t *testing.T) {
	e := Top(category.NotFound, "profile does not exist",
		WithExtension("profile_id", "p-42"),
	)

	if e.Code != category.NotFound {
		t.Fatal("category mismatch")
	}
	if e.Extensions["profile_id"] != "p-42" {
		t.Fatal("extension missing")
	}

	s := e.Error()
	wantSubs := []string{"NOT_FOUND", "profile does not exist"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestTopLevelError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := Top(category.BadUserInput, "bad").WithExtension("k1", 1)
	e2 := e1.WithExtension("k2", 2)

	if len(e1.Extensions) != 1 || len(e2.Extensions) != 2 {
		t.Fatal("extensions size mismatch")
	}
	if _, ok := e1.Extensions["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestTopLevelError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := Top(category.InternalServerError, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestTopLevelError_WithMessage(t *testing.T) {
	e1 := Top(category.NotFound, "profile does not exist",
		WithExtension("profile_id", "p-42"),
	)
	e2 := e1.WithMessage("Profil existiert nicht")

	if e2.Message != "Profil existiert nicht" || e2.Code != category.NotFound {
		t.Fatalf("e2 = %v", e2)
	}
	if e2.Extensions["profile_id"] != "p-42" {
		t.Fatal("extensions lost on message replacement")
	}
	if e1.Message != "profile does not exist" {
		t.Fatal("original mutated")
	}
}

func TestTopLevelError_WithExtensions_Merge(t *testing.T) {
	e := Top(category.BadUserInput, "x").WithExtensions(map[string]any{"a": 1})
	e2 := e.WithExtensions(map[string]any{"b": 2, "a": 3})
	if e.Extensions["a"] != 1 {
		t.Fatal("original mutated")
	}
	if e2.Extensions["a"] != 3 || e2.Extensions["b"] != 2 {
		t.Fatal("merge failed")
	}
}

func TestUserError_Basics(t *testing.T) {
	u := User(fieldpath.MustParse("input.title"), "can't be blank")

	if got := u.Error(); got != "input.title: can't be blank" {
		t.Fatalf("Error() = %q", got)
	}
	if u.ErrorMessage() != "can't be blank" {
		t.Fatalf("ErrorMessage() = %q", u.ErrorMessage())
	}
	field := u.ErrorField()
	if len(field) != 2 || field[0] != "input" || field[1] != "title" {
		t.Fatalf("ErrorField() = %v", field)
	}
}

func TestUserError_WithPrefix(t *testing.T) {
	u := User(fieldpath.MustParse("input.title"), "can't be blank")
	p := u.WithPrefix(fieldpath.MustParse("payload.form"))

	if !p.Field.Equal(fieldpath.Path{"payload", "form", "input", "title"}) {
		t.Fatalf("prefixed field = %v", p.Field)
	}
	if !u.Field.Equal(fieldpath.Path{"input", "title"}) {
		t.Fatalf("original mutated: %v", u.Field)
	}
}

func TestRecord_SealedSet(t *testing.T) {
	// both concrete types satisfy Record; the switch below is the shape
	// every consumer uses
	records := []Record{
		Top(category.InternalServerError, "boom"),
		User(fieldpath.MustParse("input.title"), "too short"),
	}
	var tops, users int
	for _, r := range records {
		switch r.(type) {
		case *TopLevelError:
			tops++
		case *UserError:
			users++
		default:
			t.Fatalf("unexpected record type %T", r)
		}
	}
	if tops != 1 || users != 1 {
		t.Fatalf("tops=%d users=%d", tops, users)
	}
}

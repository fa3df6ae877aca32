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

package selector

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/gqlerrors"
	"dirpx.dev/gqlerrors/category"
	"dirpx.dev/gqlerrors/fieldpath"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) Warn(component, msg string, kv ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprint(component, ": ", msg, " ", kv))
}

func (l *recordingLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

func topOf(c category.Category, msg string) func(any) any {
	return func(any) any { return gqlerrors.Top(c, msg) }
}

func TestClassify_FirstMatchWins(t *testing.T) {
	set := Set{
		{Predicate: Eq("conflict"), Transform: topOf(category.Conflict, "conflict")},
		{Predicate: TypeOf[string](), Transform: topOf(category.BadUserInput, "second")},
		{Predicate: Any(), Transform: topOf(category.InternalServerError, "third")},
	}

	recs, matched := Classify("boom", set)
	if !matched {
		t.Fatalf("Classify reported no match")
	}
	if len(recs) != 1 {
		t.Fatalf("Classify returned %d records, want 1", len(recs))
	}
	top, ok := recs[0].(*gqlerrors.TopLevelError)
	if !ok {
		t.Fatalf("record is %T, want *TopLevelError", recs[0])
	}
	if top.Message != "second" {
		t.Fatalf("wrong selector ran: message = %q, want %q", top.Message, "second")
	}
}

func TestClassify_SkipsNonMatchingPredicates(t *testing.T) {
	var ran []int
	mark := func(i int) func(any) any {
		return func(any) any {
			ran = append(ran, i)
			return gqlerrors.Top(category.InternalServerError, "x")
		}
	}

	set := Set{
		{Predicate: Eq(1), Transform: mark(0)},
		{Predicate: Eq(2), Transform: mark(1)},
		{Predicate: Eq(3), Transform: mark(2)},
	}

	if _, matched := Classify(3, set); !matched {
		t.Fatalf("Classify reported no match")
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Fatalf("transforms invoked: %v, want exactly [2]", ran)
	}
}

func TestClassify_NoMatch_Fallback(t *testing.T) {
	log := &recordingLogger{}
	set := Set{
		{Predicate: Eq("never"), Transform: topOf(category.Conflict, "x")},
	}

	recs, matched := Classify(errors.New("mystery"), set, WithLogger(log))
	if matched {
		t.Fatalf("Classify reported a match for an unmatched value")
	}
	if len(recs) != 1 {
		t.Fatalf("Classify returned %d records, want 1", len(recs))
	}
	top, ok := recs[0].(*gqlerrors.TopLevelError)
	if !ok {
		t.Fatalf("fallback record is %T, want *TopLevelError", recs[0])
	}
	if top.Code != category.InternalServerError {
		t.Fatalf("fallback code = %v, want %v", top.Code, category.InternalServerError)
	}
	if top.Message != FallbackMessage {
		t.Fatalf("fallback message = %q, want %q", top.Message, FallbackMessage)
	}
	if len(top.Extensions) != 0 {
		t.Fatalf("fallback extensions = %v, want empty", top.Extensions)
	}

	warnings := log.all()
	if len(warnings) != 1 {
		t.Fatalf("logged %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "selector: no selector matched") {
		t.Fatalf("warning = %q, want component and message", warnings[0])
	}
	if !strings.Contains(warnings[0], "mystery") || !strings.Contains(warnings[0], "eq(never)") {
		t.Fatalf("warning %q does not name the value and the set", warnings[0])
	}
}

func TestClassify_NoMatch_FallbackExtensions(t *testing.T) {
	recs, matched := Classify("boom", nil,
		WithFallbackExtensions(map[string]any{"trace_id": "abc123"}))
	if matched {
		t.Fatalf("Classify reported a match with an empty set")
	}
	top := recs[0].(*gqlerrors.TopLevelError)
	if top.Extensions["trace_id"] != "abc123" {
		t.Fatalf("fallback extensions = %v, want trace_id", top.Extensions)
	}
}

func TestClassify_List_FlatMap(t *testing.T) {
	set := Set{
		{Predicate: TypeOf[string](), Transform: func(v any) any {
			return gqlerrors.Top(category.BadUserInput, v.(string))
		}},
		{Predicate: TypeOf[int](), Transform: func(v any) any {
			return gqlerrors.Top(category.Conflict, fmt.Sprintf("int %d", v))
		}},
	}

	recs, matched := Classify([]any{"a", 1, "b"}, set)
	if !matched {
		t.Fatalf("Classify reported no match")
	}
	got := make([]string, len(recs))
	for i, r := range recs {
		got[i] = r.(*gqlerrors.TopLevelError).Message
	}
	want := []string{"a", "int 1", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record order = %v, want %v", got, want)
		}
	}
}

func TestClassify_List_UnmatchedElementDegrades(t *testing.T) {
	log := &recordingLogger{}
	set := Set{
		{Predicate: TypeOf[string](), Transform: topOf(category.BadUserInput, "ok")},
	}

	recs, matched := Classify([]any{"a", 42, "b"}, set, WithLogger(log))
	if matched {
		t.Fatalf("matched = true although one element had no selector")
	}
	if len(recs) != 3 {
		t.Fatalf("Classify returned %d records, want 3", len(recs))
	}
	mid := recs[1].(*gqlerrors.TopLevelError)
	if mid.Message != FallbackMessage {
		t.Fatalf("unmatched element record = %q, want fallback", mid.Message)
	}
	if len(log.all()) != 1 {
		t.Fatalf("logged %d warnings, want 1", len(log.all()))
	}
}

func TestClassify_List_Shapes(t *testing.T) {
	set := Set{{Predicate: Any(), Transform: topOf(category.Conflict, "x")}}

	t.Run("empty list yields nothing", func(t *testing.T) {
		recs, matched := Classify([]any{}, set)
		if len(recs) != 0 || !matched {
			t.Fatalf("Classify([]) = %d records, matched=%v", len(recs), matched)
		}
	})

	t.Run("typed slice", func(t *testing.T) {
		recs, _ := Classify([]error{errors.New("a"), errors.New("b")}, set)
		if len(recs) != 2 {
			t.Fatalf("Classify returned %d records, want 2", len(recs))
		}
	})

	t.Run("nested lists flatten", func(t *testing.T) {
		recs, _ := Classify([]any{[]any{"a", "b"}, "c"}, set)
		if len(recs) != 3 {
			t.Fatalf("Classify returned %d records, want 3", len(recs))
		}
	})

	t.Run("byte slice is one value", func(t *testing.T) {
		recs, matched := Classify([]byte("raw"), set)
		if len(recs) != 1 || !matched {
			t.Fatalf("Classify([]byte) = %d records, matched=%v", len(recs), matched)
		}
	})
}

func TestClassify_TransformResultShapes(t *testing.T) {
	field := fieldpath.MustParse("input.title")

	tests := []struct {
		name string
		out  any
		want int
	}{
		{name: "single record", out: gqlerrors.User(field, "blank"), want: 1},
		{name: "nil means no records", out: nil, want: 0},
		{name: "record slice", out: []gqlerrors.Record{
			gqlerrors.Top(category.Conflict, "a"),
			gqlerrors.User(field, "b"),
		}, want: 2},
		{name: "top level slice", out: []*gqlerrors.TopLevelError{
			gqlerrors.Top(category.Conflict, "a"),
		}, want: 1},
		{name: "user error slice", out: []*gqlerrors.UserError{
			gqlerrors.User(field, "a"),
			gqlerrors.User(field, "b"),
		}, want: 2},
		{name: "empty user error slice", out: []*gqlerrors.UserError{}, want: 0},
		{name: "any slice of records", out: []any{
			gqlerrors.Top(category.Conflict, "a"),
			gqlerrors.User(field, "b"),
		}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Set{{Predicate: Any(), Transform: func(any) any { return tt.out }}}
			recs, matched := Classify("v", set)
			if !matched {
				t.Fatalf("matched = false, want true")
			}
			if len(recs) != tt.want {
				t.Fatalf("Classify returned %d records, want %d", len(recs), tt.want)
			}
		})
	}
}

// mustPanic asserts fn panics.
func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

func TestClassify_TransformContractViolations(t *testing.T) {
	tests := []struct {
		name string
		out  any
	}{
		{name: "plain string", out: "not a record"},
		{name: "plain error", out: errors.New("boom")},
		{name: "map", out: map[string]any{"message": "x"}},
		{name: "non record in any slice", out: []any{gqlerrors.Top(category.Conflict, "a"), 42}},
		{name: "typed nil top level", out: (*gqlerrors.TopLevelError)(nil)},
		{name: "typed nil user error", out: (*gqlerrors.UserError)(nil)},
		{name: "nil inside top level slice", out: []*gqlerrors.TopLevelError{nil}},
		{name: "nil inside user error slice", out: []*gqlerrors.UserError{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Set{{Predicate: Any(), Transform: func(any) any { return tt.out }}}
			mustPanic(t, func() { Classify("v", set) })
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	identity := func(v any) any { return v.(gqlerrors.Record) }
	set := Set{
		{Predicate: TypeOf[*gqlerrors.TopLevelError](), Transform: identity},
		{Predicate: TypeOf[*gqlerrors.UserError](), Transform: identity},
	}

	in := []any{
		gqlerrors.Top(category.NotFound, "gone"),
		gqlerrors.User(fieldpath.MustParse("input.title"), "blank"),
	}

	recs, matched := Classify(in, set)
	if !matched {
		t.Fatalf("Classify reported no match")
	}
	if len(recs) != 2 {
		t.Fatalf("Classify returned %d records, want 2", len(recs))
	}
	for i := range in {
		if recs[i] != in[i].(gqlerrors.Record) {
			t.Fatalf("record %d changed identity", i)
		}
	}
}

func TestClassify_ConcurrentUse(t *testing.T) {
	set := Set{
		{Predicate: TypeOf[string](), Transform: func(v any) any {
			return gqlerrors.Top(category.BadUserInput, v.(string))
		}},
		{Predicate: Any(), Transform: topOf(category.InternalServerError, "other")},
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := fmt.Sprintf("err-%d-%d", g, i)
				recs, matched := Classify(v, set)
				if !matched || len(recs) != 1 {
					t.Errorf("Classify(%q) = %d records, matched=%v", v, len(recs), matched)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func BenchmarkClassify(b *testing.B) {
	set := Set{
		{Predicate: ErrIs(errNotFound), Transform: topOf(category.NotFound, "missing")},
		{Predicate: Map(map[string]Pattern{"code": Eq("conflict")}), Transform: topOf(category.Conflict, "conflict")},
		{Predicate: Any(), Transform: topOf(category.InternalServerError, "other")},
	}
	err := fmt.Errorf("load user: %w", errNotFound)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, matched := Classify(err, set); !matched {
			b.Fatal("no match")
		}
	}
}

var errNotFound = errors.New("not found")

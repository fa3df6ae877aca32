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

package category

import (
	"encoding"
	"net/http"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  INTERNAL_SERVER_ERROR  ", "INTERNAL_SERVER_ERROR"},
		{"to upper", "bad_user_input", "BAD_USER_INPUT"},
		{"dash to underscore", "NOT-FOUND", "NOT_FOUND"},
		{"mixed", "  already-exists  ", "ALREADY_EXISTS"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{"simple", "INTERNAL_SERVER_ERROR", Category("INTERNAL_SERVER_ERROR")},
		{"with spaces", "  NOT_FOUND  ", Category("NOT_FOUND")},
		{"lower", "conflict", Category("CONFLICT")},
		{"dash", "already-exists", Category("ALREADY_EXISTS")},
		{"min length", "ABC", Category("ABC")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "A"},
		{"starts with digit", "1BAD"},
		{"bare dash", "-"},
		{"inner space", "BAD INPUT"},
		{"too long", "A_VERY_LONG_CATEGORY_THAT_IS_DEFINITELY_MORE_THAN_SIXTY_FOUR_CHARACTERS_LONG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Category{
		"INTERNAL_SERVER_ERROR",
		"NOT_FOUND",
		"ALREADY_EXISTS",
		"ABC",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Category{
		"",          // empty
		"AB",        // too short
		"not_found", // lowercase
		"NOT-FOUND", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CATEGORY ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("not_found")
	if c != Category("NOT_FOUND") {
		t.Fatalf("MustParse(valid) = %q, want %q", c, "NOT_FOUND")
	}
}

func TestCategory_String(t *testing.T) {
	c := Category("INTERNAL_SERVER_ERROR")
	if c.String() != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("String() = %q, want %q", c.String(), "INTERNAL_SERVER_ERROR")
	}
}

func TestCategory_MarshalText(t *testing.T) {
	c := Category("NOT_FOUND")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "NOT_FOUND" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "NOT_FOUND")
	}

	// invalid category should fail MarshalText
	invalid := Category("Invalid-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid category must return error")
	}
}

func TestCategory_UnmarshalText(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("  not-found  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != Category("NOT_FOUND") {
		t.Fatalf("UnmarshalText() = %q, want %q", c, "NOT_FOUND")
	}

	// invalid
	var bad Category
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCategory_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Category)(nil)
	var _ encoding.TextUnmarshaler = (*Category)(nil)
}

func TestCatalogIsCanonical(t *testing.T) {
	// every shipped category constant must pass its own validation
	all := []Category{
		InternalServerError, BadUserInput, ValidationFailed, ParseFailed,
		Unsupported, NotFound, AlreadyExists, Conflict, PreconditionFailed,
		Gone, Unauthenticated, Forbidden, TokenExpired, Unavailable,
		Timeout, Canceled, RateLimited, QuotaExceeded,
	}
	for _, c := range all {
		if err := Validate(c); err != nil {
			t.Fatalf("catalog category %q is not canonical: %v", c, err)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	check := func(c Category, want int) {
		t.Helper()
		if got := HTTPStatus(c); got != want {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", c, got, want)
		}
	}
	check(BadUserInput, http.StatusBadRequest)
	check(NotFound, http.StatusNotFound)
	check(Unavailable, http.StatusServiceUnavailable)
	check(InternalServerError, http.StatusInternalServerError)

	// unknown categories must degrade to 500, never to a 4xx
	check(Category("SOMETHING_ELSE"), http.StatusInternalServerError)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	long := "A"
	for len(long) < MaxLength {
		long += "A"
	}
	if len(long) != MaxLength {
		t.Fatalf("constructed long category has len=%d, want %d", len(long), MaxLength)
	}
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	longer := long + "A"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}

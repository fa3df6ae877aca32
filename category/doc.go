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

// Package category provides parsing, normalization and validation for
// top-level error categories.
//
// A "category" is the machine-readable classification of an operation-wide
// error, such as "BAD_USER_INPUT", "NOT_FOUND" or "INTERNAL_SERVER_ERROR".
// It is rendered into the "code" member of GraphQL error extensions.
// Categories are meant to be:
//
//   - short and stable;
//   - UPPER_SNAKE, following the GraphQL extension-code convention;
//   - suitable for JSON payloads and for client-side switch statements.
//
// IMPORTANT: Empty categories ("") are NOT allowed. Every top-level error
// MUST have a non-empty category.
//
// This package defines the canonical representation, the functions that
// convert arbitrary user input to that canonical form, and default HTTP
// status projections for boundaries that need them.
package category

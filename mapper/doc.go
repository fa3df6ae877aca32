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

// Package mapper turns nested validation-error trees into flat,
// field-qualified user errors by walking the error tree, the user's input
// arguments, and a frozen mapping definition in lock-step.
//
// # Overview
//
// Backend validation produces errors keyed the way the data model is shaped:
//
//	{"title": ["can't be blank"], "comments": [{"body": ["too long"]}]}
//
// A GraphQL client needs them keyed the way the request was shaped: a flat
// list of (message, field-path) pairs anchored at the input object:
//
//	{message: "can't be blank", field: ["input", "title"]}
//	{message: "too long",       field: ["input", "comments", "body"]}
//
// Package mapper does that translation in a way that is:
//
//   - immutable — a Definition is a snapshot, safe for concurrent reuse;
//   - allow-listed — only declared keys are exposed, everything else is
//     dropped silently;
//   - input-correlated — an error is only emitted when the user actually
//     supplied the corresponding argument;
//   - overridable — per-key input-key renames and (message, field)
//     rewrite callbacks.
//
// # Building a definition
//
// A Definition is created once and reused:
//
//	def, err := mapper.New(
//	    mapper.Key("title"),
//	    mapper.Key("comments", mapper.WithNested(
//	        mapper.Key("body", mapper.WithResolve(trimDetail)),
//	    )),
//	)
//	if err != nil {
//	    // misdeclared key, duplicate key, etc.
//	}
//
//	errs := def.Map(tree, input)
//
// A bare Key(name) and a Key with empty options are equivalent; both map
// the key to the same-named input argument with messages unchanged.
//
// # The allow-list rule
//
// Declarations are an allow-list, not a deny-list. A key missing from the
// definition produces nothing, no matter how many messages the error tree
// holds beneath it. Likewise a declared key without nested declarations
// exposes none of its children. This is what makes it safe to feed raw
// backend validation output through the mapper: only what is declared can
// reach the client.
//
// # List correlation
//
// When both the error tree and the input hold a list at the same key, they
// are walked positionally: the n-th error element is checked against the
// n-th input element. An error element with no input counterpart is
// dropped. Field paths do not grow index segments; all elements of a list
// share the same path.
//
// # Diagnostics
//
// For debugging and tests, Definition.Explain returns a human-readable
// trace of how an error-key path resolves against the definition. It is
// intended for inspection and logging, not for stable machine parsing.
package mapper

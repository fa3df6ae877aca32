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

// Package selector classifies arbitrary error values into gqlerrors records
// by scanning an ordered set of (predicate, transform) pairs.
//
// # Model
//
// A Selector couples two author-supplied pieces:
//
//  1. a Pattern — a structural predicate deciding "is this my kind of error?",
//  2. a Transform — a function turning the matched value into records.
//
// A Set is an ordered sequence of selectors. Classify tests predicates in
// order and invokes exactly the first matching transform. This decouples
// domain error recognition (which only the caller can know) from the two
// fixed output shapes every error must reduce to (*gqlerrors.TopLevelError,
// *gqlerrors.UserError).
//
// # Patterns
//
// Patterns are built from constructors and compose structurally:
//
//	set := selector.Set{
//	    {Predicate: selector.ErrIs(storage.ErrNotFound), Transform: notFound},
//	    {Predicate: selector.ErrAs[*validation.Error](), Transform: invalid},
//	    {Predicate: selector.Map(map[string]selector.Pattern{
//	        "code": selector.Eq("rate_limited"),
//	    }), Transform: rateLimited},
//	    {Predicate: selector.Any(), Transform: internal},
//	}
//
// Map recurses into string-keyed maps and exported struct fields, so a
// predicate can pin a nested field's value or type without the transform
// re-checking it.
//
// # Lists
//
// A slice or array input carries many discrete errors: Classify classifies
// each element independently and concatenates the results in order. []byte
// is treated as one scalar value.
//
// # Fallback
//
// When nothing matches, Classify logs a warning and degrades to one generic
// internal-server-error record rather than failing: an unrecognized error
// must still produce a renderable response. The returned bool reports
// whether a real match happened.
//
// # Contract violations
//
// A transform returning anything other than records (or nil) indicates a
// misconfigured selector. Classify panics on such results so the mistake is
// caught by tests, never silently coerced.
package selector

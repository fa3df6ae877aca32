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

// Option is a functional option for constructing or transforming a
// TopLevelError. It always takes a *TopLevelError and returns a (possibly
// new) *TopLevelError.
type Option func(*TopLevelError) *TopLevelError

// WithExtension adds a single extension key/value on construction.
// Intended to be used with Top(...).
func WithExtension(k string, v any) Option {
	return func(e *TopLevelError) *TopLevelError {
		return e.WithExtension(k, v)
	}
}

// WithExtensions merges multiple extension key/values on construction.
// Intended to be used with Top(...).
func WithExtensions(kv map[string]any) Option {
	return func(e *TopLevelError) *TopLevelError {
		return e.WithExtensions(kv)
	}
}

// WithCause attaches a cause on construction.
// Intended to be used with Top(...).
func WithCause(err error) Option {
	return func(e *TopLevelError) *TopLevelError {
		return e.WithCause(err)
	}
}

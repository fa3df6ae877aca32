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

// Package apis defines the public Go-level contracts for gqlerrors.
//
// The goal of this package is to provide *small, composable* interfaces and
// view types that other gqlerrors packages can depend on without importing
// the concrete error implementation (which lives in the module root and its
// subpackages).
//
// In other words: this package is the "surface" that the rendering boundary,
// transport adapters and embedding applications can target. Concrete error
// types implement these interfaces, but callers should not rely on the
// concrete types.
//
// This package must remain lightweight; it contains interfaces, the wire
// view structs, the logging seam and the unrecognized-value Policy, and
// nothing heavier than log/slog.
package apis

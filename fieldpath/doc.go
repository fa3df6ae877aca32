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

// Package fieldpath defines the validated path type used to locate a failing
// argument inside a GraphQL input object.
//
// Where category answers "what kind of error is this?", a field path answers
// "which exact input field does this message belong to?", e.g.:
//
//   - input.title
//   - input.comments.body
//
// Paths are ordered segment lists. The mapper builds them during its walk of
// the error tree, one segment per descent, starting from the configured root
// segment; clients consume them as arrays, not dotted strings.
package fieldpath

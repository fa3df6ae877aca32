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

package mapper

// DefaultRoot is the leading segment of every emitted field path unless a
// Map call replaces it via WithRoot. GraphQL mutation conventions put user
// arguments under a single "input" object, and error consumers expect field
// paths anchored there.
const DefaultRoot = "input"

// component tags walk diagnostics in the log output.
const component = "mapper"

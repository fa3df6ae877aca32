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

import (
	"sort"

	"dirpx.dev/gqlerrors/internal/anymap"
)

// sortedKeys returns the map's keys in sorted order so traversal output is
// stable across runs.
func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// inputObjects returns the input values to test for key presence at one
// level: the elements when the input is a list, the input itself otherwise.
func inputObjects(input any) []any {
	if elems, ok := anymap.Elements(input); ok {
		return elems
	}
	return []any{input}
}

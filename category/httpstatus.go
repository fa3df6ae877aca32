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

import "net/http"

// defaultHTTP defines the library's built-in HTTP mappings for well-known
// categories. GraphQL servers usually respond 200 regardless of resolver
// errors, but gateways, health endpoints, and REST-ish companions of a
// GraphQL API still want a sensible projection of each category.
//
// These are only defaults: callers are expected to wrap or override them at
// the boundary where HTTP is actually produced.
var defaultHTTP = map[Category]int{
	// 5xx — server / dependency / transient issues.
	InternalServerError: http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	Unavailable:         http.StatusServiceUnavailable,  // Service or a required dependency is temporarily unreachable.
	Timeout:             http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	Canceled:            http.StatusRequestTimeout,      // Caller canceled; 499 is the nginx convention, 408 the standard one.

	// 4xx — client/protocol/resource issues.
	BadUserInput:     http.StatusBadRequest,          // Malformed arguments, validation errors, contract violation.
	ValidationFailed: http.StatusUnprocessableEntity, // Request document rejected before execution.
	ParseFailed:      http.StatusBadRequest,          // Request document could not be parsed.
	Unsupported:      http.StatusBadRequest,          // Known but unsupported operation/content/option.

	NotFound: http.StatusNotFound, // Target resource does not exist (or is not visible to the caller).
	Gone:     http.StatusGone,     // Resource used to exist but is permanently gone.

	// Conflicts and concurrency.
	AlreadyExists:      http.StatusConflict,           // Resource creation clash — it already exists.
	Conflict:           http.StatusConflict,           // General conflicting update/action.
	PreconditionFailed: http.StatusPreconditionFailed, // Preconditions failed on the resource.

	// AuthN / AuthZ.
	Unauthenticated: http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.
	TokenExpired:    http.StatusUnauthorized, // Token lifetime is over; client must re-auth.
	Forbidden:       http.StatusForbidden,    // Caller is authenticated but not allowed to perform the action.

	// Rate/quotas.
	RateLimited:   http.StatusTooManyRequests, // Client hit a rate limit.
	QuotaExceeded: http.StatusTooManyRequests, // Client exceeded an allocated quota.
}

// HTTPStatus returns the default HTTP projection of the given category.
// Unknown categories resolve to 500: an unclassified error must never look
// like a client mistake.
func HTTPStatus(c Category) int {
	if v, ok := defaultHTTP[c]; ok {
		return v
	}
	return http.StatusInternalServerError
}

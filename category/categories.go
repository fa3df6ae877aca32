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

// Core / generic categories
//
// These categories describe the broad error classes that classification
// transforms will use most often. They follow the de-facto GraphQL extension
// code vocabulary (Apollo-style UPPER_SNAKE codes).
const (
	// InternalServerError indicates an internal, non-classified failure.
	// Use this as the fallback when no more specific category applies.
	// The root cause is typically attached as the error cause and MUST NOT
	// be exposed in the rendered message.
	InternalServerError Category = "INTERNAL_SERVER_ERROR"

	// BadUserInput indicates that the request arguments violate a structural
	// or semantic invariant of the operation.
	// Use this when the format, range, charset, pattern, or cross-field
	// consistency of the input is wrong but the failure concerns the whole
	// operation rather than a single field (field-scoped failures are
	// expressed as user errors instead).
	BadUserInput Category = "BAD_USER_INPUT"

	// ValidationFailed indicates that the request was rejected before
	// execution: malformed document, unknown field, type mismatch.
	// This mirrors the code GraphQL servers attach to pre-execution errors.
	ValidationFailed Category = "GRAPHQL_VALIDATION_FAILED"

	// ParseFailed indicates that the request document could not be parsed
	// at all.
	ParseFailed Category = "GRAPHQL_PARSE_FAILED"

	// Unsupported indicates that the requested operation, value, feature,
	// or configuration is not supported in the current runtime or policy.
	Unsupported Category = "UNSUPPORTED"
)

// Resource / state / concurrency categories
const (
	// NotFound indicates that the requested entity does not exist in the
	// current domain scope or storage.
	NotFound Category = "NOT_FOUND"

	// AlreadyExists indicates that the target entity cannot be created
	// because an entity with the same primary identity already exists.
	AlreadyExists Category = "ALREADY_EXISTS"

	// Conflict indicates a domain-state conflict or uniqueness violation.
	// Use this for version mismatches and concurrent updates that are not
	// strictly "already exists" cases.
	Conflict Category = "CONFLICT"

	// PreconditionFailed indicates that the operation could not proceed
	// because a required precondition was not met (for example a version
	// mismatch, or a resource not in the expected state).
	PreconditionFailed Category = "PRECONDITION_FAILED"

	// Gone indicates that the resource existed before but is no longer
	// available (deleted, retired, deprovisioned).
	Gone Category = "GONE"
)

// Authentication / authorization categories
//
// These let you distinguish "no auth" from "not allowed", which matters
// because clients react differently (re-login vs permission request).
const (
	// Unauthenticated indicates that the caller is not authenticated or the
	// authentication context could not be established.
	Unauthenticated Category = "UNAUTHENTICATED"

	// Forbidden indicates that the caller is authenticated but does not
	// have sufficient privileges to perform the target operation.
	Forbidden Category = "FORBIDDEN"

	// TokenExpired indicates that the presented token was otherwise valid
	// but is past its expiration time; the client must re-authenticate.
	TokenExpired Category = "TOKEN_EXPIRED"
)

// Runtime / operation control categories
//
// These describe transient, operational conditions that affect the ability
// to complete the requested operation.
const (
	// Unavailable indicates that a required downstream dependency or
	// service is temporarily unreachable.
	Unavailable Category = "UNAVAILABLE"

	// Timeout indicates that the operation could not complete within the
	// allotted time budget.
	Timeout Category = "TIMEOUT"

	// Canceled indicates that the operation was explicitly canceled by the
	// caller or by context propagation.
	Canceled Category = "CANCELED"

	// RateLimited indicates that the caller exceeded the allowed request or
	// action rate in the current time window.
	RateLimited Category = "RATE_LIMITED"

	// QuotaExceeded indicates that the caller or tenant exceeded a
	// configured resource quota (objects, bytes, operations, etc).
	QuotaExceeded Category = "QUOTA_EXCEEDED"
)

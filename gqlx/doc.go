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

// Package gqlx is the gqlgen boundary: it presents classified records as
// GraphQL errors and shapes mutation payloads.
//
// # Wiring
//
// The presenter classifies every resolver error through a selector set and
// replaces gqlgen's default presentation, which would otherwise expose the
// raw error text:
//
//	set := selector.Set{
//		grpcx.Selector(),
//		goerrx.Selector(def),
//	}
//
//	srv := handler.New(es)
//	srv.SetErrorPresenter(gqlx.Presenter(set, gqlx.WithLogger(log)))
//	srv.SetRecoverFunc(gqlx.Recover)
//
// Errors born in the GraphQL layer itself (parse and validation failures,
// hand-built gqlerrors) pass through untouched. Resolvers may also return
// records directly; those skip the selector set.
//
// # Shapes
//
// A top-level record becomes the presented error's message and extensions,
// with the response path preserved:
//
//	{
//	  "message": "Profile does not exist",
//	  "path": ["updateProfile"],
//	  "extensions": {
//	    "code": "NOT_FOUND",
//	    "request_id": "7d62…",
//	    "timestamp": "2025-06-01T12:00:00Z"
//	  }
//	}
//
// When every record is field-scoped, the error presents as BAD_USER_INPUT
// with the rendered views under the field key:
//
//	{
//	  "message": "Invalid user input",
//	  "extensions": {
//	    "code": "BAD_USER_INPUT",
//	    "user_errors": [
//	      {"message": "can't be blank", "field": ["input", "title"]}
//	    ]
//	  }
//	}
//
// Payload builds the alternative convention where user errors live inside
// the mutation payload next to a "successful" flag, and only top-level
// records reach the "errors" member.
//
// # Policy
//
// This boundary must always produce a presentable response, so the raise
// policy degrades to warn here. The render and JSON surfaces honor raise.
package gqlx

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

package apis

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Policy decides what the rendering boundary does with a value that is
// neither a top-level nor a user error.
//
//   - PolicyIgnore silently replaces the value with the generic fallback view;
//   - PolicyWarn logs the value via the configured Logger, then replaces it;
//   - PolicyRaise aborts rendering with an error.
//
// Ignore and Warn both guarantee that the caller still receives a renderable
// result; Raise is for deployments that prefer failing a request over
// shipping a degraded response.
type Policy string

const (
	PolicyIgnore Policy = "ignore"
	PolicyWarn   Policy = "warn"
	PolicyRaise  Policy = "raise"
)

// ErrPolicyInvalid is returned when a value cannot be parsed as a Policy.
var ErrPolicyInvalid = errors.New("gqlerrors: invalid policy")

var (
	_ encoding.TextMarshaler   = (*Policy)(nil)
	_ encoding.TextUnmarshaler = (*Policy)(nil)
)

// ParsePolicy normalizes and validates a policy string.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyIgnore:
		return PolicyIgnore, nil
	case PolicyWarn:
		return PolicyWarn, nil
	case PolicyRaise:
		return PolicyRaise, nil
	}
	return "", ErrPolicyInvalid
}

// Validate checks whether the policy is one of the three known values.
// The empty policy is invalid; callers wanting a default should apply it
// before validation.
func (p Policy) Validate() error {
	switch p {
	case PolicyIgnore, PolicyWarn, PolicyRaise:
		return nil
	}
	return ErrPolicyInvalid
}

// String returns the canonical lowercase form.
func (p Policy) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

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

// Package config carries the library-wide knobs that entry points hand down
// explicitly. There is no ambient global configuration: build a Config
// (Default, or LoadFile for deployments that keep it in YAML) and pass it
// to the boundary adapters, which translate it into their option sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/gqlerrors/apis"
	"dirpx.dev/gqlerrors/fieldpath"
	"dirpx.dev/gqlerrors/mapper"
)

// DefaultFieldKey is the payload member user-error views render under.
const DefaultFieldKey = "user_errors"

// ErrInvalid is wrapped by Validate and the loaders when a configuration
// cannot be used.
var ErrInvalid = errors.New("gqlerrors: invalid config")

// Config is the explicit knob set shared by the boundary adapters.
//
// The zero value is not usable; start from Default and override.
type Config struct {
	// UnrecognizedPolicy decides what the rendering boundary does with a
	// value that is neither a top-level nor a user error.
	UnrecognizedPolicy apis.Policy `yaml:"unrecognized_policy"`

	// FieldKey is the payload member user-error views render under.
	FieldKey string `yaml:"field_key"`

	// RootSegment is the leading field-path segment for mapped user
	// errors. An explicitly empty value disables the leading segment.
	RootSegment string `yaml:"root_segment"`

	// CamelCaseKeys renders snake_case object keys in their lowerCamel
	// form, for schemas that follow the GraphQL casing convention end to
	// end.
	CamelCaseKeys bool `yaml:"camel_case_keys"`

	// FallbackExtensions is merged into the generic record and view
	// substituted for unmatched or unrecognized values. The code,
	// request_id and timestamp members stay boundary-owned regardless.
	FallbackExtensions map[string]any `yaml:"fallback_extensions"`
}

// Default returns the configuration the library assumes when given
// nothing: warn-and-degrade on unrecognized values, user errors under
// "user_errors", field paths rooted at the mapper's default root,
// snake_case keys.
func Default() Config {
	return Config{
		UnrecognizedPolicy: apis.PolicyWarn,
		FieldKey:           DefaultFieldKey,
		RootSegment:        mapper.DefaultRoot,
	}
}

// Validate checks that the configuration can be handed to the adapters.
func (c Config) Validate() error {
	if err := c.UnrecognizedPolicy.Validate(); err != nil {
		return fmt.Errorf("%w: unrecognized_policy %q", ErrInvalid, c.UnrecognizedPolicy)
	}
	if strings.TrimSpace(c.FieldKey) == "" {
		return fmt.Errorf("%w: field_key must not be empty", ErrInvalid)
	}
	if c.RootSegment != "" {
		if err := fieldpath.ValidateSegment(c.RootSegment); err != nil {
			return fmt.Errorf("%w: root_segment: %v", ErrInvalid, err)
		}
	}
	return nil
}

// LoadFile reads, parses and validates a YAML configuration file.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gqlerrors/config: read %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("gqlerrors/config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default, so absent keys keep their
// default values. Decoding is strict: unknown keys and multi-document
// streams are rejected, and an invalid policy fails here rather than at
// render time. An empty document yields Default unchanged.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// A second document would silently shadow the first; refuse it.
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return Config{}, fmt.Errorf("%w: multiple YAML documents", ErrInvalid)
	} else if !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

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

package render

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/gqlerrors/apis"
)

// Option configures a render call.
type Option func(*options)

type options struct {
	requestID   string
	timestamp   time.Time
	camel       bool
	policy      apis.Policy
	log         apis.Logger
	marshal     apis.Marshaler
	fallbackExt map[string]any
}

func buildOptions(opts []Option) options {
	o := options{
		policy:  apis.PolicyWarn,
		log:     apis.Nop,
		marshal: json.Marshal,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolved fills the correlation members left to their defaults, so that
// every view built during one render call shares the same request id and
// timestamp.
func (o options) resolved() options {
	if o.requestID == "" {
		o.requestID = uuid.NewString()
	}
	if o.timestamp.IsZero() {
		o.timestamp = time.Now()
	}
	return o
}

// WithRequestID pins the request_id extension member instead of generating a
// fresh UUID per call.
func WithRequestID(id string) Option {
	return func(o *options) { o.requestID = id }
}

// WithTimestamp pins the timestamp extension member instead of using the
// current time. The value is rendered in RFC 3339 UTC form either way.
func WithTimestamp(t time.Time) Option {
	return func(o *options) { o.timestamp = t }
}

// WithCamelCase renders snake_case keys, extension keys included, in their
// lowerCamel form. The default keeps keys exactly as produced.
func WithCamelCase() Option {
	return func(o *options) { o.camel = true }
}

// WithPolicy sets what Record and List do with a value that is neither a
// top-level nor a user error. The default is apis.PolicyWarn; invalid
// policies leave the default in place.
func WithPolicy(p apis.Policy) Option {
	return func(o *options) {
		if p.Validate() == nil {
			o.policy = p
		}
	}
}

// WithLogger routes degrade warnings to l. The default discards them.
func WithLogger(l apis.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMarshaler swaps the encoder used by JSON. The default is
// encoding/json.
func WithMarshaler(m apis.Marshaler) Option {
	return func(o *options) {
		if m != nil {
			o.marshal = m
		}
	}
}

// WithFallbackExtensions sets extra extension members on the generic view
// substituted for unrecognized values.
func WithFallbackExtensions(ext map[string]any) Option {
	return func(o *options) { o.fallbackExt = ext }
}

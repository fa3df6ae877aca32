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

import "log/slog"

// Logger is the single logging seam of the library.
//
// The library never fails an operation because logging is unavailable, and
// it only ever logs at warning level: a selector miss and a dropped
// unrecognized shape are data problems worth surfacing, not errors worth
// failing over. Embedding applications plug in their logger of choice; the
// library ships a slog adapter and a no-op.
type Logger interface {
	// Warn logs one degrade event. component names the emitting subsystem
	// ("selector", "mapper", "render"); kv are alternating key/value pairs.
	Warn(component, msg string, kv ...any)
}

// Nop is the Logger that discards everything. It is the default wherever a
// Logger option is not provided.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Warn(string, string, ...any) {}

// NewSlogLogger adapts a *slog.Logger to the Logger seam. The component is
// attached as a "component" attribute ahead of the caller's pairs.
//
// A nil argument yields the Nop logger, so callers can pass through an
// optional *slog.Logger without guarding.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return Nop
	}
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Warn(component, msg string, kv ...any) {
	args := make([]any, 0, len(kv)+2)
	args = append(args, "component", component)
	args = append(args, kv...)
	s.l.Warn(msg, args...)
}

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package workspace

import (
	"encoding/json"
	"log/slog"
)

const redactedValue = "*****"

// Secret holds a sensitive string value. Its default conversions (fmt, json, slog)
// render a redacted placeholder so the value cannot leak through logging or
// serialization by accident; callers that genuinely need the raw value must go
// through [Secret.Reveal].
type Secret string

// Reveal returns the underlying sensitive value.
func (s Secret) Reveal() string {
	return string(s)
}

// IsZero reports whether the secret holds no value.
func (s Secret) IsZero() bool {
	return s == ""
}

func (s Secret) String() string {
	if s.IsZero() {
		return ""
	}

	return redactedValue
}

func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

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

package bounded

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
)

// Severity ranks bounding policies by how defensively they react to an
// out-of-range candidate value.
//
// While a Policy describes what happens to a candidate (clip it, wrap it,
// reject it), Severity encodes the ordering used when arithmetic combines
// two bounded values governed by different policies: the result adopts
// the policy with the higher Severity, so safety never silently degrades
// when values are mixed. See Stricter.
type Severity int

const (
	// SeverityClip is the rank of the silent clip policy.
	//
	// Silent clipping is the least defensive reaction: the candidate is
	// saturated to the nearest bound with no diagnostic and no error.
	// It is also the zero value, matching the default policy of a
	// bounded value.
	SeverityClip Severity = iota

	// SeverityWrap is the rank of the silent wrap policy.
	//
	// Wrapping treats the interval as circular rather than saturating,
	// which preserves more information than a clip but still corrects
	// silently. The original dispatch table never mixes the wrap policy
	// with others; it is ranked here between the silent and reporting
	// clips so that the ordering is total.
	SeverityWrap

	// SeverityReport is the rank of the reporting clip policy.
	//
	// The candidate is saturated like a silent clip, but every
	// correction also emits a diagnostic line on the report writer, so
	// violations are visible without being fatal.
	SeverityReport

	// SeverityStrict is the rank of the strict policy.
	//
	// The most defensive reaction: an out-of-range candidate is never
	// modified, the operation fails with an out-of-range error, and the
	// receiver retains its prior valid value. Strict dominates every
	// other policy when values are combined.
	SeverityStrict
)

// String constants for Severity values used in serialization, parsing,
// and human-facing output.
//
// These names form the stable, external representation of Severity and
// MAY be persisted in configuration files and JSON/YAML documents.
// Changing them is a breaking change for any consumer that relies on
// textual configuration.
const (
	SeverityClipStr   = "clip"
	SeverityWrapStr   = "wrap"
	SeverityReportStr = "clip-report"
	SeverityStrictStr = "strict"
)

// ParseSeverity converts a textual representation into a Severity value.
//
// The function accepts a small, case-insensitive vocabulary of strings:
//
//	"clip",        "Clip",        "CLIP"        -> SeverityClip
//	"wrap",        "Wrap",        "WRAP"        -> SeverityWrap
//	"clip-report", "Clip-Report", "CLIP-REPORT" -> SeverityReport
//	"strict",      "Strict",      "STRICT"      -> SeverityStrict
//
// Any other input is treated as invalid, and ParseSeverity returns a
// *ParseError carrying the original string.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case SeverityClipStr, "Clip", "CLIP":
		return SeverityClip, nil
	case SeverityWrapStr, "Wrap", "WRAP":
		return SeverityWrap, nil
	case SeverityReportStr, "Clip-Report", "CLIP-REPORT":
		return SeverityReport, nil
	case SeverityStrictStr, "Strict", "STRICT":
		return SeverityStrict, nil
	default:
		return SeverityClip, &errors.ParseError{Type: "Severity", Value: s}
	}
}

// String returns the canonical string representation of the Severity.
//
// The returned value is always lowercase and suitable for configuration
// files, logs, and API responses. If the Severity is not one of the
// defined constants, String returns "unknown"; callers that need to
// guarantee valid output SHOULD call Valid first.
func (s Severity) String() string {
	switch s {
	case SeverityClip:
		return SeverityClipStr
	case SeverityWrap:
		return SeverityWrapStr
	case SeverityReport:
		return SeverityReportStr
	case SeverityStrict:
		return SeverityStrictStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Severity is one of the defined constants.
//
// This is primarily useful when Severity values may have been created via
// deserialization or numeric casts.
func (s Severity) Valid() bool {
	return s >= SeverityClip && s <= SeverityStrict
}

// TypeName returns "Severity", the name of the type for logging and
// debugging.
func (s Severity) TypeName() string {
	return "Severity"
}

// Redacted returns the same string representation as String(); severity
// constants contain no sensitive information.
func (s Severity) Redacted() string {
	return s.String()
}

// IsZero reports whether the Severity has its zero value, SeverityClip.
//
// Note that the zero value is a valid Severity, so IsZero returning true
// does not indicate an error condition.
func (s Severity) IsZero() bool {
	return s == SeverityClip
}

// Validate checks whether the Severity is one of the defined constants
// and returns a *ValidationError otherwise.
func (s Severity) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "Severity",
			Reason: "invalid Severity value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Severity.
//
// A valid Severity is serialized as its lowercase string representation
// (for example, "clip" or "strict"). If the value is not valid,
// MarshalJSON returns a *MarshalError and does not produce any output.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity.
//
// The method accepts both string and numeric JSON representations: the
// stable string vocabulary of ParseSeverity, or the numeric constants 0
// through 3 for compatibility with configurations that store enums as
// integers. Invalid input yields an *UnmarshalError or *ParseError.
func (s *Severity) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSeverity(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: err.Error()}
	}
	*s = Severity(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Severity", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Severity, serializing the
// canonical string form. Invalid values yield a *MarshalError.
func (s Severity) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Severity, resolving
// string representations via ParseSeverity.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Severity", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Severity using the
// same lowercase vocabulary as String(). Invalid values yield a
// *MarshalError.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Severity", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Severity,
// delegating to ParseSeverity as the single source of truth.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time check that Severity implements the model.Model interface.
var _ model.Model = (*Severity)(nil)

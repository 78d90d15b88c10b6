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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"clip", SeverityClip, false},
		{"Clip", SeverityClip, false},
		{"CLIP", SeverityClip, false},
		{"wrap", SeverityWrap, false},
		{"clip-report", SeverityReport, false},
		{"strict", SeverityStrict, false},
		{"STRICT", SeverityStrict, false},
		{"", 0, true},
		{"saturate", 0, true},
		{"clipreport", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityClip, "clip"},
		{SeverityWrap, "wrap"},
		{SeverityReport, "clip-report"},
		{SeverityStrict, "strict"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestSeverity_Ordering(t *testing.T) {
	// Stricter dispatch relies on the numeric order of the constants.
	if !(SeverityClip < SeverityWrap && SeverityWrap < SeverityReport && SeverityReport < SeverityStrict) {
		t.Fatalf("severity constants are not ordered clip < wrap < clip-report < strict")
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityClip, SeverityWrap, SeverityReport, SeverityStrict} {
		if !s.Valid() {
			t.Errorf("Severity %v should be valid", s)
		}
	}
	for _, s := range []Severity{Severity(-1), Severity(4), Severity(100)} {
		if s.Valid() {
			t.Errorf("Severity %d should be invalid", int(s))
		}
	}
}

func TestSeverity_Validate(t *testing.T) {
	if err := SeverityWrap.Validate(); err != nil {
		t.Errorf("Validate() on valid Severity returned %v", err)
	}
	if err := Severity(42).Validate(); err == nil {
		t.Error("Validate() on invalid Severity returned nil")
	}
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityClip, SeverityWrap, SeverityReport, SeverityStrict} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", s, err)
		}
		var got Severity
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if got != s {
			t.Errorf("round trip of %v produced %v", s, got)
		}
	}
}

func TestSeverity_UnmarshalJSON_Numeric(t *testing.T) {
	var s Severity
	if err := json.Unmarshal([]byte(`3`), &s); err != nil {
		t.Fatalf("Unmarshal(3) error: %v", err)
	}
	if s != SeverityStrict {
		t.Errorf("Unmarshal(3) = %v, want %v", s, SeverityStrict)
	}
	if err := json.Unmarshal([]byte(`7`), &s); err == nil {
		t.Error("Unmarshal(7) should fail for out-of-range numeric severity")
	}
}

func TestSeverity_MarshalJSON_Invalid(t *testing.T) {
	if _, err := json.Marshal(Severity(42)); err == nil {
		t.Error("Marshal of invalid Severity should fail")
	}
}

func TestSeverity_YAMLRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityClip, SeverityStrict} {
		data, err := yaml.Marshal(s)
		if err != nil {
			t.Fatalf("yaml.Marshal(%v) error: %v", s, err)
		}
		var got Severity
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("yaml.Unmarshal(%s) error: %v", data, err)
		}
		if got != s {
			t.Errorf("YAML round trip of %v produced %v", s, got)
		}
	}
}

func TestSeverity_TextRoundTrip(t *testing.T) {
	for _, s := range []Severity{SeverityWrap, SeverityReport} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", s, err)
		}
		var got Severity
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error: %v", text, err)
		}
		if got != s {
			t.Errorf("text round trip of %v produced %v", s, got)
		}
	}
}

func TestSeverity_ModelSurface(t *testing.T) {
	if got := SeverityClip.TypeName(); got != "Severity" {
		t.Errorf("TypeName() = %q, want %q", got, "Severity")
	}
	if got := SeverityWrap.Redacted(); got != "wrap" {
		t.Errorf("Redacted() = %q, want %q", got, "wrap")
	}
	if !SeverityClip.IsZero() {
		t.Error("SeverityClip.IsZero() should be true")
	}
	if SeverityStrict.IsZero() {
		t.Error("SeverityStrict.IsZero() should be false")
	}
}

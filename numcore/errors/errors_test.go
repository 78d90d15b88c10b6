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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Rational type",
			&ParseError{Type: "Rational", Value: "3/"},
			"dxnum: invalid Rational value: 3/",
		},
		{
			"Severity type",
			&ParseError{Type: "Severity", Value: "unknown"},
			"dxnum: invalid Severity value: unknown",
		},
		{
			"empty value",
			&ParseError{Type: "Natural", Value: ""},
			"dxnum: invalid Natural value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Severity", Value: 99},
			"dxnum: cannot marshal invalid Severity value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Severity", Value: -1},
			"dxnum: cannot marshal invalid Severity value: -1",
		},
		{
			"zero value",
			&MarshalError{Type: "Severity", Value: 0},
			"dxnum: cannot marshal invalid Severity value: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"parse failure",
			&UnmarshalError{Type: "Rational", Data: []byte(`"x/y"`), Reason: "not a number"},
			"dxnum: cannot unmarshal Rational: not a number",
		},
		{
			"empty data",
			&UnmarshalError{Type: "Interval", Data: nil, Reason: "empty data"},
			"dxnum: cannot unmarshal Interval: empty data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Rational", Field: "Den", Reason: "must not be zero"},
			"dxnum: invalid Rational.Den: must not be zero",
		},
		{
			"without field",
			&ValidationError{Type: "Interval", Reason: "bounds inverted"},
			"dxnum: invalid Interval: bounds inverted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutOfRangeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OutOfRangeError
		want string
	}{
		{
			"int bounds",
			&OutOfRangeError{Value: 15, Min: 0, Max: 10},
			"dxnum: 15 out of range [0,10]",
		},
		{
			"float bounds",
			&OutOfRangeError{Value: -0.5, Min: 0.0, Max: 1.0},
			"dxnum: -0.5 out of range [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("OutOfRangeError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConversionError_Error(t *testing.T) {
	err := &ConversionError{From: "float64", To: "int32", Value: 1.5}
	want := "dxnum: cannot convert float64 value 1.5 to int32 without loss"
	if got := err.Error(); got != want {
		t.Errorf("ConversionError.Error() = %q, want %q", got, want)
	}
}

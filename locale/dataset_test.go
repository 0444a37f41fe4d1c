/*
Copyright 2026 Glossa Authors

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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package locale

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseLanguagesData tests the language reference file parser, including
// comment and blank-line handling and empty code fields.
func TestParseLanguagesData(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"deu\tger\tdeu\tde\tGerman",
		"",
		"yue\t\t\t\tCantonese",
	}, "\n")

	entries, err := parseLanguages("test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseLanguages returned unexpected error: %v", err)
	}
	want := []LanguageEntry{
		{ISO6393: "deu", ISO6392B: "ger", ISO6392T: "deu", ISO6391: "de", Label: "German"},
		{ISO6393: "yue", Label: "Cantonese"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("parseLanguages mismatch (-want +got):\n%s", diff)
	}
}

// TestParseLanguagesDataErrors tests the malformed-row failures, each of
// which must name the offending line.
func TestParseLanguagesDataErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Wrong column count",
			input: "deu\tger\tdeu\tde",
			want:  "test line 1",
		},
		{
			name:  "Missing label",
			input: "deu\tger\tdeu\tde\tGerman\nyue\t\t\t\t",
			want:  "test line 2",
		},
		{
			name:  "No codes at all",
			input: "\t\t\t\tGhost Language",
			want:  "test line 1",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLanguages("test", strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("parseLanguages should have failed but did not")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

// TestParseLabelsData tests the flat code-to-label file parser shared by the
// region and script data.
func TestParseLabelsData(t *testing.T) {
	input := "# regions\nGB\tUnited Kingdom\n419\tLatin America and the Caribbean\n"
	labels, err := parseLabels("test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseLabels returned unexpected error: %v", err)
	}
	want := map[string]string{
		"GB":  "United Kingdom",
		"419": "Latin America and the Caribbean",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("parseLabels mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseLabels("test", strings.NewReader("GB\t")); err == nil {
		t.Error("parseLabels should have failed on an empty label but did not")
	}
	if _, err := parseLabels("test", strings.NewReader("GB")); err == nil {
		t.Error("parseLabels should have failed on a single column but did not")
	}
}

// TestParseDirectionsData tests the writing-direction file parser.
func TestParseDirectionsData(t *testing.T) {
	input := "en\tltr\nar\trtl\n"
	directions, err := parseDirections("test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseDirections returned unexpected error: %v", err)
	}
	want := map[string]Direction{"en": LTR, "ar": RTL}
	if diff := cmp.Diff(want, directions); diff != "" {
		t.Errorf("parseDirections mismatch (-want +got):\n%s", diff)
	}

	_, err = parseDirections("test", strings.NewReader("en\tdown"))
	if err == nil {
		t.Fatal("parseDirections should have failed on an unknown direction but did not")
	}
	if !strings.Contains(err.Error(), `"down"`) {
		t.Errorf("error = %v, want it to name the bad value", err)
	}
}

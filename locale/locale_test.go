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
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestLocaleZeroValue verifies that the zero Locale is the undetermined
// locale: primary "und", no other fields.
func TestLocaleZeroValue(t *testing.T) {
	var loc Locale
	if loc.Primary() != UndeterminedCode {
		t.Errorf("Primary() = %q, want %q", loc.Primary(), UndeterminedCode)
	}
	if loc.String() != UndeterminedCode {
		t.Errorf("String() = %q, want %q", loc.String(), UndeterminedCode)
	}
	if _, ok := loc.Extended(); ok {
		t.Error("Extended() reported a subtag on the zero value")
	}
	if _, ok := loc.Script(); ok {
		t.Error("Script() reported a subtag on the zero value")
	}
	if _, ok := loc.Region(); ok {
		t.Error("Region() reported a subtag on the zero value")
	}
	if _, ok := loc.Variant(); ok {
		t.Error("Variant() reported a subtag on the zero value")
	}
	if _, ok := loc.Extension(); ok {
		t.Error("Extension() reported an extension on the zero value")
	}
}

// TestLocaleString tests canonical rendering across field combinations.
func TestLocaleString(t *testing.T) {
	testCases := []struct {
		name  string
		parts Parts
		want  string
	}{
		{"Primary only", Parts{Primary: "de"}, "de"},
		{"With region", Parts{Primary: "en", Region: "GB"}, "en-GB"},
		{"With script and region", Parts{Primary: "sr", Script: "Cyrl", Region: "RS"}, "sr-Cyrl-RS"},
		{
			"All positional fields",
			Parts{Primary: "zh", Extended: "yue", Script: "Hant", Region: "HK", Variant: "nedis"},
			"zh-yue-Hant-HK-nedis",
		},
		{
			"With extension",
			Parts{Primary: "en", Singleton: "a", Extension: []string{"foo", "bar"}},
			"en-a-foo-bar",
		},
		{"Bare singleton", Parts{Primary: "en", Singleton: "x"}, "en-x"},
		{"Zero value", Parts{}, "und"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.parts).String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestMakePartsRoundTrip verifies that Parts is the inverse of Make.
func TestMakePartsRoundTrip(t *testing.T) {
	want := Parts{
		Primary:   "zh",
		Extended:  "yue",
		Script:    "Hant",
		Region:    "HK",
		Variant:   "nedis",
		Singleton: "x",
		Extension: []string{"custom"},
	}
	got := Make(want).Parts()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Make/Parts round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestLocaleImmutability verifies that a Locale shares no memory with the
// parts it was built from or the values its accessors return.
func TestLocaleImmutability(t *testing.T) {
	subtags := []string{"foo", "bar"}
	loc := Make(Parts{Primary: "en", Singleton: "a", Extension: subtags})

	subtags[0] = "mutated"
	ext, ok := loc.Extension()
	if !ok {
		t.Fatal("Extension() reported no extension, want one")
	}
	if ext.Subtags[0] != "foo" {
		t.Errorf("mutating the input slice changed the locale: Subtags[0] = %q", ext.Subtags[0])
	}

	ext.Subtags[1] = "mutated"
	again, _ := loc.Extension()
	if again.Subtags[1] != "bar" {
		t.Errorf("mutating an accessor result changed the locale: Subtags[1] = %q", again.Subtags[1])
	}

	parts := loc.Parts()
	parts.Extension[0] = "mutated"
	final, _ := loc.Extension()
	if final.Subtags[0] != "foo" {
		t.Errorf("mutating a Parts result changed the locale: Subtags[0] = %q", final.Subtags[0])
	}
}

// TestLocaleJSON verifies the JSON codec: a locale marshals to its canonical
// string and unmarshals through a full parse.
func TestLocaleJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		loc := Make(Parts{Primary: "sr", Script: "Cyrl", Region: "RS"})
		data, err := json.Marshal(loc)
		if err != nil {
			t.Fatalf("Marshal returned unexpected error: %v", err)
		}
		if string(data) != `"sr-Cyrl-RS"` {
			t.Errorf("Marshal = %s, want %q", data, `"sr-Cyrl-RS"`)
		}
	})

	t.Run("Unmarshal valid tag", func(t *testing.T) {
		var loc Locale
		if err := json.Unmarshal([]byte(`"ger"`), &loc); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if loc.Primary() != "de" {
			t.Errorf("Primary() = %q, want %q (normalized)", loc.Primary(), "de")
		}
	})

	t.Run("Unmarshal empty string", func(t *testing.T) {
		loc := Make(Parts{Primary: "en"})
		if err := json.Unmarshal([]byte(`""`), &loc); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if loc.Primary() != UndeterminedCode {
			t.Errorf("Primary() = %q, want %q", loc.Primary(), UndeterminedCode)
		}
	})

	t.Run("Unmarshal invalid tag", func(t *testing.T) {
		var loc Locale
		if err := json.Unmarshal([]byte(`"not-a-real-tag!"`), &loc); err == nil {
			t.Fatal("Unmarshal should have failed on an invalid tag but did not")
		}
	})

	t.Run("Unmarshal non-string", func(t *testing.T) {
		var loc Locale
		if err := json.Unmarshal([]byte(`42`), &loc); err == nil {
			t.Fatal("Unmarshal should have failed on a non-string but did not")
		}
	})
}

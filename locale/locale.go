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

// Package locale parses and canonicalizes BCP 47 (RFC 5646) language tags
// such as "en-GB", "yue-Hant-HK", "sl-nedis" or "en-x-custom" into structured
// Locale values, validates each subtag against standardized code registries
// (ISO 639 in its four encodings, ISO 15924 scripts, ISO 3166-1 and UN M.49
// regions), and resolves human-readable labels and writing directions from
// the structured value.
//
// The registry reference data is embedded at compile time, so the package
// works out of the box with no additional setup. Callers can extend the
// region and script tables with their own entries when constructing a Parser.
//
// # Key Features
//
//   - Position-sensitive parsing: subtags are classified by shape and order
//     into primary language, extended language, script, region, variant and
//     extension slots, matching the RFC 5646 grammar.
//   - Canonicalization: the primary language code is always normalized to its
//     preferred encoding (ISO 639-1 when registered, otherwise ISO 639-2/T,
//     otherwise ISO 639-3), so "deu", "ger" and "de" all parse to "de".
//   - Display resolution: Label composes a human-readable name from the
//     language, script and region registries; Alignment reports the writing
//     direction where it is known.
//   - Thread safety: a Parser built by NewParser holds only immutable tables
//     and may be shared freely across goroutines.
package locale

import (
	"encoding/json"
	"strings"
)

// Locale is the immutable structured form of a parsed language tag. The zero
// value represents the undetermined locale "und". Locale values are produced
// by Parser.Parse; Make exists for trusted direct construction in tests and
// storage round trips.
type Locale struct {
	primary   string
	extended  string
	script    string
	region    string
	variant   string
	extension Extension
}

// Extension is the opaque trailer of a language tag: a one-character
// singleton marker followed by the raw subtags that followed it. Its
// contents are never interpreted beyond the marker itself.
type Extension struct {
	Singleton string
	Subtags   []string
}

// Parts is the exploded field set of a Locale. It is the exchange format for
// Make and Locale.Parts, used by tests and by storage adapters that persist a
// locale as a structured document rather than a string.
type Parts struct {
	Primary   string
	Extended  string
	Script    string
	Region    string
	Variant   string
	Singleton string
	Extension []string
}

// UndeterminedCode is the ISO 639-2 sentinel used when no language is known.
const UndeterminedCode = "und"

// Make assembles a Locale directly from its parts without consulting any
// registry. It is intended for trusted round trips (reloading a value this
// package rendered earlier) and for tests; a Locale built from unvalidated
// parts violates the preconditions of Label and renders verbatim.
func Make(p Parts) Locale {
	loc := Locale{
		primary:  p.Primary,
		extended: p.Extended,
		script:   p.Script,
		region:   p.Region,
		variant:  p.Variant,
	}
	if p.Singleton != "" {
		loc.extension = Extension{
			Singleton: p.Singleton,
			Subtags:   append([]string(nil), p.Extension...),
		}
	}
	return loc
}

// Parts returns the exploded field set of the locale. The returned value
// shares no memory with the Locale.
func (l Locale) Parts() Parts {
	p := Parts{
		Primary:  l.Primary(),
		Extended: l.extended,
		Script:   l.script,
		Region:   l.region,
		Variant:  l.variant,
	}
	if l.extension.Singleton != "" {
		p.Singleton = l.extension.Singleton
		p.Extension = append([]string(nil), l.extension.Subtags...)
	}
	return p
}

// Primary returns the normalized primary language subtag. For the zero
// Locale it returns UndeterminedCode.
func (l Locale) Primary() string {
	if l.primary == "" {
		return UndeterminedCode
	}
	return l.primary
}

// Extended returns the extended language subtag, if present.
func (l Locale) Extended() (string, bool) {
	return l.extended, l.extended != ""
}

// Script returns the script subtag, if present. A present script is always
// four letters in title case, e.g. "Cyrl".
func (l Locale) Script() (string, bool) {
	return l.script, l.script != ""
}

// Region returns the region subtag, if present: either a two-letter ISO
// 3166-1 code or a three-digit UN M.49 area code.
func (l Locale) Region() (string, bool) {
	return l.region, l.region != ""
}

// Variant returns the variant subtag, if present.
func (l Locale) Variant() (string, bool) {
	return l.variant, l.variant != ""
}

// Extension returns the extension trailer, if present. The returned value
// shares no memory with the Locale.
func (l Locale) Extension() (Extension, bool) {
	if l.extension.Singleton == "" {
		return Extension{}, false
	}
	return Extension{
		Singleton: l.extension.Singleton,
		Subtags:   append([]string(nil), l.extension.Subtags...),
	}, true
}

// String renders the locale in its canonical hyphenated form, joining every
// present field in grammatical order. It implements the fmt.Stringer
// interface. The result is lossy relative to the originally parsed input
// only in that the primary code may have been normalized.
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Primary())
	for _, part := range []string{l.extended, l.script, l.region, l.variant} {
		if part != "" {
			b.WriteByte('-')
			b.WriteString(part)
		}
	}
	if l.extension.Singleton != "" {
		b.WriteByte('-')
		b.WriteString(l.extension.Singleton)
		for _, subtag := range l.extension.Subtags {
			b.WriteByte('-')
			b.WriteString(subtag)
		}
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface. It marshals the
// locale as its canonical string form.
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It parses and
// validates the tag from the JSON string.
//
// Performance Warning: This method constructs a new parser by calling
// NewParser() on every invocation, which is an expensive operation. For
// performance-critical applications, unmarshal into a string and parse it
// with a pre-initialized, long-lived Parser instance instead.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*l = Locale{}
		return nil
	}

	p, err := NewParser()
	if err != nil {
		return err
	}

	parsed, err := p.Parse(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

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

package locale

import (
	"golang.org/x/text/unicode/norm"
)

// CodeKind identifies which ISO 639 encoding a language code was registered
// under.
type CodeKind int

// The four ISO 639 encodings a language entry can be addressed by. The
// declaration order is also the registration priority: when one entry lists
// the same code under several encodings (common for 639-3 and 639-2/T), a
// lookup reports the first kind in this order.
const (
	ISO6393 CodeKind = iota
	ISO6392B
	ISO6392T
	ISO6391
)

// String returns the conventional name of the encoding.
func (k CodeKind) String() string {
	switch k {
	case ISO6393:
		return "ISO 639-3"
	case ISO6392B:
		return "ISO 639-2/B"
	case ISO6392T:
		return "ISO 639-2/T"
	case ISO6391:
		return "ISO 639-1"
	default:
		return "unknown"
	}
}

// LanguageEntry is one language in the registry: a display label plus the
// language's code under each ISO 639 encoding. Any code may be empty when
// the encoding does not assign one (most languages have no ISO 639-1 code).
type LanguageEntry struct {
	Label    string
	ISO6393  string
	ISO6392B string
	ISO6392T string
	ISO6391  string
}

// PreferredCode returns the entry's canonical code: ISO 639-1 when
// registered, otherwise ISO 639-2/T, otherwise ISO 639-3. The bibliographic
// 639-2/B code is never preferred. It reports false when none of the three
// is registered.
func (e LanguageEntry) PreferredCode() (string, bool) {
	switch {
	case e.ISO6391 != "":
		return e.ISO6391, true
	case e.ISO6392T != "":
		return e.ISO6392T, true
	case e.ISO6393 != "":
		return e.ISO6393, true
	default:
		return "", false
	}
}

// languageRef points a code key at its entry in the entry slice, remembering
// which encoding the key was registered under.
type languageRef struct {
	index int
	kind  CodeKind
}

// Registry holds the immutable lookup tables the parser and the resolvers
// consult: the multi-key language table, the region and script label maps,
// and the writing-direction table. A Registry is built once by NewParser and
// is safe for concurrent use without locking.
type Registry struct {
	entries    []LanguageEntry
	languages  map[string]languageRef
	regions    map[string]string
	scripts    map[string]string
	directions map[string]Direction
}

// newRegistry builds the lookup tables. Every non-empty code of every entry
// becomes a key resolving to the same shared entry; the first registration
// of a key wins. Region keys are folded to upper case and script keys to
// title case; all display labels are NFC-normalized.
func newRegistry(entries []LanguageEntry, regions, scripts map[string]string, directions map[string]Direction) *Registry {
	r := &Registry{
		entries:    make([]LanguageEntry, 0, len(entries)),
		languages:  make(map[string]languageRef, 4*len(entries)),
		regions:    make(map[string]string, len(regions)),
		scripts:    make(map[string]string, len(scripts)),
		directions: make(map[string]Direction, len(directions)),
	}
	for _, e := range entries {
		e.Label = norm.NFC.String(e.Label)
		index := len(r.entries)
		r.entries = append(r.entries, e)
		codes := [...]struct {
			code string
			kind CodeKind
		}{
			{e.ISO6393, ISO6393},
			{e.ISO6392B, ISO6392B},
			{e.ISO6392T, ISO6392T},
			{e.ISO6391, ISO6391},
		}
		for _, c := range codes {
			if c.code == "" {
				continue
			}
			if _, taken := r.languages[c.code]; taken {
				continue
			}
			r.languages[c.code] = languageRef{index: index, kind: c.kind}
		}
	}
	r.mergeRegions(regions)
	r.mergeScripts(scripts)
	for code, dir := range directions {
		r.directions[code] = dir
	}
	return r
}

// mergeRegions folds the given region labels into the table, later entries
// winning on key collision.
func (r *Registry) mergeRegions(labels map[string]string) {
	for code, label := range labels {
		r.regions[upperCase(code)] = norm.NFC.String(label)
	}
}

// mergeScripts folds the given script labels into the table, later entries
// winning on key collision.
func (r *Registry) mergeScripts(labels map[string]string) {
	for code, label := range labels {
		r.scripts[titleCase(code)] = norm.NFC.String(label)
	}
}

// Language looks up a code in the language table. Lookups are exact: codes
// are registered in the lower-case form the ISO standards assign, so "de"
// resolves and "DE" does not. The returned kind reports which encoding the
// code was registered under.
func (r *Registry) Language(code string) (LanguageEntry, CodeKind, bool) {
	ref, ok := r.languages[code]
	if !ok {
		return LanguageEntry{}, 0, false
	}
	return r.entries[ref.index], ref.kind, true
}

// Region looks up the display label of a region code. Keys are upper case
// ("GB", "419"); the lookup is exact.
func (r *Registry) Region(code string) (string, bool) {
	label, ok := r.regions[code]
	return label, ok
}

// Script looks up the display label of a script code. Keys are title case
// ("Cyrl"); the lookup is exact.
func (r *Registry) Script(code string) (string, bool) {
	label, ok := r.scripts[code]
	return label, ok
}

// Direction looks up the writing direction of an ISO 639-1 language code.
// It reports false when the direction is not known for the code.
func (r *Registry) Direction(code string) (Direction, bool) {
	dir, ok := r.directions[code]
	return dir, ok
}

// upperCase folds an ASCII string to upper case.
func upperCase(s string) string {
	b := []byte(s)
	for i := range b {
		if isLowerAlpha(b[i]) {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

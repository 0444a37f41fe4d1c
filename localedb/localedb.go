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

// Package localedb adapts locale.Locale values to storage representations.
//
// Two codecs are provided, differing only in the target shape: Text persists
// a locale as its canonical string and Document as a field map. Both cast
// untrusted input through the parser and load stored values back through a
// shape-only decomposition, trusting that stored data is the canonical
// output of an earlier Dump.
package localedb

import (
	"database/sql/driver"
	"fmt"

	"github.com/glossa-project/glossa/locale"
)

// Text is the string-column codec: a locale is stored as its canonical
// hyphenated form. The Parser is consulted only when casting raw input;
// loading a stored value is registry-free.
type Text struct {
	Parser *locale.Parser
}

// Cast converts inbound application data to a Locale: a string (or byte
// slice) is parsed and validated, a Locale passes through unchanged, and
// every other shape is rejected.
func (t Text) Cast(v any) (locale.Locale, error) {
	switch x := v.(type) {
	case locale.Locale:
		return x, nil
	case string:
		return t.Parser.Parse(x)
	case []byte:
		return t.Parser.Parse(string(x))
	default:
		return locale.Locale{}, fmt.Errorf("localedb: cannot cast %T to a locale", v)
	}
}

// Dump renders the locale to its stored representation.
func (t Text) Dump(l locale.Locale) (driver.Value, error) {
	return l.String(), nil
}

// Load reconstitutes a Locale from a stored string without re-validating it
// against the registries. The stored value is trusted to be the canonical
// output of Dump; anything that does not decompose under the canonical
// grammar is rejected.
func (t Text) Load(v any) (locale.Locale, error) {
	switch x := v.(type) {
	case string:
		return decode(x)
	case []byte:
		return decode(string(x))
	default:
		return locale.Locale{}, fmt.Errorf("localedb: cannot load a locale from %T", v)
	}
}

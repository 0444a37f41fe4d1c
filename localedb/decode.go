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

package localedb

import (
	"fmt"
	"strings"

	"github.com/glossa-project/glossa/locale"
)

// decode decomposes a canonical locale string by subtag shape alone, with no
// registry lookups. On canonical output the slots never overlap: after the
// primary code, an extended language is exactly three letters, a script four
// letters in title case, a region two characters or three digits, a variant
// five-plus letters or digit-led four-plus characters, and a one-character
// singleton starts the extension trailer.
func decode(tag string) (locale.Locale, error) {
	if tag == "" {
		return locale.Locale{}, fmt.Errorf("localedb: cannot load a locale from an empty string")
	}
	subtags := strings.Split(tag, "-")
	parts := locale.Parts{Primary: subtags[0]}
	rest := subtags[1:]

	if len(rest) > 0 && len(rest[0]) == 3 && isAlphabetic(rest[0]) {
		parts.Extended = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && len(rest[0]) == 4 && isTitleCased(rest[0]) {
		parts.Script = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && (len(rest[0]) == 2 || (len(rest[0]) == 3 && isNumeric(rest[0]))) {
		parts.Region = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && isVariantShaped(rest[0]) {
		parts.Variant = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && len(rest[0]) == 1 {
		parts.Singleton = rest[0]
		parts.Extension = rest[1:]
		rest = nil
	}
	if len(rest) > 0 {
		return locale.Locale{}, fmt.Errorf("localedb: stored locale %q is not in canonical form", tag)
	}
	return locale.Make(parts), nil
}

// isVariantShaped reports whether a subtag matches the canonical variant
// shape: five or more letters, or four or more characters led by a digit.
func isVariantShaped(s string) bool {
	if len(s) >= 4 && s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return len(s) >= 5 && isAlphabetic(s)
}

// isAlphabetic checks if a string contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isNumeric checks if a string contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isTitleCased checks for an upper-case ASCII letter followed only by
// lower-case ASCII letters.
func isTitleCased(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

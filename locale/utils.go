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

// isLowerAlpha checks if a byte is a lower-case ASCII letter.
func isLowerAlpha(b byte) bool { return b >= 'a' && b <= 'z' }

// isUpperAlpha checks if a byte is an upper-case ASCII letter.
func isUpperAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return isLowerAlpha(b) || isUpperAlpha(b) }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

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
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isTitleCased checks if a string starts with an upper-case ASCII letter
// followed only by lower-case ASCII letters (e.g. "Latn").
func isTitleCased(s string) bool {
	if s == "" || !isUpperAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLowerAlpha(s[i]) {
			return false
		}
	}
	return true
}

// titleCase folds an ASCII string to title case: first letter upper, the
// rest lower. Non-letter bytes are left as-is.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if isLowerAlpha(b[0]) {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if isUpperAlpha(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

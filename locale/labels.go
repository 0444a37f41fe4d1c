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
	"fmt"
	"strings"
)

// Direction is the writing direction of a language.
type Direction int

// The two writing directions the direction table distinguishes.
const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Label resolves a human-readable display name for the locale: the language
// label, followed parenthetically by the script and region labels when at
// least one of them is present, e.g. "Chinese (Simplified Han)" or
// "Portuguese (Brazil)". A present script or region whose label is not in
// the registry (such as a numeric UN M.49 region) contributes nothing.
//
// Locales produced by Parse always carry a registered primary code; the
// error return exists only for values assembled with Make from unvalidated
// parts, which violate that precondition.
func (p *Parser) Label(l Locale) (string, error) {
	entry, _, ok := p.registry.Language(l.Primary())
	if !ok {
		return "", fmt.Errorf("language %q: %w", l.Primary(), ErrUnknownLanguage)
	}
	var details []string
	if script, ok := l.Script(); ok {
		if label, found := p.registry.Script(script); found {
			details = append(details, label)
		}
	}
	if region, ok := l.Region(); ok {
		if label, found := p.registry.Region(region); found {
			details = append(details, label)
		}
	}
	if len(details) == 0 {
		return entry.Label, nil
	}
	return entry.Label + " (" + strings.Join(details, " - ") + ")", nil
}

// Alignment reports the writing direction of the locale's primary language.
// It reports false when the direction table has no entry for the code; the
// table is keyed by ISO 639-1 codes, so locales normalized to a three-letter
// primary generally have no known direction. Callers must treat an unknown
// direction as unknown rather than silently assuming LTR.
func (p *Parser) Alignment(l Locale) (Direction, bool) {
	return p.registry.Direction(l.Primary())
}

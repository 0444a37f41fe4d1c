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

// RFC 5646 shape constants for subtag classification.
const (
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	minVariantLenAlpha = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit = 4 // Min length of a variant starting with a digit.
	singletonLen       = 1 // An extension singleton is a single character.
)

// Parser is a reusable language tag parser. It holds the parsed registry
// tables and should be created once and reused for efficiency; it is safe
// for concurrent use.
type Parser struct {
	registry *Registry
}

// Registry returns the parser's immutable lookup tables.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse consumes a hyphenated language tag and returns its structured
// Locale value. Subtags are classified left to right into the grammatical
// slots primary language, extended language, script, region, variant and
// extension; each subtag is consumed at most once and a slot that does not
// recognize the next subtag passes it to the following slot untouched.
//
// Any failure aborts the whole parse: the returned error is a *ParseError
// carrying the original tag, a reason naming the offending subtag, and one
// of the package's category errors as its cause. No partial Locale is ever
// returned.
func (p *Parser) Parse(tag string) (Locale, error) {
	run := &parseRun{
		registry: p.registry,
		tag:      tag,
		rest:     strings.Split(tag, "-"),
	}
	for _, stage := range parseStages {
		if err := stage(run); err != nil {
			return Locale{}, err
		}
	}
	if len(run.rest) > 0 {
		return Locale{}, run.fail(ErrTrailingSubtags, "unrecognized sub-tags %q", strings.Join(run.rest, "-"))
	}
	return run.loc, nil
}

// parseStages is the fixed stage pipeline, in grammatical order. Each stage
// either consumes subtags from the front of the remaining sequence, declines
// and leaves the sequence untouched, or fails the whole parse.
var parseStages = []func(*parseRun) error{
	(*parseRun).primaryLanguage,
	(*parseRun).extendedLanguage,
	(*parseRun).script,
	(*parseRun).region,
	(*parseRun).variant,
	(*parseRun).extension,
}

// parseRun holds the state of a single parse: the locale under construction
// and the subtags not yet consumed. Intermediate states are never observable
// outside the run.
type parseRun struct {
	registry *Registry
	tag      string
	rest     []string
	loc      Locale
}

// peek returns the next unconsumed subtag without consuming it.
func (r *parseRun) peek() (string, bool) {
	if len(r.rest) == 0 {
		return "", false
	}
	return r.rest[0], true
}

// consume drops the subtag peek returned.
func (r *parseRun) consume() {
	r.rest = r.rest[1:]
}

// fail wraps a stage failure with the original tag and its category error.
func (r *parseRun) fail(category error, format string, args ...any) error {
	return &ParseError{
		Tag:    r.tag,
		Reason: fmt.Sprintf(format, args...),
		Err:    category,
	}
}

// primaryLanguage consumes the mandatory first subtag. The code must resolve
// in the language registry and is normalized to the entry's preferred
// encoding, discarding the code as typed.
func (r *parseRun) primaryLanguage() error {
	head, _ := r.peek() // strings.Split always yields at least one element.
	entry, _, ok := r.registry.Language(head)
	if !ok {
		return r.fail(ErrUnknownLanguage, "unknown primary language sub-tag %q", head)
	}
	preferred, ok := entry.PreferredCode()
	if !ok {
		return r.fail(ErrNoPreferredCode, "language %q has no usable alternate code", head)
	}
	r.loc.primary = preferred
	r.consume()
	return nil
}

// extendedLanguage consumes a subtag that resolves in the language registry
// under the ISO 639-3 encoding. A subtag that does not resolve at all is
// left for a later stage; one that resolves under another encoding is an
// error. The subtag is kept verbatim, never normalized.
func (r *parseRun) extendedLanguage() error {
	head, ok := r.peek()
	if !ok {
		return nil
	}
	_, kind, found := r.registry.Language(head)
	if !found {
		return nil
	}
	if kind != ISO6393 {
		return r.fail(ErrInvalidExtendedLanguage, "sub-tag %q is registered as %s, not a valid ISO 639-3 code", head, kind)
	}
	r.loc.extended = head
	r.consume()
	return nil
}

// script consumes a four-letter subtag whose capitalization already matches
// title case. A subtag of the right shape that is missing from the script
// registry is an error; any other shape is left for a later stage.
func (r *parseRun) script() error {
	head, ok := r.peek()
	if !ok {
		return nil
	}
	if len(head) != scriptLen || !isTitleCased(head) {
		return nil
	}
	if _, ok := r.registry.Script(head); !ok {
		return r.fail(ErrUnknownScript, "script %q not found", head)
	}
	r.loc.script = head
	r.consume()
	return nil
}

// region consumes either a two-character subtag registered in the region
// table or a three-digit UN M.49 numeric area code. Numeric codes are
// accepted unconditionally, without a registry check; a two-character code
// missing from the table is an error. Other shapes are left for the variant
// stage.
func (r *parseRun) region() error {
	head, ok := r.peek()
	if !ok {
		return nil
	}
	switch {
	case len(head) == regionAlphaLen:
		if _, ok := r.registry.Region(head); !ok {
			return r.fail(ErrUnknownRegion, "region %q not found", head)
		}
	case len(head) == regionNumericLen && isNumeric(head):
		// UN M.49 area codes pass without a registry check.
	default:
		return nil
	}
	r.loc.region = head
	r.consume()
	return nil
}

// variant consumes a subtag matching the RFC 5646 variant shape: at least
// four characters starting with a digit, or more than four characters of
// letters only. Variants are not registry-checked.
func (r *parseRun) variant() error {
	head, ok := r.peek()
	if !ok {
		return nil
	}
	digitForm := len(head) >= minVariantLenDigit && isDigit(head[0])
	alphaForm := len(head) >= minVariantLenAlpha && isAlphabetic(head)
	if !digitForm && !alphaForm {
		return nil
	}
	r.loc.variant = head
	r.consume()
	return nil
}

// extension consumes a one-character singleton marker and, with it, every
// remaining subtag verbatim, terminating the pipeline. Extension contents
// are opaque to this package.
func (r *parseRun) extension() error {
	head, ok := r.peek()
	if !ok || len(head) != singletonLen {
		return nil
	}
	r.loc.extension = Extension{
		Singleton: head,
		Subtags:   append([]string(nil), r.rest[1:]...),
	}
	r.rest = nil
	return nil
}

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
	"errors"
	"fmt"
)

// Errors that categorize a language tag parse failure. Every error returned
// by Parser.Parse is a *ParseError wrapping exactly one of these, so callers
// can branch with errors.Is.
var (
	ErrUnknownLanguage         = errors.New("the primary language subtag is not in the language registry")
	ErrNoPreferredCode         = errors.New("the language entry carries no ISO 639-1, 639-2/T or 639-3 code")
	ErrInvalidExtendedLanguage = errors.New("the extended language subtag is not an ISO 639-3 code")
	ErrUnknownScript           = errors.New("the script subtag is not in the script registry")
	ErrUnknownRegion           = errors.New("the region subtag is not in the region registry")
	ErrTrailingSubtags         = errors.New("the tag carries unrecognized trailing subtags")
)

// ParseError is the error type returned by Parser.Parse. It carries the
// original tag, a human-readable reason naming the offending subtag, and
// one of the category errors above as its wrapped cause.
type ParseError struct {
	Tag    string
	Reason string
	Err    error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse language tag %q: %s", e.Tag, e.Reason)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

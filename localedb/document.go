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

	"github.com/glossa-project/glossa/locale"
)

// Field names of the document representation.
const (
	fieldPrimary   = "primary"
	fieldExtended  = "extended"
	fieldScript    = "script"
	fieldRegion    = "region"
	fieldVariant   = "variant"
	fieldSingleton = "singleton"
	fieldExtension = "extension"
)

// Document is the structured-column codec: a locale is stored as a field
// map, suitable for document stores and jsonb columns. The Parser is
// consulted only when casting raw input.
type Document struct {
	Parser *locale.Parser
}

// Cast converts inbound application data to a Locale under the same rules
// as Text.Cast: strings are parsed, Locales pass through, everything else
// is rejected.
func (d Document) Cast(v any) (locale.Locale, error) {
	return Text{Parser: d.Parser}.Cast(v)
}

// Dump explodes the locale into its stored field map. Absent fields are
// omitted; the extension is stored as its singleton plus the raw trailing
// subtags.
func (d Document) Dump(l locale.Locale) (map[string]any, error) {
	parts := l.Parts()
	doc := map[string]any{fieldPrimary: parts.Primary}
	if parts.Extended != "" {
		doc[fieldExtended] = parts.Extended
	}
	if parts.Script != "" {
		doc[fieldScript] = parts.Script
	}
	if parts.Region != "" {
		doc[fieldRegion] = parts.Region
	}
	if parts.Variant != "" {
		doc[fieldVariant] = parts.Variant
	}
	if parts.Singleton != "" {
		doc[fieldSingleton] = parts.Singleton
		doc[fieldExtension] = append([]string(nil), parts.Extension...)
	}
	return doc, nil
}

// Load rebuilds a Locale from a stored field map without re-validating it
// against the registries. Unknown keys and wrongly typed values are
// rejected.
func (d Document) Load(v any) (locale.Locale, error) {
	doc, ok := v.(map[string]any)
	if !ok {
		return locale.Locale{}, fmt.Errorf("localedb: cannot load a locale from %T", v)
	}

	var parts locale.Parts
	for key, value := range doc {
		switch key {
		case fieldPrimary, fieldExtended, fieldScript, fieldRegion, fieldVariant, fieldSingleton:
			s, ok := value.(string)
			if !ok {
				return locale.Locale{}, fmt.Errorf("localedb: field %q must be a string, got %T", key, value)
			}
			switch key {
			case fieldPrimary:
				parts.Primary = s
			case fieldExtended:
				parts.Extended = s
			case fieldScript:
				parts.Script = s
			case fieldRegion:
				parts.Region = s
			case fieldVariant:
				parts.Variant = s
			case fieldSingleton:
				parts.Singleton = s
			}
		case fieldExtension:
			subtags, err := stringSlice(value)
			if err != nil {
				return locale.Locale{}, fmt.Errorf("localedb: field %q: %w", key, err)
			}
			parts.Extension = subtags
		default:
			return locale.Locale{}, fmt.Errorf("localedb: unknown locale field %q", key)
		}
	}
	if parts.Primary == "" {
		return locale.Locale{}, fmt.Errorf("localedb: stored locale document has no %q field", fieldPrimary)
	}
	return locale.Make(parts), nil
}

// stringSlice coerces the extension subtag list, accepting both the native
// []string form and the []any form JSON decoding produces.
func stringSlice(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...), nil
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("must be a list of strings, got element of type %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a list of strings, got %T", v)
	}
}

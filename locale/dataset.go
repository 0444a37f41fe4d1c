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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Column counts of the tab-separated reference data files.
const (
	languageColumns = 5 // iso6393, iso6392b, iso6392t, iso6391, label
	labelColumns    = 2 // code, label
)

// forEachDataRow feeds every data row of a tab-separated reference file to
// fn, skipping blank lines and '#' comments. Errors are wrapped with the
// file name and line number.
func forEachDataRow(name string, r io.Reader, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(strings.Split(line, "\t")); err != nil {
			return fmt.Errorf("%s line %d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// parseLanguages reads the language reference data: one row per language,
// listing the entry's four ISO 639 codes (any of which may be empty) and its
// display label.
func parseLanguages(name string, r io.Reader) ([]LanguageEntry, error) {
	var entries []LanguageEntry
	err := forEachDataRow(name, r, func(fields []string) error {
		if len(fields) != languageColumns {
			return fmt.Errorf("expected %d tab-separated fields, got %d", languageColumns, len(fields))
		}
		entry := LanguageEntry{
			ISO6393:  fields[0],
			ISO6392B: fields[1],
			ISO6392T: fields[2],
			ISO6391:  fields[3],
			Label:    fields[4],
		}
		if entry.Label == "" {
			return fmt.Errorf("language entry has no label")
		}
		if entry.ISO6393 == "" && entry.ISO6392B == "" && entry.ISO6392T == "" && entry.ISO6391 == "" {
			return fmt.Errorf("language entry %q has no codes", entry.Label)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// parseLabels reads a flat code-to-label reference file, used for both the
// region and the script data.
func parseLabels(name string, r io.Reader) (map[string]string, error) {
	labels := make(map[string]string)
	err := forEachDataRow(name, r, func(fields []string) error {
		if len(fields) != labelColumns {
			return fmt.Errorf("expected %d tab-separated fields, got %d", labelColumns, len(fields))
		}
		code, label := fields[0], fields[1]
		if code == "" || label == "" {
			return fmt.Errorf("empty code or label")
		}
		labels[code] = label
		return nil
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// parseDirections reads the writing-direction reference data: one row per
// ISO 639-1 code with the value "ltr" or "rtl".
func parseDirections(name string, r io.Reader) (map[string]Direction, error) {
	directions := make(map[string]Direction)
	err := forEachDataRow(name, r, func(fields []string) error {
		if len(fields) != labelColumns {
			return fmt.Errorf("expected %d tab-separated fields, got %d", labelColumns, len(fields))
		}
		code := fields[0]
		if code == "" {
			return fmt.Errorf("empty language code")
		}
		switch fields[1] {
		case "ltr":
			directions[code] = LTR
		case "rtl":
			directions[code] = RTL
		default:
			return fmt.Errorf("direction for %q must be \"ltr\" or \"rtl\", got %q", code, fields[1])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return directions, nil
}

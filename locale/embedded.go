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
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
)

//go:embed languages.tsv
var languagesData []byte

//go:embed regions.tsv
var regionsData []byte

//go:embed scripts.tsv
var scriptsData []byte

//go:embed directions.tsv
var directionsData []byte

// Option configures the registry tables a Parser is built with.
type Option func(*parserConfig)

type parserConfig struct {
	regionLabels map[string]string
	scriptLabels map[string]string
}

// WithRegionLabels merges extra region entries into the built-in region
// table. On key collision the supplied label wins, so the option can both
// add private-use codes and override built-in display names.
func WithRegionLabels(labels map[string]string) Option {
	return func(cfg *parserConfig) {
		cfg.regionLabels = labels
	}
}

// WithScriptLabels merges extra script entries into the built-in script
// table. On key collision the supplied label wins.
func WithScriptLabels(labels map[string]string) Option {
	return func(cfg *parserConfig) {
		cfg.scriptLabels = labels
	}
}

// NewParser creates a parser from the embedded reference data, optionally
// extended with caller-supplied region and script entries.
//
// IMPORTANT: This function parses the embedded reference data on every call
// and is therefore an expensive operation. For performance, call it once at
// application startup and reuse the returned parser instance; the parser is
// immutable and safe for concurrent use.
func NewParser(opts ...Option) (*Parser, error) {
	if len(languagesData) == 0 {
		return nil, errors.New("embedded language reference data is empty or not found")
	}

	var cfg parserConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := parseLanguages("languages.tsv", bytes.NewReader(languagesData))
	if err != nil {
		return nil, err
	}
	regions, err := parseLabels("regions.tsv", bytes.NewReader(regionsData))
	if err != nil {
		return nil, err
	}
	scripts, err := parseLabels("scripts.tsv", bytes.NewReader(scriptsData))
	if err != nil {
		return nil, err
	}
	directions, err := parseDirections("directions.tsv", bytes.NewReader(directionsData))
	if err != nil {
		return nil, err
	}

	registry := newRegistry(entries, regions, scripts, directions)
	registry.mergeRegions(cfg.regionLabels)
	registry.mergeScripts(cfg.scriptLabels)

	return &Parser{registry: registry}, nil
}

/*
 * Copyright 2019 The Kythe Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dict

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"bitbucket.org/creachadair/stringset"
)

// ErrMissingDictionary is wrapped with a file path and returned when a
// required (main or quantifier) dictionary file cannot be opened.
var ErrMissingDictionary = errors.New("dictionary file missing")

// Set bundles the three tries the analyzer core consults: dictionary
// words, quantifier/measure words, and stop words.
type Set struct {
	Main       Trie
	Quantifier Trie
	Stopword   Trie

	loaded stringset.Set // extension file paths already loaded, to avoid double insertion
}

// NewSet returns an empty, ready-to-populate Set.
func NewSet() *Set {
	return &Set{loaded: stringset.New()}
}

// LoadMain loads the required main dictionary from path. A missing file is
// fatal and returned wrapped in ErrMissingDictionary.
func (s *Set) LoadMain(path string) error {
	return loadRequired(path, &s.Main)
}

// LoadQuantifier loads the required quantifier/measure-word dictionary
// from path. A missing file is fatal and returned wrapped in
// ErrMissingDictionary.
func (s *Set) LoadQuantifier(path string) error {
	return loadRequired(path, &s.Quantifier)
}

// LoadStopword loads the optional stop-word dictionary from path. A
// missing file is logged and silently ignored, per the core's error
// handling design: stop-word and extension dictionaries never fail load.
func (s *Set) LoadStopword(path string) {
	loadOptional(path, &s.Stopword)
}

// LoadExtMain loads zero or more extension main-dictionary files into the
// main trie, skipping any path already loaded and logging (rather than
// failing) any file that cannot be opened.
func (s *Set) LoadExtMain(paths []string) {
	s.loadExt(paths, &s.Main)
}

// LoadExtStopword loads zero or more extension stop-word files into the
// stopword trie, with the same missing-file tolerance as LoadExtMain.
func (s *Set) LoadExtStopword(paths []string) {
	s.loadExt(paths, &s.Stopword)
}

func (s *Set) loadExt(paths []string, t *Trie) {
	for _, p := range paths {
		if s.loaded.Contains(p) {
			continue
		}
		s.loaded.Add(p)
		loadOptional(p, t)
	}
}

func loadRequired(path string, t *Trie) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingDictionary, path, err)
	}
	defer f.Close()
	if err := loadLines(f, t); err != nil {
		return fmt.Errorf("reading dictionary %s: %w", path, err)
	}
	return nil
}

func loadOptional(path string, t *Trie) {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("skipping optional dictionary", "path", path, "error", err)
		return
	}
	defer f.Close()
	if err := loadLines(f, t); err != nil {
		slog.Warn("error reading optional dictionary", "path", path, "error", err)
	}
}

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

// Package ikconf loads the INI-style configuration file that selects a
// tokenizer's output mode and dictionary files.
package ikconf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/creachadair/ini"
)

// Config holds the settings read from a tokenizer configuration file.
type Config struct {
	UseSmart        bool
	EnableLowercase bool

	DictPath           string
	MainDictFile       string
	QuantifierDictFile string
	StopwordDictFile   string

	ExtDictFiles         []string
	ExtStopwordDictFiles []string
}

// Load parses an INI-style configuration from r. Unknown sections and
// keys are ignored.
//
// Recognized layout:
//
//	[tokenizer]
//	use_smart = true
//	enable_lowercase = false
//
//	[dict]
//	path = /usr/share/ik
//	main = main.dic
//	quantifier = quantifier.dic
//	stopword = stopword.dic
//	ext = ext1.dic ext2.dic
//	ext_stopword = extstop1.dic
func Load(r io.Reader) (*Config, error) {
	c := &Config{}
	err := ini.Parse(r, ini.Handler{
		KeyValue: func(loc ini.Location, key string, values []string) error {
			v := flatSplit(values)
			switch loc.Section {
			case "tokenizer":
				return c.setTokenizerKey(key, v)
			case "dict":
				return c.setDictKey(key, v)
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return c, nil
}

func (c *Config) setTokenizerKey(key string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	b, err := parseBool(values[0])
	if err != nil {
		return fmt.Errorf("tokenizer.%s: %w", key, err)
	}
	switch key {
	case "use_smart":
		c.UseSmart = b
	case "enable_lowercase":
		c.EnableLowercase = b
	}
	return nil
}

func (c *Config) setDictKey(key string, values []string) error {
	switch key {
	case "path":
		if len(values) > 0 {
			c.DictPath = values[0]
		}
	case "main":
		if len(values) > 0 {
			c.MainDictFile = values[0]
		}
	case "quantifier":
		if len(values) > 0 {
			c.QuantifierDictFile = values[0]
		}
	case "stopword":
		if len(values) > 0 {
			c.StopwordDictFile = values[0]
		}
	case "ext":
		c.ExtDictFiles = values
	case "ext_stopword":
		c.ExtStopwordDictFiles = values
	}
	return nil
}

// flatSplit splits each INI value on whitespace and flattens the
// result, so a multi-value key may be written either space-separated on
// one line or repeated across several.
func flatSplit(values []string) []string {
	var result []string
	for _, v := range values {
		result = append(result, strings.Fields(v)...)
	}
	return result
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
}

// MainPath returns the resolved path to the main dictionary file.
func (c *Config) MainPath() string { return c.resolve(c.MainDictFile) }

// QuantifierPath returns the resolved path to the quantifier dictionary file.
func (c *Config) QuantifierPath() string { return c.resolve(c.QuantifierDictFile) }

// StopwordPath returns the resolved path to the stopword dictionary file.
func (c *Config) StopwordPath() string { return c.resolve(c.StopwordDictFile) }

// ExtPaths returns the resolved paths of the extension main dictionaries.
func (c *Config) ExtPaths() []string { return c.resolveAll(c.ExtDictFiles) }

// ExtStopwordPaths returns the resolved paths of the extension stopword
// dictionaries.
func (c *Config) ExtStopwordPaths() []string { return c.resolveAll(c.ExtStopwordDictFiles) }

func (c *Config) resolve(name string) string {
	if name == "" || c.DictPath == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DictPath, name)
}

func (c *Config) resolveAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = c.resolve(n)
	}
	return out
}

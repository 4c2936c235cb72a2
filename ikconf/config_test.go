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

package ikconf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `
[tokenizer]
use_smart = true
enable_lowercase = false

[dict]
path = /usr/share/ik
main = main.dic
quantifier = quantifier.dic
stopword = stopword.dic
ext = ext1.dic ext2.dic
ext_stopword = extstop1.dic
`

func TestLoadParsesRecognizedSections(t *testing.T) {
	c, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		UseSmart:             true,
		EnableLowercase:      false,
		DictPath:             "/usr/share/ik",
		MainDictFile:         "main.dic",
		QuantifierDictFile:   "quantifier.dic",
		StopwordDictFile:     "stopword.dic",
		ExtDictFiles:         []string{"ext1.dic", "ext2.dic"},
		ExtStopwordDictFiles: []string{"extstop1.dic"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadIgnoresUnknownSectionsAndKeys(t *testing.T) {
	const text = `
[tokenizer]
use_smart = yes
bogus_key = whatever

[mystery]
key = value
`
	c, err := Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.UseSmart {
		t.Errorf("UseSmart = false, want true")
	}
}

func TestLoadRejectsInvalidBoolean(t *testing.T) {
	const text = `
[tokenizer]
use_smart = maybe
`
	if _, err := Load(strings.NewReader(text)); err == nil {
		t.Fatalf("Load succeeded, want error for invalid boolean")
	}
}

func TestResolvePathsJoinDictPath(t *testing.T) {
	c := &Config{
		DictPath:             "/usr/share/ik",
		MainDictFile:         "main.dic",
		ExtDictFiles:         []string{"ext1.dic", "/abs/ext2.dic"},
		ExtStopwordDictFiles: []string{"extstop1.dic"},
	}
	if got, want := c.MainPath(), "/usr/share/ik/main.dic"; got != want {
		t.Errorf("MainPath() = %q, want %q", got, want)
	}
	wantExt := []string{"/usr/share/ik/ext1.dic", "/abs/ext2.dic"}
	if diff := cmp.Diff(wantExt, c.ExtPaths()); diff != "" {
		t.Errorf("ExtPaths (-want +got):\n%s", diff)
	}
	wantStop := []string{"/usr/share/ik/extstop1.dic"}
	if diff := cmp.Diff(wantStop, c.ExtStopwordPaths()); diff != "" {
		t.Errorf("ExtStopwordPaths (-want +got):\n%s", diff)
	}
}

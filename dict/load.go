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
	"bufio"
	"io"
	"strings"
)

const utf8BOM = "\xef\xbb\xbf"

// loadLines reads r line by line, inserting each non-comment, non-empty
// line's code points into t. It strips an optional UTF-8 BOM from the
// first line, ignores empty lines and lines beginning with '#', and strips
// a trailing '\r' (for CRLF-terminated dictionary files).
func loadLines(r io.Reader, t *Trie) error {
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.Insert([]rune(line))
	}
	return scanner.Err()
}

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

// Package format encodes Lexeme values to the line-oriented text format
// emitted by cmd/iktokenize.
package format

import (
	"bytes"
	"fmt"

	"github.com/creachadair-ik/ik/lexeme"
)

// Marshal encodes lexemes as one line per lexeme in the form
// "offset:length:type:text", where offset is AbsoluteBegin() and length
// is ByteLen.
func Marshal(lexemes []lexeme.Lexeme) ([]byte, error) {
	var buf bytes.Buffer
	for _, l := range lexemes {
		if err := writeLine(&buf, l); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, l lexeme.Lexeme) error {
	_, err := fmt.Fprintf(buf, "%d:%d:%s:%s\n", l.AbsoluteBegin(), l.ByteLen, l.Type, l.Text)
	return err
}

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

// Package classify decodes UTF-8 byte ranges into classified code points
// (TypedRune) for the ik analyzer core. It folds full-width ASCII to
// half-width before classifying, and never normalizes text beyond that
// fold.
package classify

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Type is the coarse character class assigned to a decoded code point.
type Type int

// Character classes recognized by the analyzer core.
const (
	Useless Type = iota
	Chinese
	OtherCJK
	English
	Arabic
)

func (t Type) String() string {
	switch t {
	case Chinese:
		return "Chinese"
	case OtherCJK:
		return "OtherCJK"
	case English:
		return "English"
	case Arabic:
		return "Arabic"
	default:
		return "Useless"
	}
}

// TypedRune is a single decoded code point together with its position and
// classification within the buffer it was decoded from.
type TypedRune struct {
	Char       rune
	ByteOffset int
	ByteLen    int
	Type       Type
}

// hiraganaStart, hiraganaEnd and friends bound the OtherCJK ranges this
// classifier recognizes: Hiragana, Katakana and Hangul.
const (
	hiraganaStart = 0x3040
	hiraganaEnd   = 0x30FF
	hangulStart   = 0xAC00
	hangulEnd     = 0xD7A3
)

// Options configures a Classifier's folding behavior.
type Options struct {
	// Lowercase folds ASCII and full-width Latin letters to lowercase
	// during classification.
	Lowercase bool
}

// Classifier decodes and classifies runes from a byte slice.
type Classifier struct {
	opts Options
}

// New returns a Classifier configured by opts.
func New(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Decode classifies every code point in buf[:n], returning them in order.
// Malformed UTF-8 is skipped one byte at a time and never aborts decoding;
// ByteOffset values always satisfy the contiguity invariant
// byte_offset + byte_len == next.byte_offset.
func (c *Classifier) Decode(buf []byte, n int) []TypedRune {
	var runes []TypedRune
	for i := 0; i < n; {
		r, size := utf8.DecodeRune(buf[i:n])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		folded := c.fold(r)
		runes = append(runes, TypedRune{
			Char:       folded,
			ByteOffset: i,
			ByteLen:    size,
			Type:       classify(folded),
		})
		i += size
	}
	return runes
}

// AdjustToCompleteChar returns the largest prefix length p <= n such that
// buf[:p] ends on a UTF-8 code point boundary. The caller is responsible
// for carrying buf[p:n] forward into the next refill.
func AdjustToCompleteChar(buf []byte, n int) int {
	if n <= 0 {
		return n
	}
	for p := n - 1; p >= 0 && p >= n-utf8.UTFMax; p-- {
		b := buf[p]
		if b < 0x80 {
			return p + 1
		}
		if b >= 0xC0 {
			// Lead byte: does the rune starting here fit entirely in buf[:n]?
			if !utf8.FullRune(buf[p:n]) {
				return p
			}
			_, size := utf8.DecodeRune(buf[p:n])
			return p + size
		}
		// Continuation byte (0x80-0xBF): keep scanning backward.
	}
	return 0
}

// fold maps full-width ASCII and the ideographic space to their half-width
// counterparts, then optionally lowercases English letters. It never
// performs Unicode normalization.
func (c *Classifier) fold(r rune) rune {
	if r == 0x3000 {
		r = ' '
	} else if r >= 0xFF01 && r <= 0xFF5E {
		folded := width.LookupRune(r).Folded()
		r = folded
	}
	if c.opts.Lowercase && r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}

// classify assigns a Type to an already-folded code point.
func classify(r rune) Type {
	switch {
	case r >= '0' && r <= '9':
		return Arabic
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return English
	case isChineseIdeograph(r):
		return Chinese
	case isOtherCJK(r):
		return OtherCJK
	default:
		return Useless
	}
}

// isChineseIdeograph reports whether r lies in a CJK Unified Ideographs
// block, including the extension blocks.
func isChineseIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// isOtherCJK reports whether r is a Hiragana, Katakana or Hangul code
// point, none of which are treated as Chinese ideographs by this analyzer.
func isOtherCJK(r rune) bool {
	if r >= hiraganaStart && r <= hiraganaEnd {
		return true
	}
	if r >= hangulStart && r <= hangulEnd {
		return true
	}
	return unicode.Is(unicode.Hangul, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hiragana, r)
}

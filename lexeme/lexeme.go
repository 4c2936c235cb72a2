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

// Package lexeme defines the Lexeme candidate/output type, the ordered set
// used to collect candidates within a buffer, and LexemePath, the ordered,
// pairwise non-overlapping sequence used by arbitration.
package lexeme

// Type tags the kind of token a Lexeme represents.
type Type int

// Lexeme type tags recognized by the analyzer core.
const (
	Unknown Type = iota
	English
	Arabic
	Letter
	CNWord
	CNChar
	OtherCJK
	CNum
	Count
	CQuan
)

func (t Type) String() string {
	switch t {
	case English:
		return "English"
	case Arabic:
		return "Arabic"
	case Letter:
		return "Letter"
	case CNWord:
		return "CNWord"
	case CNChar:
		return "CNChar"
	case OtherCJK:
		return "OtherCJK"
	case CNum:
		return "CNum"
	case Count:
		return "Count"
	case CQuan:
		return "CQuan"
	default:
		return "Unknown"
	}
}

// Lexeme is a token candidate or finalized token with byte/char ranges
// into the buffer (or, once emitted, the original input stream) it was
// found in. Text is only populated when the lexeme is handed to the
// caller.
type Lexeme struct {
	Offset    int // absolute byte offset of the buffer this lexeme was found in
	ByteBegin int
	ByteLen   int
	CharBegin int
	CharEnd   int
	Type      Type
	Text      string
}

// New constructs a Lexeme spanning the given byte and char ranges.
func New(byteBegin, byteLen, charBegin, charEnd int, typ Type) Lexeme {
	return Lexeme{ByteBegin: byteBegin, ByteLen: byteLen, CharBegin: charBegin, CharEnd: charEnd, Type: typ}
}

// ByteEnd returns the exclusive end byte offset within the buffer.
func (l Lexeme) ByteEnd() int { return l.ByteBegin + l.ByteLen }

// CharLen returns the number of code points this lexeme spans.
func (l Lexeme) CharLen() int { return l.CharEnd - l.CharBegin }

// AbsoluteBegin returns the lexeme's start offset in the original input
// stream, once Offset has been set by the caller at emission time.
func (l Lexeme) AbsoluteBegin() int { return l.Offset + l.ByteBegin }

// AbsoluteEnd returns the lexeme's exclusive end offset in the original
// input stream.
func (l Lexeme) AbsoluteEnd() int { return l.Offset + l.ByteEnd() }

// Less implements the OrderedLexemeSet ordering: smaller ByteBegin first;
// among equal ByteBegin, longer ByteLen first.
func Less(a, b Lexeme) bool {
	if a.ByteBegin != b.ByteBegin {
		return a.ByteBegin < b.ByteBegin
	}
	return a.ByteLen > b.ByteLen
}

// Equal reports whether a and b have the same (begin, length) key.
func Equal(a, b Lexeme) bool {
	return a.ByteBegin == b.ByteBegin && a.ByteLen == b.ByteLen
}

// Overlaps reports whether a and b's byte ranges intersect.
func Overlaps(a, b Lexeme) bool {
	return a.ByteBegin < b.ByteEnd() && b.ByteBegin < a.ByteEnd()
}

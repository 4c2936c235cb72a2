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

// Package analyze implements AnalyzeContext: the streaming byte buffer,
// decoded rune array, per-segmenter lock bitmap, candidate set, path
// index and result queue shared by the sub-segmenters and the arbitrator
// during a single buffer pass.
package analyze

import (
	"io"

	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/lexeme"
)

// buffSize is the fixed segment buffer size.
const buffSize = 4096

// buffExhaustCritical bounds how close to the end of the decoded rune
// array the cursor may get before an unlocked pass breaks to refill. It
// must stay below the shortest dictionary term length in runes, or
// matches near the critical window would be starved of the lookahead
// they need.
const buffExhaustCritical = 100

// Lock identifies one of the three sub-segmenters for the purpose of the
// buffer-refill lock bitmap: the context must not refill while any
// segmenter is mid-match.
type Lock int

// Lock bits, one per sub-segmenter.
const (
	LockCJK Lock = 1 << iota
	LockQuantifier
	LockLatin
)

// Context holds all per-buffer-pass state: the segment buffer, the
// decoded rune array, the cursor, segmenter locks, the candidate set
// collected so far, the path index produced by arbitration, the result
// FIFO and the running count of consecutive useless runes.
type Context struct {
	classifier *classify.Classifier
	dicts      *dict.Set

	buf       [buffSize]byte
	tail      []byte // incomplete trailing UTF-8 bytes carried from the previous fill
	available int    // valid bytes in buf[:available]
	runes     []classify.TypedRune
	cursor    int

	bufferOffset int
	locks        Lock

	candidates *lexeme.Set
	pathMap    map[int]*lexeme.Path

	results            []lexeme.Lexeme
	lastUselessCharNum int

	numeralCloseEnd  int
	numeralCloseType lexeme.Type
}

// New returns a Context ready to analyze text classified by classifier
// against dicts.
func New(classifier *classify.Classifier, dicts *dict.Set) *Context {
	return &Context{
		classifier:      classifier,
		dicts:           dicts,
		candidates:      lexeme.NewSet(),
		pathMap:         make(map[int]*lexeme.Path),
		numeralCloseEnd: -1,
	}
}

// Dicts returns the dictionary set sub-segmenters should probe.
func (c *Context) Dicts() *dict.Set { return c.dicts }

// Runes returns the decoded rune array for the current buffer.
func (c *Context) Runes() []classify.TypedRune { return c.runes }

// Cursor returns the current rune index.
func (c *Context) Cursor() int { return c.cursor }

// AdvanceCursor moves the cursor to the next rune.
func (c *Context) AdvanceCursor() { c.cursor++ }

// AtBufferEnd reports whether the cursor is on the last decoded rune.
func (c *Context) AtBufferEnd() bool {
	return len(c.runes) == 0 || c.cursor == len(c.runes)-1
}

// BufferOffset returns the running count of bytes already emitted before
// the current buffer's first rune.
func (c *Context) BufferOffset() int { return c.bufferOffset }

// Lock acquires the named segmenter lock, preventing refill until it is
// released.
func (c *Context) Lock(l Lock) { c.locks |= l }

// Unlock releases the named segmenter lock.
func (c *Context) Unlock(l Lock) { c.locks &^= l }

// Candidates returns the ordered set of candidate lexemes accumulated so
// far in this buffer.
func (c *Context) Candidates() *lexeme.Set { return c.candidates }

// RecordNumeralClose notes that a numeral-like run (an Arabic digit run
// or a Chinese numeral run) closed at character index end, with the
// given type. Quantifier uses this to detect, on the same cursor step,
// that such a run just ended immediately before the rune now being
// analyzed, regardless of which segmenter closed it or how the
// candidate set happens to be ordered.
func (c *Context) RecordNumeralClose(end int, typ lexeme.Type) {
	c.numeralCloseEnd = end
	c.numeralCloseType = typ
}

// NumeralClosedAt reports the type of the numeral-like run that closed
// at character index end, if any did.
func (c *Context) NumeralClosedAt(end int) (lexeme.Type, bool) {
	if c.numeralCloseEnd != end {
		return 0, false
	}
	return c.numeralCloseType, true
}

// SetPath records the LexemePath starting at the given rune index, for
// later draining by OutputToResult.
func (c *Context) SetPath(startRune int, p *lexeme.Path) { c.pathMap[startRune] = p }

// PathAt returns the LexemePath recorded at the given rune index, if any.
func (c *Context) PathAt(startRune int) (*lexeme.Path, bool) {
	p, ok := c.pathMap[startRune]
	return p, ok
}

// PopResult removes and returns the oldest finalized lexeme, if any.
func (c *Context) PopResult() (lexeme.Lexeme, bool) {
	if len(c.results) == 0 {
		return lexeme.Lexeme{}, false
	}
	l := c.results[0]
	c.results = c.results[1:]
	return l, true
}

// PeekResult returns the oldest finalized lexeme without removing it.
func (c *Context) PeekResult() (lexeme.Lexeme, bool) {
	if len(c.results) == 0 {
		return lexeme.Lexeme{}, false
	}
	return c.results[0], true
}

// HasResults reports whether any finalized lexemes are waiting.
func (c *Context) HasResults() bool { return len(c.results) > 0 }

// LastUselessCharNum returns the number of consecutive Useless runes
// immediately preceding the current emission point.
func (c *Context) LastUselessCharNum() int { return c.lastUselessCharNum }

// Slice returns the byte range [begin, begin+length) of the current
// buffer as a string. Valid only for results still pending in the result
// queue: once Fill is called again the underlying bytes may have been
// overwritten or shifted.
func (c *Context) Slice(begin, length int) string {
	return string(c.buf[begin : begin+length])
}

// resetSegmenterState clears per-buffer-pass scratch (candidates, paths
// and locks), called once the arbitrator and OutputToResult have both run
// for the current buffer.
func (c *Context) resetSegmenterState() {
	c.candidates.Reset()
	c.pathMap = make(map[int]*lexeme.Path)
	c.locks = 0
	c.numeralCloseEnd = -1
}

// NeedRefillBuffer reports whether the current pass should stop advancing
// the cursor and refill: no segmenter lock may be held, and the cursor
// must be within buffExhaustCritical runes of the end of the decoded
// array.
func (c *Context) NeedRefillBuffer() bool {
	if c.locks != 0 {
		return false
	}
	remaining := len(c.runes) - c.cursor - 1
	return remaining <= buffExhaustCritical
}

// readFill reads from r into buf until it is full, r returns an error, or
// r returns (0, nil) with nothing further to read. io.EOF is not treated
// as an error: the caller distinguishes "nothing more to read" by the
// returned byte count.
func readFill(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		if m == 0 {
			break
		}
	}
	return n, nil
}

// Fill reads the next segment buffer from r. On the first call it reads a
// fresh buffer from offset 0. On subsequent calls it first carries forward
// the bytes from just after the current cursor rune through the end of
// the previously valid region (everything at or before the cursor has
// already been turned into candidates, paths or results and is not
// needed again), plus any incomplete trailing UTF-8 bytes saved by the
// previous call, then reads more data into the remainder. The buffer is
// truncated to the last complete code point; any new incomplete tail is
// saved for the next call.
//
// It returns whether any bytes are available to process; false means the
// reader is exhausted and the tokenizer should terminate.
func (c *Context) Fill(r io.Reader) (bool, error) {
	var carryLen int
	if c.runes != nil && c.cursor < len(c.runes) {
		start := c.runes[c.cursor].ByteOffset + c.runes[c.cursor].ByteLen
		carryLen = copy(c.buf[:], c.buf[start:c.available])
	}
	carryLen += copy(c.buf[carryLen:], c.tail)

	consumed := 0
	if c.runes != nil {
		consumed = c.bufConsumedBytes()
	}
	c.bufferOffset += consumed

	n, err := readFill(r, c.buf[carryLen:])
	if err != nil {
		return false, err
	}
	total := carryLen + n

	complete := classify.AdjustToCompleteChar(c.buf[:], total)
	c.tail = append(c.tail[:0], c.buf[complete:total]...)
	c.available = complete
	c.runes = c.classifier.Decode(c.buf[:], complete)
	c.cursor = 0
	c.resetSegmenterState()

	return c.available > 0, nil
}

// bufConsumedBytes returns the number of bytes of the previous buffer
// that were consumed (i.e. not carried forward): everything through and
// including the rune at the cursor.
func (c *Context) bufConsumedBytes() int {
	if c.cursor >= len(c.runes) {
		return c.available
	}
	return c.runes[c.cursor].ByteOffset + c.runes[c.cursor].ByteLen
}

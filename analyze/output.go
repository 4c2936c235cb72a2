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

package analyze

import (
	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/lexeme"
)

// OutputToResult walks the decoded runes from 0 through the cursor
// (inclusive), draining the arbitrated LexemePath recorded at each rune
// index into the result FIFO and emitting single-rune CNChar/OtherCJK
// lexemes for any CJK rune that no path covers. Useless runes and
// already-consumed Latin/Arabic runs (covered by a path member and so
// never revisited) are skipped without emitting anything; consecutive
// Useless runes bump lastUselessCharNum, which resets to zero at every
// non-Useless rune, whether or not a lexeme is emitted for it.
//
// This follows the same FIFO draining shape as a token filter that
// walks a pre-scanned stream once and decides, per position, what to
// keep and what to drop.
func (c *Context) OutputToResult() {
	i := 0
	for i <= c.cursor && i < len(c.runes) {
		r := c.runes[i]
		if r.Type == classify.Useless {
			c.lastUselessCharNum++
			i++
			continue
		}
		if p, ok := c.pathMap[i]; ok {
			i = c.drainPath(p, i)
			c.lastUselessCharNum = 0
			continue
		}
		c.emitSingleIfCJK(i)
		c.lastUselessCharNum = 0
		i++
	}
	c.pathMap = make(map[int]*lexeme.Path)
}

// drainPath appends a path's members to the result FIFO in order, filling
// any char-index gaps before and between members with single-rune CJK
// lexemes, and returns the char index just past the path's last member.
// Runes after the last member are left to the caller.
func (c *Context) drainPath(p *lexeme.Path, start int) int {
	cursor := start
	for _, m := range p.Members() {
		for g := cursor; g < m.CharBegin; g++ {
			c.emitSingleIfCJK(g)
		}
		m.Offset = c.bufferOffset
		c.results = append(c.results, m)
		cursor = m.CharEnd
	}
	return cursor
}

// emitSingleIfCJK appends a single-rune CNChar or OtherCJK lexeme for the
// rune at idx if it is Chinese or OtherCJK; runes of other classes (never
// passed a gap that should contain them) are left untouched.
func (c *Context) emitSingleIfCJK(idx int) {
	r := c.runes[idx]
	var typ lexeme.Type
	switch r.Type {
	case classify.Chinese:
		typ = lexeme.CNChar
	case classify.OtherCJK:
		typ = lexeme.OtherCJK
	default:
		return
	}
	l := lexeme.New(r.ByteOffset, r.ByteLen, idx, idx+1, typ)
	l.Offset = c.bufferOffset
	c.results = append(c.results, l)
}

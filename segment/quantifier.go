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

package segment

import (
	"github.com/creachadair-ik/ik/analyze"
	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/lexeme"
)

// chineseNumberRunes are the code points recognized as part of a Chinese
// numeral run.
var chineseNumberRunes = buildRuneSet("一二两三四五六七八九十零壹贰叁肆伍陆柒捌玖拾百千万亿拾佰仟萬億兆卅廿")

func buildRuneSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// Quantifier detects Chinese-numeral runs and, when engaged, measure-word
// (quantifier dictionary) hits.
type Quantifier struct {
	numActive        bool
	numStart, numEnd int

	measureLive []dict.Hit
}

// NewQuantifier returns a Quantifier segmenter with both tracks idle.
func NewQuantifier() *Quantifier { return &Quantifier{} }

// Reset clears both tracks.
func (s *Quantifier) Reset() {
	s.numActive = false
	s.measureLive = s.measureLive[:0]
}

// Analyze implements Segmenter.
func (s *Quantifier) Analyze(ctx *analyze.Context) error {
	runes := ctx.Runes()
	i := ctx.Cursor()
	r := runes[i]

	if r.Type != classify.Chinese {
		if s.numActive {
			s.emitCNum(ctx, runes)
		}
		s.measureLive = s.measureLive[:0]
		ctx.Unlock(analyze.LockQuantifier)
		return nil
	}

	if chineseNumberRunes[r.Char] {
		if !s.numActive {
			s.numActive = true
			s.numStart = i
		}
		s.numEnd = i
	} else if s.numActive {
		s.emitCNum(ctx, runes)
		s.numActive = false
	}

	prevQuantity := false
	if typ, ok := ctx.NumeralClosedAt(i); ok && (typ == lexeme.CNum || typ == lexeme.Arabic) {
		prevQuantity = true
	}

	if s.numActive || prevQuantity || len(s.measureLive) > 0 {
		s.probeMeasure(ctx, runes, i)
	}

	if ctx.AtBufferEnd() && s.numActive {
		s.emitCNum(ctx, runes)
		s.numActive = false
	}

	if s.numActive || len(s.measureLive) > 0 {
		ctx.Lock(analyze.LockQuantifier)
	} else {
		ctx.Unlock(analyze.LockQuantifier)
	}
	return nil
}

// probeMeasure extends live quantifier-trie hits and probes for a new
// length-1 hit at i, exactly as CJK.Analyze does against the main trie.
func (s *Quantifier) probeMeasure(ctx *analyze.Context, runes []classify.TypedRune, i int) {
	trie := &ctx.Dicts().Quantifier
	kept := s.measureLive[:0]
	for _, h := range s.measureLive {
		trie.MatchExtend(runes, i, &h)
		if h.IsMatch() {
			ctx.Candidates().Add(lexeme.New(h.ByteBegin, h.ByteEnd-h.ByteBegin, h.CharBegin, h.CharEnd, lexeme.Count))
		}
		if h.IsPrefix() {
			kept = append(kept, h)
		}
	}
	s.measureLive = kept

	probe := trie.Match(runes, i, 1)
	if probe.IsMatch() {
		ctx.Candidates().Add(lexeme.New(probe.ByteBegin, probe.ByteEnd-probe.ByteBegin, probe.CharBegin, probe.CharEnd, lexeme.Count))
	}
	if probe.IsPrefix() {
		s.measureLive = append(s.measureLive, probe)
	}
}

// emitCNum closes the active numeral track, summing each covered rune's
// actual byte length (not an assumed constant width, which would be
// wrong outside the BMP), and records the closure so a measure word
// immediately following it is detected regardless of dictionary
// contents.
func (s *Quantifier) emitCNum(ctx *analyze.Context, runes []classify.TypedRune) {
	begin := runes[s.numStart]
	total := 0
	for k := s.numStart; k <= s.numEnd; k++ {
		total += runes[k].ByteLen
	}
	ctx.Candidates().Add(lexeme.New(begin.ByteOffset, total, s.numStart, s.numEnd+1, lexeme.CNum))
	ctx.RecordNumeralClose(s.numEnd+1, lexeme.CNum)
}

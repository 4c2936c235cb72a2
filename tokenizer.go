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

// Package ik implements the IK-style Chinese/CJK tokenizer: a streaming
// analyzer that turns UTF-8 text into a sequence of lexemes suitable for
// full-text indexing, in either maximum-coverage or smart mode.
package ik

import (
	"io"
	"strings"

	"github.com/creachadair-ik/ik/analyze"
	"github.com/creachadair-ik/ik/arbitrate"
	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/ikconf"
	"github.com/creachadair-ik/ik/lexeme"
	"github.com/creachadair-ik/ik/segment"
)

// Tokenizer turns a byte stream into a sequence of Lexeme values. It is a
// single-reader, single-goroutine iterator: Next is not safe for
// concurrent use, but the underlying dict.Set may be shared read-only
// across many Tokenizers.
type Tokenizer struct {
	cfg  *ikconf.Config
	segs []segment.Segmenter
	arb  *arbitrate.Arbitrator

	ctx  *analyze.Context
	r    io.Reader
	done bool
}

// New returns a Tokenizer reading from r, matching against dicts, and
// configured by cfg.
func New(r io.Reader, dicts *dict.Set, cfg *ikconf.Config) *Tokenizer {
	classifier := classify.New(classify.Options{Lowercase: cfg.EnableLowercase})
	return &Tokenizer{
		cfg:  cfg,
		segs: segment.New(),
		arb:  arbitrate.New(cfg.UseSmart),
		ctx:  analyze.New(classifier, dicts),
		r:    r,
	}
}

// Reset rewinds the Tokenizer to read from r as if newly constructed,
// discarding any buffered state. It does not reload the dictionary.
func (t *Tokenizer) Reset(r io.Reader) {
	classifier := classify.New(classify.Options{Lowercase: t.cfg.EnableLowercase})
	t.ctx = analyze.New(classifier, t.ctx.Dicts())
	t.arb = arbitrate.New(t.cfg.UseSmart)
	t.segs = segment.New()
	t.r = r
	t.done = false
}

// Next returns the next lexeme: it drains the result queue (applying
// numeral compounding and stop-word filtering as it goes) before running
// another buffer pass. It returns ok=false once the reader is exhausted
// and no lexeme remains; an error is only possible from the underlying
// reader.
func (t *Tokenizer) Next() (lexeme.Lexeme, bool, error) {
	for {
		if t.ctx.HasResults() {
			l, ok := t.nextFromQueue()
			if !ok {
				continue
			}
			return l, true, nil
		}
		if t.done {
			return lexeme.Lexeme{}, false, nil
		}
		more, err := t.ctx.Fill(t.r)
		if err != nil {
			return lexeme.Lexeme{}, false, err
		}
		if !more {
			t.done = true
			continue
		}
		t.runBufferPass()
	}
}

// runBufferPass processes a single filled buffer: it advances the cursor
// through every sub-segmenter until a refill is due, then arbitrates the
// accumulated candidates and drains the result into the result queue.
func (t *Tokenizer) runBufferPass() {
	for {
		for _, s := range t.segs {
			s.Analyze(t.ctx)
		}
		// AtBufferEnd is checked unconditionally, even if a segmenter's lock
		// is still held: there is no further rune in this decoded buffer to
		// advance into regardless, and refilling is the only way forward
		// (dictionary terms are expected to be far shorter than
		// buffExhaustCritical runes, so a lock surviving all the way to the
		// last decoded rune means the input genuinely ended mid-prefix).
		if t.ctx.AtBufferEnd() || t.ctx.NeedRefillBuffer() {
			break
		}
		t.ctx.AdvanceCursor()
	}
	for _, s := range t.segs {
		s.Reset()
	}
	t.arb.Run(t.ctx)
	t.ctx.OutputToResult()
}

// nextFromQueue pops one lexeme off the result queue, applying numeral
// compounding (smart mode only) and stop-word filtering. It reports
// false if the popped lexeme was discarded as a stop word, in which case
// the caller should poll again.
func (t *Tokenizer) nextFromQueue() (lexeme.Lexeme, bool) {
	cur, ok := t.ctx.PopResult()
	if !ok {
		return lexeme.Lexeme{}, false
	}
	if t.cfg.UseSmart {
		cur = t.compound(cur)
	}
	if t.isStopword(cur) {
		return lexeme.Lexeme{}, false
	}
	cur.Text = t.foldText(t.ctx.Slice(cur.ByteBegin, cur.ByteLen))
	return cur, true
}

// compound merges cur forward with as many immediately following result
// lexemes as the numeral-compounding rules allow.
func (t *Tokenizer) compound(cur lexeme.Lexeme) lexeme.Lexeme {
	for {
		next, ok := t.ctx.PeekResult()
		if !ok {
			return cur
		}
		merged, didMerge := mergeNumeral(cur, next)
		if !didMerge {
			return cur
		}
		t.ctx.PopResult()
		cur = merged
	}
}

// mergeNumeral implements the three numeral-compounding rules in order:
// Arabic+CNum -> CNum, Arabic+Count -> CQuan, CNum+Count -> CQuan.
func mergeNumeral(cur, next lexeme.Lexeme) (lexeme.Lexeme, bool) {
	switch {
	case cur.Type == lexeme.Arabic && next.Type == lexeme.CNum:
		return merge(cur, next, lexeme.CNum), true
	case cur.Type == lexeme.Arabic && next.Type == lexeme.Count:
		return merge(cur, next, lexeme.CQuan), true
	case cur.Type == lexeme.CNum && next.Type == lexeme.Count:
		return merge(cur, next, lexeme.CQuan), true
	default:
		return lexeme.Lexeme{}, false
	}
}

// merge extends cur to cover next as well, under the given result type.
// The begin fields are left unchanged.
func merge(cur, next lexeme.Lexeme, typ lexeme.Type) lexeme.Lexeme {
	cur.ByteLen = next.ByteEnd() - cur.ByteBegin
	cur.CharEnd = next.CharEnd
	cur.Type = typ
	return cur
}

// isStopword probes the stopword trie with l's rune range.
func (t *Tokenizer) isStopword(l lexeme.Lexeme) bool {
	hit := t.ctx.Dicts().Stopword.Match(t.ctx.Runes(), l.CharBegin, l.CharLen())
	return hit.IsMatch()
}

// foldText lowercases s when the tokenizer is configured to do so; the
// underlying buffer itself is never modified.
func (t *Tokenizer) foldText(s string) string {
	if !t.cfg.EnableLowercase {
		return s
	}
	return strings.ToLower(s)
}

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
	"strings"

	"github.com/creachadair-ik/ik/analyze"
	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/lexeme"
)

// mixedConnectors are the Useless code points a Mixed run tolerates
// inside its span without breaking.
const mixedConnectors = "#&+-.@_"

// arabicConnectors are the Useless code points an Arabic-only run
// tolerates inside its span without breaking.
const arabicConnectors = ",."

// run tracks one in-progress English, Arabic, or Mixed span. lastEnd only
// advances on a rune matching the track's primary predicate, so trailing
// tolerated punctuation is trimmed from the emitted lexeme.
type run struct {
	active  bool
	begin   int
	lastEnd int
}

// Latin extracts English-only, Arabic-only (tolerating interior `,`/`.`),
// and Mixed (tolerating interior `#&+-.@_`) runs in parallel.
type Latin struct {
	eng, ara, mix run
}

// NewLatin returns a Latin segmenter with all three tracks idle.
func NewLatin() *Latin { return &Latin{} }

// Reset clears all three tracks.
func (s *Latin) Reset() {
	s.eng = run{}
	s.ara = run{}
	s.mix = run{}
}

// Analyze implements Segmenter. Tracks are stepped in a fixed order
// (English, Arabic, Mixed) so that when two tracks would emit an
// identical (begin, length) span, the earlier one's candidate wins the
// OrderedLexemeSet's insertion-order tie-break.
func (s *Latin) Analyze(ctx *analyze.Context) error {
	runes := ctx.Runes()
	i := ctx.Cursor()
	r := runes[i]

	s.step(ctx, runes, &s.eng, i, r.Type == classify.English, false, lexeme.English)
	s.step(ctx, runes, &s.ara, i, r.Type == classify.Arabic,
		r.Type == classify.Useless && strings.ContainsRune(arabicConnectors, r.Char), lexeme.Arabic)
	s.step(ctx, runes, &s.mix, i, r.Type == classify.English || r.Type == classify.Arabic,
		r.Type == classify.Useless && strings.ContainsRune(mixedConnectors, r.Char), lexeme.Letter)

	if ctx.AtBufferEnd() {
		s.flush(ctx, runes, &s.eng, lexeme.English)
		s.flush(ctx, runes, &s.ara, lexeme.Arabic)
		s.flush(ctx, runes, &s.mix, lexeme.Letter)
	}

	if s.eng.active || s.ara.active || s.mix.active {
		ctx.Lock(analyze.LockLatin)
	} else {
		ctx.Unlock(analyze.LockLatin)
	}
	return nil
}

// step advances tr by one rune: primary runes extend the track, tolerated
// runes leave it active without extending lastEnd, and anything else
// closes the track, emitting its lexeme if it was active.
func (s *Latin) step(ctx *analyze.Context, runes []classify.TypedRune, tr *run, i int, primary, tolerated bool, typ lexeme.Type) {
	if primary {
		if !tr.active {
			tr.active = true
			tr.begin = i
		}
		tr.lastEnd = i
		return
	}
	if tolerated && tr.active {
		return
	}
	s.flush(ctx, runes, tr, typ)
}

// flush emits tr's pending lexeme, if active, and deactivates it. An
// Arabic track's closure is also recorded on ctx so that Quantifier can
// detect, on this same cursor step, that a digit run just ended here.
func (s *Latin) flush(ctx *analyze.Context, runes []classify.TypedRune, tr *run, typ lexeme.Type) {
	if !tr.active {
		return
	}
	b := runes[tr.begin]
	e := runes[tr.lastEnd]
	ctx.Candidates().Add(lexeme.New(b.ByteOffset, e.ByteOffset+e.ByteLen-b.ByteOffset, tr.begin, tr.lastEnd+1, typ))
	if typ == lexeme.Arabic {
		ctx.RecordNumeralClose(tr.lastEnd+1, lexeme.Arabic)
	}
	tr.active = false
}

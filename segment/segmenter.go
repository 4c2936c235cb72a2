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

// Package segment implements the three sub-segmenters that jointly
// populate an AnalyzeContext's candidate set at each cursor position: CJK
// dictionary extension, Chinese numeral/quantifier detection, and
// Latin/Arabic run extraction.
package segment

import "github.com/creachadair-ik/ik/analyze"

// Segmenter is implemented by each of the three sub-segmenters. Dispatch
// is a fixed three-element slice built by New, not an open registry: the
// domain is a closed sum of exactly these three variants.
type Segmenter interface {
	// Analyze processes the rune at ctx.Cursor(), adding any resulting
	// candidates to ctx.Candidates() and acquiring or releasing the
	// segmenter's buffer-refill lock.
	Analyze(ctx *analyze.Context) error
	// Reset clears any in-flight state. The tokenizer calls it once a
	// buffer pass ends; CJK also calls it on itself whenever the current
	// rune is Useless.
	Reset()
}

// New returns the fixed three-element sub-segmenter dispatch list, in the
// order CJK, Latin, Quantifier. This order matters in two ways: when two
// segmenters emit candidates covering the exact same (begin, length)
// byte range (for example a bare Latin letter matched by both the
// English-only and Mixed tracks), OrderedLexemeSet.Add keeps whichever
// was added first, so earlier segmenters take priority; and Quantifier's
// measure-word engagement condition relies on Context.NumeralClosedAt,
// which only reflects an Arabic run closed on this same cursor step if
// Latin has already run.
func New() []Segmenter {
	return []Segmenter{
		NewCJK(),
		NewLatin(),
		NewQuantifier(),
	}
}

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

// CJK extends live dictionary-prefix hits across cursor positions and
// probes the main trie for single-character matches.
type CJK struct {
	live []dict.Hit
}

// NewCJK returns a CJK segmenter with no live hits.
func NewCJK() *CJK { return &CJK{} }

// Reset clears the live-hit set.
func (s *CJK) Reset() { s.live = s.live[:0] }

// Analyze implements Segmenter.
func (s *CJK) Analyze(ctx *analyze.Context) error {
	runes := ctx.Runes()
	i := ctx.Cursor()
	r := runes[i]

	if r.Type == classify.Useless {
		s.Reset()
		ctx.Unlock(analyze.LockCJK)
		return nil
	}

	trie := &ctx.Dicts().Main
	kept := s.live[:0]
	for _, h := range s.live {
		trie.MatchExtend(runes, i, &h)
		if h.IsMatch() {
			ctx.Candidates().Add(lexeme.New(h.ByteBegin, h.ByteEnd-h.ByteBegin, h.CharBegin, h.CharEnd, lexeme.CNWord))
		}
		if h.IsPrefix() {
			kept = append(kept, h)
		}
	}
	s.live = kept

	probe := trie.Match(runes, i, 1)
	if probe.IsMatch() {
		ctx.Candidates().Add(lexeme.New(probe.ByteBegin, probe.ByteEnd-probe.ByteBegin, probe.CharBegin, probe.CharEnd, lexeme.CNChar))
	}
	if probe.IsPrefix() {
		s.live = append(s.live, probe)
	}

	if len(s.live) > 0 {
		ctx.Lock(analyze.LockCJK)
	} else {
		ctx.Unlock(analyze.LockCJK)
	}
	return nil
}

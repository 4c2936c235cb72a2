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
	"testing"

	"github.com/creachadair-ik/ik/analyze"
	"github.com/creachadair-ik/ik/classify"
	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/lexeme"
)

func runAllCursors(t *testing.T, ctx *analyze.Context, segs ...Segmenter) {
	t.Helper()
	for ctx.Cursor() < len(ctx.Runes()) {
		for _, s := range segs {
			if err := s.Analyze(ctx); err != nil {
				t.Fatalf("Analyze: %v", err)
			}
		}
		if ctx.Cursor() == len(ctx.Runes())-1 {
			break
		}
		ctx.AdvanceCursor()
	}
}

func drainCandidates(ctx *analyze.Context) []lexeme.Lexeme {
	var out []lexeme.Lexeme
	for {
		l, ok := ctx.Candidates().PollFirst()
		if !ok {
			break
		}
		out = append(out, l)
	}
	return out
}

func TestCJKEmitsWordsAndLeavesSinglesUnmatched(t *testing.T) {
	dicts := dict.NewSet()
	for _, term := range []string{"中华", "中华人民", "中华人民共和国", "人民", "共和国"} {
		dicts.Main.Insert([]rune(term))
	}
	ctx := analyze.New(classify.New(classify.Options{}), dicts)
	ctx.Fill(strings.NewReader("中华人民共和国"))

	seg := NewCJK()
	runAllCursors(t, ctx, seg)

	got := drainCandidates(ctx)
	wantRanges := [][2]int{{0, 2}, {0, 4}, {2, 4}, {4, 7}, {0, 7}}
	if len(got) != len(wantRanges) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(wantRanges), got)
	}
	for _, l := range got {
		if l.Type != lexeme.CNWord {
			t.Fatalf("candidate %+v has type %v, want CNWord", l, l.Type)
		}
		found := false
		for _, rng := range wantRanges {
			if l.CharBegin == rng[0] && l.CharEnd == rng[1] {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected candidate range %+v", l)
		}
	}
}

func TestCJKSingleCharMatch(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Main.Insert([]rune("好"))
	ctx := analyze.New(classify.New(classify.Options{}), dicts)
	ctx.Fill(strings.NewReader("你好"))

	seg := NewCJK()
	runAllCursors(t, ctx, seg)

	got := drainCandidates(ctx)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].Type != lexeme.CNChar || got[0].CharBegin != 1 || got[0].CharEnd != 2 {
		t.Fatalf("candidate = %+v, want CNChar at char 1", got[0])
	}
}

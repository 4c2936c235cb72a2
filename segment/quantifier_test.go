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

func TestQuantifierMeasureWordAfterArabicRun(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Quantifier.Insert([]rune("年"))
	dicts.Quantifier.Insert([]rune("月"))
	ctx := analyze.New(classify.New(classify.Options{}), dicts)
	ctx.Fill(strings.NewReader("2023年12月"))

	latin := NewLatin()
	quant := NewQuantifier()
	runAllCursors(t, ctx, latin, quant)

	got := drainCandidates(ctx)
	var sawYear, sawMonth, sawArabic2023, sawArabic12 bool
	for _, l := range got {
		switch {
		case l.Type == lexeme.Count && l.CharBegin == 4 && l.CharEnd == 5:
			sawYear = true
		case l.Type == lexeme.Count && l.CharBegin == 7 && l.CharEnd == 8:
			sawMonth = true
		case l.Type == lexeme.Arabic && l.CharBegin == 0 && l.CharEnd == 4:
			sawArabic2023 = true
		case l.Type == lexeme.Arabic && l.CharBegin == 5 && l.CharEnd == 7:
			sawArabic12 = true
		}
	}
	if !sawYear || !sawMonth || !sawArabic2023 || !sawArabic12 {
		t.Fatalf("missing expected candidates: year=%v month=%v 2023=%v 12=%v; got %+v",
			sawYear, sawMonth, sawArabic2023, sawArabic12, got)
	}
}

// TestQuantifierMeasureWordAfterArabicRunWithCompetingCJKHit covers the
// case where the measure word is also a standalone Main dictionary
// entry, so CJK emits a single-character candidate for it at the exact
// same cursor step that Quantifier must recognize the Arabic run just
// closed there.
func TestQuantifierMeasureWordAfterArabicRunWithCompetingCJKHit(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Main.Insert([]rune("年"))
	dicts.Quantifier.Insert([]rune("年"))
	ctx := analyze.New(classify.New(classify.Options{}), dicts)
	ctx.Fill(strings.NewReader("2023年"))

	cjk := NewCJK()
	latin := NewLatin()
	quant := NewQuantifier()
	runAllCursors(t, ctx, cjk, latin, quant)

	got := drainCandidates(ctx)
	var sawYearCount, sawArabic2023 bool
	for _, l := range got {
		switch {
		case l.Type == lexeme.Count && l.CharBegin == 4 && l.CharEnd == 5:
			sawYearCount = true
		case l.Type == lexeme.Arabic && l.CharBegin == 0 && l.CharEnd == 4:
			sawArabic2023 = true
		}
	}
	if !sawYearCount || !sawArabic2023 {
		t.Fatalf("missing expected candidates: Count(年)=%v Arabic(2023)=%v; got %+v",
			sawYearCount, sawArabic2023, got)
	}
}

func TestQuantifierCNumFollowedByCount(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Quantifier.Insert([]rune("章"))
	ctx := analyze.New(classify.New(classify.Options{}), dicts)
	ctx.Fill(strings.NewReader("第二十三章"))

	latin := NewLatin()
	quant := NewQuantifier()
	runAllCursors(t, ctx, latin, quant)

	got := drainCandidates(ctx)
	var sawCNum, sawCount bool
	for _, l := range got {
		if l.Type == lexeme.CNum && l.CharBegin == 1 && l.CharEnd == 4 {
			sawCNum = true
		}
		if l.Type == lexeme.Count && l.CharBegin == 4 && l.CharEnd == 5 {
			sawCount = true
		}
	}
	if !sawCNum || !sawCount {
		t.Fatalf("missing expected candidates: CNum(二十三)=%v Count(章)=%v; got %+v", sawCNum, sawCount, got)
	}
}

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

package ik

import (
	"strings"
	"testing"

	"github.com/creachadair-ik/ik/dict"
	"github.com/creachadair-ik/ik/ikconf"
	"github.com/creachadair-ik/ik/lexeme"
)

type wantLexeme struct {
	text string
	typ  lexeme.Type
}

func drainAll(t *testing.T, tok *Tokenizer) []wantLexeme {
	t.Helper()
	var got []wantLexeme
	for {
		l, ok, err := tok.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, wantLexeme{l.Text, l.Type})
	}
	return got
}

func TestTokenizerSmartModeWholeWordWins(t *testing.T) {
	dicts := dict.NewSet()
	for _, term := range []string{"中华", "中华人民", "中华人民共和国", "人民", "共和国"} {
		dicts.Main.Insert([]rune(term))
	}
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("中华人民共和国"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"中华人民共和国", lexeme.CNWord}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTokenizerUnknownCharsEmitSingletons(t *testing.T) {
	dicts := dict.NewSet()
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("张三"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"张", lexeme.CNChar}, {"三", lexeme.CNChar}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizerMeasureWordCompoundsWithArabicRun(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Quantifier.Insert([]rune("年"))
	dicts.Quantifier.Insert([]rune("月"))
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("2023年12月"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"2023年", lexeme.CQuan}, {"12月", lexeme.CQuan}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizerCNumCompoundsWithCount(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Quantifier.Insert([]rune("章"))
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("第二十三章"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"第", lexeme.CNChar}, {"二十三章", lexeme.CQuan}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizerMixedLatinRunWinsInSmartMode(t *testing.T) {
	dicts := dict.NewSet()
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("hello-world2"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"hello-world2", lexeme.Letter}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTokenizerCommaSeparatedEnglishAndArabic(t *testing.T) {
	dicts := dict.NewSet()
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("a, b 3.14"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{
		{"a", lexeme.English},
		{"b", lexeme.English},
		{"3.14", lexeme.Arabic},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizerStopwordIsFiltered(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Stopword.Insert([]rune("the"))
	cfg := &ikconf.Config{UseSmart: true}
	tok := New(strings.NewReader("the cat"), dicts, cfg)

	got := drainAll(t, tok)
	want := []wantLexeme{{"cat", lexeme.English}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTokenizerResetRepeatsSameOutput(t *testing.T) {
	dicts := dict.NewSet()
	dicts.Quantifier.Insert([]rune("章"))
	cfg := &ikconf.Config{UseSmart: true}
	const text = "第二十三章"
	tok := New(strings.NewReader(text), dicts, cfg)
	first := drainAll(t, tok)

	tok.Reset(strings.NewReader(text))
	second := drainAll(t, tok)

	if len(first) != len(second) {
		t.Fatalf("first=%+v second=%+v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("mismatch at %d: first=%+v second=%+v", i, first[i], second[i])
		}
	}
}

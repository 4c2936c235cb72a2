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

package lexeme

import "testing"

func TestSetOrdersByBeginThenLongestFirst(t *testing.T) {
	s := NewSet()
	s.Add(New(3, 2, 3, 5, CNChar))
	s.Add(New(0, 2, 0, 2, CNWord))
	s.Add(New(0, 4, 0, 4, CNWord)) // same begin, longer: sorts first among begin=0

	first, ok := s.PeekFirst()
	if !ok || first.ByteBegin != 0 || first.ByteLen != 4 {
		t.Fatalf("PeekFirst = %+v, want begin 0 len 4", first)
	}
	last, ok := s.PeekLast()
	if !ok || last.ByteBegin != 3 {
		t.Fatalf("PeekLast = %+v, want begin 3", last)
	}
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
}

func TestSetAddDeduplicates(t *testing.T) {
	s := NewSet()
	if !s.Add(New(0, 2, 0, 2, CNWord)) {
		t.Fatalf("first Add should succeed")
	}
	if s.Add(New(0, 2, 0, 2, CNChar)) {
		t.Fatalf("duplicate (begin,len) Add should fail")
	}
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", s.Size())
	}
}

func TestSetPollDrainsInOrder(t *testing.T) {
	s := NewSet()
	s.Add(New(2, 1, 2, 3, CNChar))
	s.Add(New(0, 1, 0, 1, CNChar))
	s.Add(New(1, 1, 1, 2, CNChar))

	var begins []int
	for s.Size() > 0 {
		l, ok := s.PollFirst()
		if !ok {
			t.Fatalf("PollFirst returned !ok while Size() > 0")
		}
		begins = append(begins, l.ByteBegin)
	}
	want := []int{0, 1, 2}
	for i, b := range want {
		if begins[i] != b {
			t.Fatalf("drain order = %v, want %v", begins, want)
		}
	}
}

func TestSetReset(t *testing.T) {
	s := NewSet()
	s.Add(New(0, 1, 0, 1, CNChar))
	s.Reset()
	if s.Size() != 0 {
		t.Fatalf("Size() after Reset = %d, want 0", s.Size())
	}
	if _, ok := s.PeekFirst(); ok {
		t.Fatalf("PeekFirst after Reset should fail")
	}
}

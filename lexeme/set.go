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

// setNode is a cell in the sorted doubly linked list backing Set.
type setNode struct {
	lex        Lexeme
	prev, next *setNode
}

// Set is a sorted, insertion-deduplicated set of candidate lexemes,
// ordered by Less. It is implemented as a doubly linked list rather than a
// balanced tree to keep iterators stable while the Arbitrator drains and
// re-walks it; insertions scan from the tail since new candidates are
// typically discovered near the end of the set already built.
type Set struct {
	head, tail *setNode
	size       int
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{} }

// Add inserts l in sorted order, returning false without modifying the set
// if an equal (by Equal) lexeme is already present.
func (s *Set) Add(l Lexeme) bool {
	cur := s.tail
	for cur != nil && Less(l, cur.lex) {
		cur = cur.prev
	}
	if cur != nil && Equal(cur.lex, l) {
		return false
	}
	n := &setNode{lex: l}
	if cur == nil {
		n.next = s.head
		if s.head != nil {
			s.head.prev = n
		}
		s.head = n
		if s.tail == nil {
			s.tail = n
		}
	} else {
		n.prev = cur
		n.next = cur.next
		if cur.next != nil {
			cur.next.prev = n
		} else {
			s.tail = n
		}
		cur.next = n
	}
	s.size++
	return true
}

// PollFirst removes and returns the smallest lexeme in the set.
func (s *Set) PollFirst() (Lexeme, bool) {
	if s.head == nil {
		return Lexeme{}, false
	}
	n := s.head
	s.head = n.next
	if s.head != nil {
		s.head.prev = nil
	} else {
		s.tail = nil
	}
	s.size--
	return n.lex, true
}

// PollLast removes and returns the largest lexeme in the set.
func (s *Set) PollLast() (Lexeme, bool) {
	if s.tail == nil {
		return Lexeme{}, false
	}
	n := s.tail
	s.tail = n.prev
	if s.tail != nil {
		s.tail.next = nil
	} else {
		s.head = nil
	}
	s.size--
	return n.lex, true
}

// PeekFirst returns the smallest lexeme in the set without removing it.
func (s *Set) PeekFirst() (Lexeme, bool) {
	if s.head == nil {
		return Lexeme{}, false
	}
	return s.head.lex, true
}

// PeekLast returns the largest lexeme in the set without removing it.
func (s *Set) PeekLast() (Lexeme, bool) {
	if s.tail == nil {
		return Lexeme{}, false
	}
	return s.tail.lex, true
}

// Size returns the number of lexemes currently in the set.
func (s *Set) Size() int { return s.size }

// Reset empties the set without shrinking any backing storage (there is
// none to shrink: the linked cells are released to the garbage collector
// and a fresh list is grown on the next buffer).
func (s *Set) Reset() {
	s.head, s.tail, s.size = nil, nil, 0
}

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

// pathNode is a cell in the doubly linked member list backing Path.
type pathNode struct {
	lex        Lexeme
	prev, next *pathNode
}

// Path is an accumulated sequence of lexemes. Built via AddNotCross it is
// an ordinary LexemePath: pairwise non-overlapping members in ascending
// begin order. Built via AddCross it is a "crossing path": a scratch
// accumulator whose members may overlap, used only to find the bounds of
// a maximal crossing region before arbitration.
type Path struct {
	head, tail *pathNode
	count      int

	begin, end int // PathBegin / PathEnd: aggregate byte range
	payload    int // sum of member ByteLen
	xweight    int // product of member ByteLen
	pweight    int // sum of 1-based-index * ByteLen
}

// NewPath returns an empty Path.
func NewPath() *Path { return &Path{} }

// Begin returns the path's starting byte offset (PathBegin).
func (p *Path) Begin() int { return p.begin }

// End returns the path's exclusive ending byte offset (PathEnd).
func (p *Path) End() int { return p.end }

// Span returns End() - Begin(), the path's total byte extent.
func (p *Path) Span() int { return p.end - p.begin }

// PayloadLength returns the sum of member byte lengths.
func (p *Path) PayloadLength() int { return p.payload }

// Count returns the number of members.
func (p *Path) Count() int { return p.count }

// Empty reports whether the path has no members.
func (p *Path) Empty() bool { return p.count == 0 }

// Members returns a snapshot slice of the path's members in ascending
// order.
func (p *Path) Members() []Lexeme {
	out := make([]Lexeme, 0, p.count)
	for n := p.head; n != nil; n = n.next {
		out = append(out, n.lex)
	}
	return out
}

// First returns the first member, if any.
func (p *Path) First() (Lexeme, bool) {
	if p.head == nil {
		return Lexeme{}, false
	}
	return p.head.lex, true
}

// Last returns the last member, if any.
func (p *Path) Last() (Lexeme, bool) {
	if p.tail == nil {
		return Lexeme{}, false
	}
	return p.tail.lex, true
}

// AddCross appends l to a crossing path. It accepts l if the path is
// empty or l overlaps the path's current aggregate range; it reports
// whether l was accepted.
func (p *Path) AddCross(l Lexeme) bool {
	if p.count > 0 && !(l.ByteBegin < p.end && p.begin < l.ByteEnd()) {
		return false
	}
	p.append(l)
	return true
}

// AddNotCross appends l iff it does not overlap the path's current last
// member (equivalently, any member, since members are added in ascending,
// pairwise non-overlapping order). It reports whether l was accepted; a
// rejected lexeme is the caller's responsibility to push onto a conflict
// stack for later retry.
func (p *Path) AddNotCross(l Lexeme) bool {
	if p.tail != nil && Overlaps(p.tail.lex, l) {
		return false
	}
	p.append(l)
	return true
}

func (p *Path) append(l Lexeme) {
	n := &pathNode{lex: l, prev: p.tail}
	if p.tail != nil {
		p.tail.next = n
	} else {
		p.head = n
	}
	p.tail = n
	p.count++
	if p.count == 1 {
		p.begin = l.ByteBegin
		p.end = l.ByteEnd()
	} else if l.ByteEnd() > p.end {
		p.end = l.ByteEnd()
	}
	p.payload += l.ByteLen
	p.pweight += p.count * l.ByteLen
	if p.xweight == 0 {
		p.xweight = l.ByteLen
	} else {
		p.xweight *= l.ByteLen
	}
}

// RemoveTail removes and returns the last member, rewinding all aggregate
// fields to their state before it was appended. It reports whether a
// member was removed.
func (p *Path) RemoveTail() (Lexeme, bool) {
	if p.tail == nil {
		return Lexeme{}, false
	}
	n := p.tail
	p.tail = n.prev
	if p.tail != nil {
		p.tail.next = nil
	} else {
		p.head = nil
	}
	p.count--
	p.payload -= n.lex.ByteLen
	p.pweight -= (p.count + 1) * n.lex.ByteLen
	if p.count == 0 {
		p.xweight = 0
		p.begin, p.end = 0, 0
	} else {
		if p.xweight != 0 {
			p.xweight /= n.lex.ByteLen
		}
		p.end = p.tail.lex.ByteEnd()
		for m := p.head; m != nil; m = m.next {
			if m.lex.ByteEnd() > p.end {
				p.end = m.lex.ByteEnd()
			}
		}
	}
	return n.lex, true
}

// Clone returns a deep copy of p, used by judge's backtracking search to
// branch from a shared prefix without disturbing the caller's path.
func (p *Path) Clone() *Path {
	c := NewPath()
	for n := p.head; n != nil; n = n.next {
		c.append(n.lex)
	}
	return c
}

// Less implements the LexemePath total order: smaller is "better". It
// compares, in sequence, payload length (larger wins), member count
// (fewer wins), span (larger wins), path end (larger wins), X-weight
// (larger wins), then P-weight (larger wins), returning as soon as one
// criterion differs.
func (p *Path) Less(other *Path) bool {
	if p.payload != other.payload {
		return p.payload > other.payload
	}
	if p.count != other.count {
		return p.count < other.count
	}
	if sa, sb := p.Span(), other.Span(); sa != sb {
		return sa > sb
	}
	if p.end != other.end {
		return p.end > other.end
	}
	if p.xweight != other.xweight {
		return p.xweight > other.xweight
	}
	return p.pweight > other.pweight
}

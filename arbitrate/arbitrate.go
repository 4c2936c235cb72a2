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

// Package arbitrate implements smart-mode ambiguity resolution:
// accumulating the buffer's candidate lexemes into maximal crossing
// regions and, within each region with more than one member, selecting a
// single non-overlapping sub-path under the LexemePath total order.
package arbitrate

import (
	"github.com/creachadair-ik/ik/analyze"
	"github.com/creachadair-ik/ik/lexeme"
)

// Arbitrator drains a buffer's candidate set into ctx's path index, one
// LexemePath per crossing region. In maximum-coverage mode (Smart false)
// every crossing region is recorded as-is; in smart mode, regions with
// more than one member are resolved by judge.
type Arbitrator struct {
	Smart bool
}

// New returns an Arbitrator running in the given mode.
func New(smart bool) *Arbitrator {
	return &Arbitrator{Smart: smart}
}

// Run drains ctx.Candidates() entirely, recording one LexemePath per
// crossing region into ctx via SetPath.
func (a *Arbitrator) Run(ctx *analyze.Context) {
	for {
		first, ok := ctx.Candidates().PollFirst()
		if !ok {
			return
		}
		cross := lexeme.NewPath()
		cross.AddCross(first)
		for {
			next, ok := ctx.Candidates().PeekFirst()
			if !ok || !cross.AddCross(next) {
				break
			}
			ctx.Candidates().PollFirst()
		}
		a.seal(ctx, cross)
	}
}

// seal records the resolved path for a sealed crossing region, keyed by
// the region's starting rune index.
func (a *Arbitrator) seal(ctx *analyze.Context, cross *lexeme.Path) {
	members := cross.Members()
	if len(members) == 0 {
		return
	}
	start := members[0].CharBegin
	if len(members) == 1 || !a.Smart {
		ctx.SetPath(start, cross)
		return
	}
	ctx.SetPath(start, judge(members))
}

// judge explores non-overlapping sub-paths of a crossing region via
// depth-first backtracking with greedy forward extension. Starting from
// a prefix already accepted (initially empty), it walks the region
// forward, greedily appending each member that does not overlap the
// accepted path's current tail. The moment a member is rejected for
// overlap, that is a conflict: before moving on, it also recurses into
// the alternate branch where the path rewinds (removeTail) just far
// enough for the rejected member to fit, splices it in, and continues
// the same greedy walk from there — the recursion's call stack plays the
// role of the conflict stack. Each complete branch is compared against
// the best one found so far under the LexemePath total order.
func judge(members []lexeme.Lexeme) *lexeme.Path {
	return exploreFrom(members, 0, lexeme.NewPath())
}

// exploreFrom walks members[i:], extending a clone of accepted greedily,
// branching at every rejected member, and returns the best path found
// across the greedy continuation and every explored branch.
func exploreFrom(members []lexeme.Lexeme, i int, accepted *lexeme.Path) *lexeme.Path {
	best := accepted.Clone()
	cur := accepted.Clone()

	for j := i; j < len(members); j++ {
		m := members[j]
		if cur.AddNotCross(m) {
			continue
		}
		branch := cur.Clone()
		for {
			last, ok := branch.Last()
			if !ok || !lexeme.Overlaps(last, m) {
				break
			}
			branch.RemoveTail()
		}
		if !branch.AddNotCross(m) {
			continue
		}
		if result := exploreFrom(members, j+1, branch); result.Less(best) {
			best = result
		}
	}
	if cur.Less(best) {
		best = cur
	}
	return best
}

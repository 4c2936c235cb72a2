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

// Package dict implements the prefix trie and dictionary set used by the
// ik analyzer core: a code-point-keyed trie supporting incremental prefix
// matching, with node storage that adapts to fan-out (a small sorted array,
// a sorted map, or a bucketed hybrid map), and a DictionarySet bundling the
// main, quantifier and stopword tries.
package dict

import (
	"sort"

	"github.com/creachadair-ik/ik/classify"
)

// Storage promotion thresholds. Node storage only ever promotes
// array -> map -> hybrid during insertion; matches never mutate storage.
const (
	arrayThreshold = 8
	mapThreshold   = 1000
	bucketCount    = 131
	hybridBase     = 0x4E00
)

type storageKind int

const (
	arrayKind storageKind = iota
	mapKind
	hybridKind
)

// children holds one of three adaptive storage variants for a node's
// descendants. At most one variant is active at a time.
type children struct {
	kind    storageKind
	arr     []*node
	m       map[rune]*node
	buckets [][]*node
	count   int
}

func (c *children) get(key rune) *node {
	switch c.kind {
	case arrayKind:
		i := sort.Search(len(c.arr), func(i int) bool { return c.arr[i].keyChar >= key })
		if i < len(c.arr) && c.arr[i].keyChar == key {
			return c.arr[i]
		}
		return nil
	case mapKind:
		return c.m[key]
	default:
		for _, n := range c.buckets[bucketIndex(key)] {
			if n.keyChar == key {
				return n
			}
		}
		return nil
	}
}

// insert returns the existing child for key, or creates and returns a new
// one, promoting storage when a threshold is crossed.
func (c *children) insert(key rune) *node {
	if n := c.get(key); n != nil {
		return n
	}
	n := &node{keyChar: key}
	switch c.kind {
	case arrayKind:
		c.arr = append(c.arr, n)
		sort.Slice(c.arr, func(i, j int) bool { return c.arr[i].keyChar < c.arr[j].keyChar })
		c.count++
		if c.count > arrayThreshold {
			c.promoteToMap()
		}
	case mapKind:
		if c.m == nil {
			c.m = make(map[rune]*node)
		}
		c.m[key] = n
		c.count++
		if c.count > mapThreshold {
			c.promoteToHybrid()
		}
	default:
		idx := bucketIndex(key)
		c.buckets[idx] = append(c.buckets[idx], n)
		c.count++
	}
	return n
}

func (c *children) size() int { return c.count }

func (c *children) promoteToMap() {
	m := make(map[rune]*node, len(c.arr))
	for _, n := range c.arr {
		m[n.keyChar] = n
	}
	c.kind = mapKind
	c.m = m
	c.arr = nil
}

func (c *children) promoteToHybrid() {
	buckets := make([][]*node, bucketCount)
	for _, n := range c.m {
		idx := bucketIndex(n.keyChar)
		buckets[idx] = append(buckets[idx], n)
	}
	c.kind = hybridKind
	c.buckets = buckets
	c.m = nil
}

func bucketIndex(key rune) int {
	d := int(key) - hybridBase
	idx := d % bucketCount
	if idx < 0 {
		idx += bucketCount
	}
	return idx
}

// node is a single trie node. Nodes are created once during insertion and
// never mutated by a match.
type node struct {
	keyChar  rune
	terminal bool
	children children
}

// HitFlag describes the outcome of a trie probe. Match and Prefix may
// coexist; the zero value is Unmatch.
type HitFlag int

// Flag bits set on a Hit.
const (
	FlagMatch HitFlag = 1 << iota
	FlagPrefix
)

// Hit is the result of a Trie probe. It carries a borrowed, non-owning
// handle to the deepest matched node so a later call can extend the match
// by one more rune via Trie.MatchExtend.
type Hit struct {
	Flags     HitFlag
	ByteBegin int
	ByteEnd   int
	CharBegin int
	CharEnd   int

	node *node
}

// IsMatch reports whether the probed path ends on a dictionary term.
func (h Hit) IsMatch() bool { return h.Flags&FlagMatch != 0 }

// IsPrefix reports whether the probed path can be extended further.
func (h Hit) IsPrefix() bool { return h.Flags&FlagPrefix != 0 }

// IsUnmatch reports whether the probed path does not exist in the trie.
func (h Hit) IsUnmatch() bool { return h.Flags == 0 }

// Trie is a code-point-keyed prefix trie. The zero value is ready to use.
type Trie struct {
	root node
}

// Insert walks/creates a path from the root for seq, marking the final
// node terminal.
func (t *Trie) Insert(seq []rune) {
	n := &t.root
	for _, r := range seq {
		n = n.children.insert(r)
	}
	n.terminal = true
}

// Match walks count runes from runes[start], returning a Hit describing
// the outcome. If fewer than count runes remain, the probe unmatches as
// soon as it runs out of input.
func (t *Trie) Match(runes []classify.TypedRune, start, count int) Hit {
	if start >= len(runes) || count <= 0 {
		return Hit{}
	}
	n := &t.root
	for i := 0; i < count; i++ {
		idx := start + i
		if idx >= len(runes) {
			return Hit{}
		}
		child := n.children.get(runes[idx].Char)
		if child == nil {
			return Hit{}
		}
		n = child
	}
	end := start + count - 1
	return Hit{
		Flags:     flagsFor(n),
		ByteBegin: runes[start].ByteOffset,
		ByteEnd:   runes[end].ByteOffset + runes[end].ByteLen,
		CharBegin: start,
		CharEnd:   end + 1,
		node:      n,
	}
}

// MatchExtend extends hit by exactly one more rune at the given index,
// updating it in place. If hit has no borrowed node (e.g. it was already
// unmatched), MatchExtend leaves it unmatched.
func (t *Trie) MatchExtend(runes []classify.TypedRune, index int, hit *Hit) {
	if hit.node == nil || index >= len(runes) {
		*hit = Hit{}
		return
	}
	child := hit.node.children.get(runes[index].Char)
	if child == nil {
		*hit = Hit{}
		return
	}
	hit.node = child
	hit.Flags = flagsFor(child)
	hit.ByteEnd = runes[index].ByteOffset + runes[index].ByteLen
	hit.CharEnd = index + 1
}

func flagsFor(n *node) HitFlag {
	var f HitFlag
	if n.terminal {
		f |= FlagMatch
	}
	if n.children.size() > 0 {
		f |= FlagPrefix
	}
	return f
}

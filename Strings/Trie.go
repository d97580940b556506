// Package Strings holds text indexes: a Trie for word sets and prefix
// queries and a SuffixArray for substring search.
package Strings

import (
	"maps"
	"slices"
)

type trieNode struct {
	kids map[rune]*trieNode
	end  bool
	pass uint // words ending at or below this node.
}

// Trie is a set of words over runes. Each node counts the words below it,
// so CountPrefix doesn't walk the subtree.
// The zero value is an empty Trie.
type Trie struct {
	root trieNode
}

// find the node reached by s, or nil.
func (u *Trie) find(s string) *trieNode {
	n := &u.root
	for _, c := range s {
		if n = n.kids[c]; n == nil {
			return nil
		}
	}
	return n
}

// Put word. Returns false when it is already present.
// Time: O(len(word))
func (u *Trie) Put(word string) bool {
	if u.Has(word) {
		return false
	}
	n := &u.root
	n.pass++
	for _, c := range word {
		next := n.kids[c]
		if next == nil {
			if n.kids == nil {
				n.kids = make(map[rune]*trieNode)
			}
			next = new(trieNode)
			n.kids[c] = next
		}
		n = next
		n.pass++
	}
	n.end = true
	return true
}

// Has word.
func (u *Trie) Has(word string) bool {
	n := u.find(word)
	return n != nil && n.end
}

// Remove word and prune the nodes no other word needs. Returns false when
// the word isn't present.
func (u *Trie) Remove(word string) bool {
	if !u.Has(word) {
		return false
	}
	n := &u.root
	n.pass--
	for _, c := range word {
		next := n.kids[c]
		if next.pass--; next.pass == 0 {
			delete(n.kids, c)
			return true
		}
		n = next
	}
	n.end = false
	return true
}

// Size is the number of words.
func (u *Trie) Size() uint {
	return u.root.pass
}

// CountPrefix is the number of words starting with prefix.
func (u *Trie) CountPrefix(prefix string) uint {
	if n := u.find(prefix); n != nil {
		return n.pass
	}
	return 0
}

// HasPrefix reports whether some word starts with prefix.
func (u *Trie) HasPrefix(prefix string) bool {
	return u.CountPrefix(prefix) > 0
}

// walk the words below n in lexicographic rune order. buf holds the runes
// leading to n.
func (n *trieNode) walk(buf []rune, f func(string) bool) bool {
	if n.end && !f(string(buf)) {
		return false
	}
	for _, c := range slices.Sorted(maps.Keys(n.kids)) {
		if !n.kids[c].walk(append(buf, c), f) {
			return false
		}
	}
	return true
}

// Range calls f on every word in lexicographic order until f returns false.
// Recursive.
func (u *Trie) Range(f func(string) bool) {
	u.root.walk(nil, f)
}

// WithPrefix calls f on every word starting with prefix in lexicographic
// order until f returns false.
func (u *Trie) WithPrefix(prefix string, f func(string) bool) {
	if n := u.find(prefix); n != nil {
		n.walk([]rune(prefix), f)
	}
}

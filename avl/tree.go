// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "golang.org/x/exp/constraints"

// Tree is an AVL tree of unique keys of type T. The zero value is not
// usable; create trees with New or NewFunc.
type Tree[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
	size int
}

// New returns an empty tree ordered by the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(compareOrdered[T])
}

// NewFunc returns an empty tree ordered by cmp, which must return a negative
// number when a sorts before b, a positive number when it sorts after and
// zero when they are equal. cmp must be a total order; a comparator that is
// not breaks the tree silently, Verify is the way to catch it.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	if cmp == nil {
		panic("avl: nil compare func")
	}
	return &Tree[T]{cmp: cmp}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	}
	return 0
}

// Len returns the number of keys in the tree.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, -1 for an empty tree.
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Clear drops every key.
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.size = 0
}

// Insert adds key to the tree. It returns false, leaving the tree untouched,
// when an equal key is already present.
func (tree *Tree[T]) Insert(key T) bool {
	var added bool
	tree.root, added = tree.insert(tree.root, key)
	if added {
		tree.size++
	}
	return added
}

func (tree *Tree[T]) insert(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return newLeaf(key), true
	}

	var added bool
	switch c := tree.cmp(key, n.key); {
	case c < 0:
		n.left, added = tree.insert(n.left, key)
	case c > 0:
		n.right, added = tree.insert(n.right, key)
	default:
		// already present
		return n, false
	}

	return balance(n), added
}

// Contains reports whether key is in the tree.
func (tree *Tree[T]) Contains(key T) bool {
	n := tree.root
	for n != nil {
		switch c := tree.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Remove deletes key from the tree. It returns false when the key was not
// present.
func (tree *Tree[T]) Remove(key T) bool {
	var removed bool
	tree.root, removed = tree.remove(tree.root, key)
	if removed {
		tree.size--
	}
	return removed
}

func (tree *Tree[T]) remove(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := tree.cmp(key, n.key); {
	case c < 0:
		n.left, removed = tree.remove(n.left, key)
	case c > 0:
		n.right, removed = tree.remove(n.right, key)
	default:
		switch {
		case n.left == nil && n.right == nil:
			return nil, true
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		}
		// Two children: take over the in-order successor's key and drop
		// the successor, which has no left child, from the right subtree.
		successor := findMin(n.right)
		n.key = successor.key
		n.right, removed = tree.remove(n.right, successor.key)
	}

	return balance(n), removed
}

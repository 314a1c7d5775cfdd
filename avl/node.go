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

// node is a single element of the tree. A node owns its two subtrees, there
// is no parent link.
type node[T any] struct {
	key    T
	height int // edges on the longest path down to a leaf; a leaf has 0
	left   *node[T]
	right  *node[T]
}

func newLeaf[T any](key T) *node[T] {
	return &node[T]{key: key}
}

// height of a subtree, -1 for a missing one. It only reads the stored
// field and relies on every mutation keeping it current.
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// findMin returns the leftmost node of the subtree rooted at n.
func findMin[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

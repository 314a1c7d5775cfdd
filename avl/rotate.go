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

// allowedImbalance is the largest height difference tolerated between the
// two subtrees of a node.
const allowedImbalance = 1

// rotateWithLeftChild lifts the left child of k2 into its place. It is the
// fix for a left subtree that grew on its outer (left) side.
//
//	      k2           k1
//	     /  \         /  \
//	    k1   C  ->   A    k2
//	   /  \              /  \
//	  A    B            B    C
func rotateWithLeftChild[T any](k2 *node[T]) *node[T] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2

	// k2 is now below k1, so its height has to be settled first
	k2.updateHeight()
	k1.updateHeight()
	return k1
}

// rotateWithRightChild is the mirror image of rotateWithLeftChild.
func rotateWithRightChild[T any](k2 *node[T]) *node[T] {
	k1 := k2.right
	k2.right = k1.left
	k1.left = k2

	k2.updateHeight()
	k1.updateHeight()
	return k1
}

// doubleWithLeftChild handles the left-right case: the left subtree of k3
// grew on its inner side, which a single rotation cannot repair.
func doubleWithLeftChild[T any](k3 *node[T]) *node[T] {
	k3.left = rotateWithRightChild(k3.left)
	return rotateWithLeftChild(k3)
}

// doubleWithRightChild handles the right-left case.
func doubleWithRightChild[T any](k3 *node[T]) *node[T] {
	k3.right = rotateWithLeftChild(k3.right)
	return rotateWithRightChild(k3)
}

// balance restores the AVL condition at n, assuming both subtrees of n are
// already balanced and carry correct heights. It applies at most one single
// or double rotation and returns the root that now occupies n's slot.
func balance[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	switch {
	case height(n.left)-height(n.right) > allowedImbalance:
		if height(n.left.left) >= height(n.left.right) {
			n = rotateWithLeftChild(n)
		} else {
			n = doubleWithLeftChild(n)
		}
	case height(n.right)-height(n.left) > allowedImbalance:
		if height(n.right.right) >= height(n.right.left) {
			n = rotateWithRightChild(n)
		} else {
			n = doubleWithRightChild(n)
		}
	}

	n.updateHeight()
	return n
}

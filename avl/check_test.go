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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf and join build subtrees by hand so rotations can be tested in
// isolation from insert.
func leaf(k int) *node[int] {
	return newLeaf(k)
}

func join(l *node[int], k int, r *node[int]) *node[int] {
	n := &node[int]{key: k, left: l, right: r}
	n.updateHeight()
	return n
}

func TestHeightHelper(t *testing.T) {
	assert.Equal(t, -1, height[int](nil))
	assert.Equal(t, 0, height(leaf(1)))
	assert.Equal(t, 2, height(join(join(leaf(1), 2, nil), 3, leaf(4))))
}

func TestRotateWithLeftChild(t *testing.T) {
	// 3(2(1,-),-) -> 2(1,3)
	root := rotateWithLeftChild(join(join(leaf(1), 2, nil), 3, nil))

	assert.Equal(t, 2, root.key)
	assert.Equal(t, 1, root.left.key)
	assert.Equal(t, 3, root.right.key)
	assert.Equal(t, 1, root.height)
	assert.Equal(t, 0, root.right.height)
}

func TestRotateWithRightChild(t *testing.T) {
	root := rotateWithRightChild(join(nil, 1, join(nil, 2, leaf(3))))

	assert.Equal(t, 2, root.key)
	assert.Equal(t, 1, root.left.key)
	assert.Equal(t, 3, root.right.key)
	assert.Equal(t, 1, root.height)
	assert.Equal(t, 0, root.left.height)
}

func TestRotationMovesInnerSubtree(t *testing.T) {
	// 4(2(1,3),5) -> 2(1,4(3,5)): 3 changes parent
	root := rotateWithLeftChild(join(join(leaf(1), 2, leaf(3)), 4, leaf(5)))

	assert.Equal(t, 2, root.key)
	assert.Equal(t, 3, root.right.left.key)
	assert.Equal(t, 5, root.right.right.key)
	assert.Equal(t, 1, root.right.height)
	assert.Equal(t, 2, root.height)
}

func TestDoubleRotations(t *testing.T) {
	lr := doubleWithLeftChild(join(join(nil, 1, leaf(2)), 3, nil))
	assert.Equal(t, []int{2, 1, 3}, []int{lr.key, lr.left.key, lr.right.key})
	assert.Equal(t, 1, lr.height)

	rl := doubleWithRightChild(join(nil, 1, join(leaf(2), 3, nil)))
	assert.Equal(t, []int{2, 1, 3}, []int{rl.key, rl.left.key, rl.right.key})
	assert.Equal(t, 1, rl.height)
}

func TestBalanceNoRotation(t *testing.T) {
	assert.Nil(t, balance[int](nil))

	n := join(leaf(1), 2, nil)
	n.height = 7 // stale
	n = balance(n)
	assert.Equal(t, 2, n.key)
	assert.Equal(t, 1, n.height)
}

func TestVerifyDetectsCorruption(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		tree := buildInts(2, 1, 3)
		tree.root.left.key = 5
		assert.ErrorIs(t, tree.Verify(), ErrOrder)
	})
	t.Run("height", func(t *testing.T) {
		tree := buildInts(2, 1, 3)
		tree.root.height = 4
		assert.ErrorIs(t, tree.Verify(), ErrHeight)
	})
	t.Run("balance", func(t *testing.T) {
		tree := New[int]()
		tree.root = join(nil, 1, join(nil, 2, leaf(3)))
		tree.size = 3
		assert.ErrorIs(t, tree.Verify(), ErrBalance)
	})
	t.Run("size", func(t *testing.T) {
		tree := buildInts(2, 1, 3)
		tree.size = 4
		err := tree.Verify()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSize)
		assert.Contains(t, err.Error(), "counted 3, size 4")
	})
}

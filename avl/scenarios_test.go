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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInts(keys ...int) *Tree[int] {
	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestSingleRotationAtRoot(t *testing.T) {
	tree := buildInts(10, 20, 30)

	require.NoError(t, tree.Verify())
	assert.Equal(t, []int{20, 10, 30}, tree.LevelOrder())
	assert.Equal(t, 1, tree.Height())
}

func TestDoubleRotationAtRoot(t *testing.T) {
	tree := buildInts(30, 10, 20)

	require.NoError(t, tree.Verify())
	assert.Equal(t, []int{20, 10, 30}, tree.LevelOrder())

	tree = buildInts(10, 30, 20)
	require.NoError(t, tree.Verify())
	assert.Equal(t, []int{20, 10, 30}, tree.LevelOrder())
}

func TestContainsOnSevenKeys(t *testing.T) {
	tree := buildInts(50, 30, 70, 20, 40, 60, 80)

	assert.True(t, tree.Contains(40))
	assert.False(t, tree.Contains(90))
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, tree.LevelOrder())
}

func TestRemoveNodeWithTwoChildren(t *testing.T) {
	tree := buildInts(50, 30, 70, 20, 40, 60, 80)

	assert.True(t, tree.Remove(70))

	require.NoError(t, tree.Verify())
	assert.False(t, tree.Contains(70))
	assert.True(t, tree.Contains(80))
	// 70 took over its successor's key, 80, and the old leaf is gone.
	assert.Equal(t, []int{50, 30, 80, 20, 40, 60}, tree.LevelOrder())
	assert.Equal(t, 6, tree.Len())
}

func TestRemoveAbsentKey(t *testing.T) {
	tree := buildInts(50, 30, 70, 20, 40, 60, 80)
	before := tree.LevelOrder()

	assert.False(t, tree.Remove(999))

	require.NoError(t, tree.Verify())
	assert.Equal(t, before, tree.LevelOrder())
	assert.Equal(t, 7, tree.Len())
}

func TestIncreasingInsertStaysShallow(t *testing.T) {
	tree := New[int]()
	for i := 1; i <= 100; i++ {
		tree.Insert(i)
	}

	require.NoError(t, tree.Verify())
	bound := int(math.Ceil(1.44 * math.Log2(102)))
	assert.LessOrEqual(t, tree.Height(), bound)
	assert.Equal(t, 100, tree.Len())
	assert.Equal(t, 100, len(inOrder(tree)))
}

// Inserting a key that is already there is a silent no-op, not an update
// and not an error.
func TestDuplicateInsertIsIgnored(t *testing.T) {
	tree := buildInts(5, 3, 8)

	assert.False(t, tree.Insert(3))
	assert.False(t, tree.Insert(3))

	require.NoError(t, tree.Verify())
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []int{3, 5, 8}, inOrder(tree))
}

func TestRoundTrip(t *testing.T) {
	tree := New[int]()
	for k := -50; k <= 50; k += 7 {
		tree.Insert(k)
		assert.True(t, tree.Contains(k), "key %d", k)
	}
	for k := -50; k <= 50; k += 7 {
		tree.Remove(k)
		assert.False(t, tree.Contains(k), "key %d", k)
		require.NoError(t, tree.Verify())
	}
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
}

func TestEmptyTree(t *testing.T) {
	tree := New[string]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, tree.Height())
	assert.False(t, tree.Contains("x"))
	assert.False(t, tree.Remove("x"))
	assert.Nil(t, tree.LevelOrder())
	assert.Nil(t, tree.Levels())
	require.NoError(t, tree.Verify())

	var buf bytes.Buffer
	require.NoError(t, tree.Print(&buf))
	require.NoError(t, tree.PrintLevels(&buf))
	assert.Empty(t, buf.String())
}

func TestClear(t *testing.T) {
	tree := buildInts(1, 2, 3, 4)
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Verify())

	tree.Insert(9)
	assert.Equal(t, []int{9}, tree.LevelOrder())
}

func TestNewFuncOrdering(t *testing.T) {
	// case-insensitive, descending
	tree := NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(b), strings.ToLower(a))
	})
	for _, k := range []string{"b", "A", "c", "B"} {
		tree.Insert(k)
	}

	require.NoError(t, tree.Verify())
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []string{"c", "b", "A"}, inOrder(tree))
	assert.True(t, tree.Contains("C"))
}

func TestNewFuncNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewFunc[int](nil) })
}

func TestLevelsAndPrint(t *testing.T) {
	tree := buildInts(50, 30, 70, 20, 40, 60, 80, 10)

	assert.Equal(t, [][]int{{50}, {30, 70}, {20, 40, 60, 80}, {10}}, tree.Levels())

	var flat, levels bytes.Buffer
	require.NoError(t, tree.Print(&flat))
	require.NoError(t, tree.PrintLevels(&levels))
	assert.Equal(t, "50 30 70 20 40 60 80 10\n", flat.String())
	assert.Equal(t, "50\n30 70\n20 40 60 80\n10\n", levels.String())
}

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
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

type levelItem[T any] struct {
	n     *node[T]
	depth int
}

// walkLevels visits the nodes breadth first, left child before right
// child. The root is checked before it is queued, so an empty tree visits
// nothing.
func (tree *Tree[T]) walkLevels(visit func(key T, depth int)) {
	if tree.root == nil {
		return
	}

	queue := linkedlistqueue.New()
	queue.Enqueue(levelItem[T]{tree.root, 0})
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		item := v.(levelItem[T])
		if item.n.left != nil {
			queue.Enqueue(levelItem[T]{item.n.left, item.depth + 1})
		}
		if item.n.right != nil {
			queue.Enqueue(levelItem[T]{item.n.right, item.depth + 1})
		}
		visit(item.n.key, item.depth)
	}
}

// LevelOrder returns the keys in breadth-first order, nil for an empty tree.
func (tree *Tree[T]) LevelOrder() []T {
	if tree.root == nil {
		return nil
	}
	keys := make([]T, 0, tree.size)
	tree.walkLevels(func(key T, _ int) {
		keys = append(keys, key)
	})
	return keys
}

// Levels returns the keys grouped by depth: Levels()[0] holds the root,
// Levels()[1] its children and so on, each level ordered left to right.
func (tree *Tree[T]) Levels() [][]T {
	var levels [][]T
	tree.walkLevels(func(key T, depth int) {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], key)
	})
	return levels
}

// Print writes the level-order keys to w on a single line. Nothing is
// written for an empty tree.
func (tree *Tree[T]) Print(w io.Writer) error {
	keys := tree.LevelOrder()
	if keys == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, joinKeys(keys))
	return err
}

// PrintLevels writes one line per depth. Nothing is written for an empty
// tree.
func (tree *Tree[T]) PrintLevels(w io.Writer) error {
	for _, level := range tree.Levels() {
		if _, err := fmt.Fprintln(w, joinKeys(level)); err != nil {
			return err
		}
	}
	return nil
}

func joinKeys[T any](keys []T) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, k)
	}
	return b.String()
}

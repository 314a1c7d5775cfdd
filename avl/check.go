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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrHeight  = errors.New("stored height is wrong")
	ErrBalance = errors.New("subtree heights differ by more than one")
	ErrSize    = errors.New("node count does not match size")
)

// Verify walks the whole tree and returns an error describing the first
// broken invariant, or nil for a consistent tree. It is meant for tests and
// diagnostics, not for use on a hot path.
func (tree *Tree[T]) Verify() error {
	c := checker[T]{cmp: tree.cmp}
	if err := c.walk(tree.root); err != nil {
		return err
	}
	if c.count != tree.size {
		return fmt.Errorf("%w: counted %d, size %d", ErrSize, c.count, tree.size)
	}
	return nil
}

type checker[T any] struct {
	cmp     func(a, b T) int
	prev    T
	hasPrev bool
	count   int
}

// walk checks the subtree in order, so every key must sort strictly after
// the one visited before it.
func (c *checker[T]) walk(n *node[T]) error {
	if n == nil {
		return nil
	}
	if err := c.walk(n.left); err != nil {
		return err
	}

	if c.hasPrev && c.cmp(c.prev, n.key) >= 0 {
		return fmt.Errorf("%w: %v before %v", ErrOrder, c.prev, n.key)
	}
	c.prev, c.hasPrev = n.key, true
	c.count++

	if err := c.walk(n.right); err != nil {
		return err
	}

	hl, hr := height(n.left), height(n.right)
	if want := max(hl, hr) + 1; n.height != want {
		return fmt.Errorf("%w: node %v has %d, want %d", ErrHeight, n.key, n.height, want)
	}
	if hl-hr > allowedImbalance || hr-hl > allowedImbalance {
		return fmt.Errorf("%w: node %v has %d and %d", ErrBalance, n.key, hl, hr)
	}
	return nil
}

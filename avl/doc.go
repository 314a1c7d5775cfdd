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

// Package avl implements a generic, in-memory AVL tree: a binary search
// tree that keeps the heights of the two subtrees of every node within one
// of each other.
//
// Keys are unique. Inserting a key that is already present and removing a
// key that is absent are both silent no-ops; the boolean results only report
// whether the tree changed.
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialise access themselves, e.g. with a sync.Mutex
// around every call.
//
// The balancing follows the classic textbook scheme: every node stores its
// height, and after each insert or remove the nodes on the path back to the
// root are re-balanced innermost first with single or double rotations.
package avl

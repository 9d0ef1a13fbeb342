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

type node struct {
	key    int
	height int // 1 for a leaf
	left   *node
	right  *node
}

func newNode(key int) *node {
	return &node{key: key, height: 1}
}

// height of a nil subtree is 0
func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(right) - height(left)
func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.right) - height(n.left)
}

// first returns the lowest node of a subtree
func (n *node) first() *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

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

// rotateLeft lifts node.right into node's place and returns it.
func rotateLeft(node *node) *node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot
	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight lifts node.left into node's place and returns it.
func rotateRight(node *node) *node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores |balance| <= 1 at node, whose subtrees must
// already be valid and whose height must be current. The rotation is
// chosen from the balance of the heavier child, so the same rules serve
// both insert and delete.
func rebalance(node *node) *node {
	bf := balance(node)

	// Right-heavy
	if bf > 1 {
		if balance(node.right) >= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	// Left-heavy
	if bf < -1 {
		if balance(node.left) <= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	return node
}

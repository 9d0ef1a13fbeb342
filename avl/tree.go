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

// Tree holds the root of an AVL tree. The zero value is an empty tree.
type Tree struct {
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nil}
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height is the number of nodes on the longest root-to-leaf path, 0 when empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Len counts the keys. The tree keeps no counter, so this walks every node.
func (tree *Tree) Len() int {
	count := 0
	for range tree.Keys() {
		count++
	}
	return count
}

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree untouched.
func (tree *Tree) Insert(key int) {
	tree.root = insertRecursive(tree.root, key)
}

func insertRecursive(node *node, key int) *node {
	if node == nil {
		return newNode(key)
	}

	if key < node.key {
		node.left = insertRecursive(node.left, key)
	} else if key > node.key {
		node.right = insertRecursive(node.right, key)
	} else {
		return node // duplicate
	}

	node.updateHeight()
	return rebalance(node)
}

// Search reports whether key is in the tree.
func (tree *Tree) Search(key int) bool {
	return searchNode(tree.root, key)
}

func searchNode(node *node, key int) bool {
	if node == nil {
		return false
	}

	if key < node.key {
		return searchNode(node.left, key)
	} else if key > node.key {
		return searchNode(node.right, key)
	}
	return true
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
func (tree *Tree) Delete(key int) {
	tree.root = deleteRecursive(tree.root, key)
}

func deleteRecursive(node *node, key int) *node {
	if node == nil {
		return nil // key not found
	}

	if key < node.key {
		node.left = deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = deleteRecursive(node.right, key)
	} else {
		// zero or one child: splice the child into this slot
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		// two children: take over the in-order successor's key and
		// remove the successor, which has no left child, from the right
		successor := node.right.first()
		node.key = successor.key
		node.right = deleteRecursive(node.right, successor.key)
	}

	node.updateHeight()
	return rebalance(node)
}

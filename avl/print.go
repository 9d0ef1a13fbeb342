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
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print draws the tree sideways on w, right subtree above its parent and
// left subtree below. Each node shows its key, height and balance.
// Returns the depth drawn, which is 0 for an empty tree.
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree(w io.Writer, node *node, prefix string, br branch) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d h=%d b=%+d\n", node.key, node.height, balance(node))
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}

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
	"io"
	"iter"
	"strconv"
	"strings"
)

// Keys returns the keys in ascending order. The sequence can be ranged
// over any number of times and stops walking as soon as the loop breaks.
// The tree must not be modified while a range over Keys is in progress.
func (tree *Tree) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		walk(tree.root, yield)
	}
}

func walk(node *node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, yield) && yield(node.key) && walk(node.right, yield)
}

// InOrder returns all keys in ascending order. An empty tree gives an
// empty, non-nil slice.
func (tree *Tree) InOrder() []int {
	keys := []int{}
	for key := range tree.Keys() {
		keys = append(keys, key)
	}
	return keys
}

// String renders the keys in ascending order, each followed by a single
// space: {10, 20, 30} gives "10 20 30 ".
func (tree *Tree) String() string {
	var b strings.Builder
	for key := range tree.Keys() {
		b.WriteString(strconv.Itoa(key))
		b.WriteByte(' ')
	}
	return b.String()
}

// WriteInOrder writes String followed by a newline.
func (tree *Tree) WriteInOrder(w io.Writer) error {
	_, err := io.WriteString(w, tree.String()+"\n")
	return err
}

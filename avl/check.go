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

// ErrInvariant is wrapped by every error Check returns.
var ErrInvariant = errors.New("avl: invariant violated")

// Check walks the whole tree and returns an error describing the first
// node that breaks key order, the stored height, or the balance bound.
func (tree *Tree) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// internal: keys of the subtree must lie strictly between lower and upper
// when those are set. Returns the recomputed height.
func check(node *node, lower *int, upper *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lower != nil && node.key <= *lower {
		return 0, fmt.Errorf("%w: key %d is not above %d", ErrInvariant, node.key, *lower)
	}
	if upper != nil && node.key >= *upper {
		return 0, fmt.Errorf("%w: key %d is not below %d", ErrInvariant, node.key, *upper)
	}

	hl, err := check(node.left, lower, &node.key)
	if err != nil {
		return 0, err
	}
	hr, err := check(node.right, &node.key, upper)
	if err != nil {
		return 0, err
	}

	if expected := max(hl, hr) + 1; node.height != expected {
		return 0, fmt.Errorf("%w: key %d has height %d, expected %d", ErrInvariant, node.key, node.height, expected)
	}
	if bf := hr - hl; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: key %d has balance %+d", ErrInvariant, node.key, bf)
	}
	return node.height, nil
}

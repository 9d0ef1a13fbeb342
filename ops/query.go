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

package ops

import (
	"fmt"
	"strings"

	"github.com/cybrota/avltree/avl"
)

// SearchOperation prints "<key> true|false" for every key
type SearchOperation struct {
	verbs
}

func NewSearchOperation() *SearchOperation {
	return &SearchOperation{verbs: verbs{"search", "find", "has", "s"}}
}

func (o *SearchOperation) Priority() int { return 3 }

func (o *SearchOperation) Usage() string { return "search <key>... : report whether each key is present" }

func (o *SearchOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	keys, err := requireKeys(o.Name(), args)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%d %t", key, tree.Search(key)))
	}
	return strings.Join(lines, "\n"), nil
}

// InOrderOperation renders the keys in ascending order, each followed by
// a space, then a newline
type InOrderOperation struct {
	verbs
}

func NewInOrderOperation() *InOrderOperation {
	return &InOrderOperation{verbs: verbs{"inorder", "list", "ls"}}
}

func (o *InOrderOperation) Priority() int { return 4 }

func (o *InOrderOperation) Usage() string { return "inorder : list keys in ascending order" }

func (o *InOrderOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	var b strings.Builder
	if err := tree.WriteInOrder(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ShowOperation draws the tree
type ShowOperation struct {
	verbs
}

func NewShowOperation() *ShowOperation {
	return &ShowOperation{verbs: verbs{"show", "print", "tree"}}
}

func (o *ShowOperation) Priority() int { return 5 }

func (o *ShowOperation) Usage() string { return "show : draw the tree with heights and balance factors" }

func (o *ShowOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	if tree.IsEmpty() {
		return "(empty)", nil
	}
	var b strings.Builder
	tree.Print(&b)
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// CheckOperation verifies order, height and balance of every node
type CheckOperation struct {
	verbs
}

func NewCheckOperation() *CheckOperation {
	return &CheckOperation{verbs: verbs{"check", "verify"}}
}

func (o *CheckOperation) Priority() int { return 6 }

func (o *CheckOperation) Usage() string { return "check : verify the tree invariants" }

func (o *CheckOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	if err := tree.Check(); err != nil {
		return "", err
	}
	return "ok", nil
}

// StatsOperation reports key count and height
type StatsOperation struct {
	verbs
}

func NewStatsOperation() *StatsOperation {
	return &StatsOperation{verbs: verbs{"stats", "len", "height"}}
}

func (o *StatsOperation) Priority() int { return 7 }

func (o *StatsOperation) Usage() string { return "stats : print key count and tree height" }

func (o *StatsOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	return fmt.Sprintf("len=%d height=%d", tree.Len(), tree.Height()), nil
}

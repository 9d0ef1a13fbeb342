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

	"github.com/cybrota/avltree/avl"
)

// InsertOperation adds keys. Keys already present are skipped silently
// and do not count towards the reported total.
type InsertOperation struct {
	verbs
}

func NewInsertOperation() *InsertOperation {
	return &InsertOperation{verbs: verbs{"insert", "add", "i"}}
}

func (o *InsertOperation) Priority() int { return 1 }

func (o *InsertOperation) Usage() string { return "insert <key>... : add keys, duplicates are ignored" }

func (o *InsertOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	keys, err := requireKeys(o.Name(), args)
	if err != nil {
		return "", err
	}

	added := 0
	for _, key := range keys {
		if !tree.Search(key) {
			added++
		}
		tree.Insert(key)
	}
	return fmt.Sprintf("inserted %d", added), nil
}

// DeleteOperation removes keys. Absent keys are skipped silently.
type DeleteOperation struct {
	verbs
}

func NewDeleteOperation() *DeleteOperation {
	return &DeleteOperation{verbs: verbs{"delete", "del", "remove", "rm", "d"}}
}

func (o *DeleteOperation) Priority() int { return 2 }

func (o *DeleteOperation) Usage() string { return "delete <key>... : remove keys, absent keys are ignored" }

func (o *DeleteOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	keys, err := requireKeys(o.Name(), args)
	if err != nil {
		return "", err
	}

	removed := 0
	for _, key := range keys {
		if tree.Search(key) {
			removed++
		}
		tree.Delete(key)
	}
	return fmt.Sprintf("deleted %d", removed), nil
}

// ClearOperation drops every key
type ClearOperation struct {
	verbs
}

func NewClearOperation() *ClearOperation {
	return &ClearOperation{verbs: verbs{"clear", "reset"}}
}

func (o *ClearOperation) Priority() int { return 8 }

func (o *ClearOperation) Usage() string { return "clear : remove every key" }

func (o *ClearOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	*tree = *avl.New()
	return "cleared", nil
}

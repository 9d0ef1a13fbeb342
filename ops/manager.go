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
	"sort"

	"github.com/cybrota/avltree/avl"
)

// Manager dispatches driver lines to registered operations
type Manager struct {
	operations []Operation
}

// NewManager creates a new manager with all built-in operations
func NewManager() *Manager {
	manager := &Manager{}

	manager.Register(NewInsertOperation())
	manager.Register(NewDeleteOperation())
	manager.Register(NewSearchOperation())
	manager.Register(NewInOrderOperation())
	manager.Register(NewShowOperation())
	manager.Register(NewCheckOperation())
	manager.Register(NewStatsOperation())
	manager.Register(NewClearOperation())

	return manager
}

// Register adds an operation, keeping the list in priority order
func (m *Manager) Register(op Operation) {
	m.operations = append(m.operations, op)
	sort.SliceStable(m.operations, func(i, j int) bool {
		return m.operations[i].Priority() < m.operations[j].Priority()
	})
}

// Operations returns the registered operations in priority order
func (m *Manager) Operations() []Operation {
	return append([]Operation(nil), m.operations...)
}

// Lookup finds the highest priority operation supporting verb
func (m *Manager) Lookup(verb string) (Operation, bool) {
	for _, op := range m.operations {
		if op.SupportsVerb(verb) {
			return op, true
		}
	}
	return nil, false
}

// Execute parses line and applies it to tree. Blank and comment lines
// return an empty output and no error.
func (m *Manager) Execute(tree *avl.Tree, line string) (string, error) {
	cmd, err := ParseLine(line)
	if err != nil {
		return "", err
	}
	if cmd == nil {
		return "", nil
	}
	return m.Run(tree, cmd)
}

// Run applies an already parsed command
func (m *Manager) Run(tree *avl.Tree, cmd *Command) (string, error) {
	op, ok := m.Lookup(cmd.Verb)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownOperation, cmd.Verb)
	}
	return op.Apply(tree, cmd.Args)
}

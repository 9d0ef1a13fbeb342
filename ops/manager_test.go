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
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

func TestManagerScenarios(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		last   string
		keysIn string
	}{
		{
			name:   "RR rotation",
			lines:  []string{"insert 10 20 30", "inorder"},
			last:   "10 20 30 \n",
			keysIn: "10 20 30 ",
		},
		{
			name:   "LR rotation via aliases",
			lines:  []string{"add 30", "i 10", "INSERT 20", "list"},
			last:   "10 20 30 \n",
			keysIn: "10 20 30 ",
		},
		{
			name:   "two children delete",
			lines:  []string{"insert 20 10 30 5 15 25 35", "delete 20", "search 20 25"},
			last:   "20 false\n25 true",
			keysIn: "5 10 15 25 30 35 ",
		},
		{
			name:   "delete rebalancing",
			lines:  []string{"insert 30 10 40 35", "rm 10", "check"},
			last:   "ok",
			keysIn: "30 35 40 ",
		},
		{
			name:   "comments and blanks",
			lines:  []string{"# setup", "", "insert 1", "   ", "stats"},
			last:   "len=1 height=1",
			keysIn: "1 ",
		},
		{
			name:   "clear",
			lines:  []string{"insert 1 2 3", "clear", "inorder"},
			last:   "\n",
			keysIn: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager := NewManager()
			tree := avl.New()

			var out string
			for _, line := range tc.lines {
				var err error
				out, err = manager.Execute(tree, line)
				if err != nil {
					t.Fatalf("Execute(%q) returned error: %v", line, err)
				}
			}
			if out != tc.last {
				t.Errorf("last output = %q, want %q", out, tc.last)
			}
			if tree.String() != tc.keysIn {
				t.Errorf("tree = %q, want %q", tree.String(), tc.keysIn)
			}
		})
	}
}

func TestInsertAndDeleteCounts(t *testing.T) {
	manager := NewManager()
	tree := avl.New()

	out, err := manager.Execute(tree, "insert 5 5 6")
	if err != nil || out != "inserted 2" {
		t.Errorf("insert: got %q, %v", out, err)
	}
	out, err = manager.Execute(tree, "delete 5 7")
	if err != nil || out != "deleted 1" {
		t.Errorf("delete: got %q, %v", out, err)
	}
}

func TestManagerErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"frobnicate 1", ErrUnknownOperation},
		{"insert", ErrMissingKeys},
		{"delete", ErrMissingKeys},
		{"search", ErrMissingKeys},
		{"insert ten", ErrBadKey},
		{"search 1 2x", ErrBadKey},
	}

	manager := NewManager()
	for _, tc := range tests {
		tree := avl.New()
		_, err := manager.Execute(tree, tc.line)
		if !errors.Is(err, tc.want) {
			t.Errorf("Execute(%q) error = %v, want %v", tc.line, err, tc.want)
		}
		if !tree.IsEmpty() {
			t.Errorf("Execute(%q) changed the tree on error", tc.line)
		}
	}

	if _, err := manager.Execute(avl.New(), `insert "unterminated`); err == nil {
		t.Error("Expected error for unterminated quote, got nil")
	}
}

func TestShowOperation(t *testing.T) {
	manager := NewManager()
	tree := avl.New()

	out, err := manager.Execute(tree, "show")
	if err != nil || out != "(empty)" {
		t.Errorf("show on empty tree: got %q, %v", out, err)
	}

	manager.Execute(tree, "insert 2 1 3")
	out, err = manager.Execute(tree, "print")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 3 || !strings.Contains(lines[1], "2 h=2") {
		t.Errorf("show output:\n%s", out)
	}
}

type echoOperation struct {
	verbs
	priority int
}

func (o *echoOperation) Priority() int { return o.priority }
func (o *echoOperation) Usage() string { return "echo" }
func (o *echoOperation) Apply(tree *avl.Tree, args []string) (string, error) {
	return strings.Join(args, ","), nil
}

func TestRegisterPriority(t *testing.T) {
	manager := NewManager()
	manager.Register(&echoOperation{verbs: verbs{"echo", "insert"}, priority: 0})

	out, err := manager.Execute(avl.New(), "insert 1 2")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "1,2" {
		t.Errorf("higher priority operation not chosen, got %q", out)
	}

	ops := manager.Operations()
	for i := 1; i < len(ops); i++ {
		if ops[i-1].Priority() > ops[i].Priority() {
			t.Errorf("Operations not sorted at %d", i)
		}
	}
	if ops[0].Name() != "echo" {
		t.Errorf("first operation = %q, want echo", ops[0].Name())
	}
}

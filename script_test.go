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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/ops"
)

func TestRunScript(t *testing.T) {
	testCases := []struct {
		name     string
		script   string
		opts     ScriptOptions
		expected string
		lines    int
	}{
		{
			name:     "right right rotation",
			script:   "insert 10 20 30\ninorder\n",
			expected: "inserted 3\n10 20 30 \n",
			lines:    2,
		},
		{
			name: "two children delete",
			script: `# build a full tree
insert 20 10 30 5 15 25 35
delete 20
search 20 25
inorder
`,
			expected: "inserted 7\ndeleted 1\n20 false\n25 true\n5 10 15 25 30 35 \n",
			lines:    4,
		},
		{
			name:     "blank lines and comments are skipped",
			script:   "\n   \n# nothing\ninsert 1\n\nstats\n",
			expected: "inserted 1\nlen=1 height=1\n",
			lines:    2,
		},
		{
			name:     "echo",
			script:   "insert 5\n  inorder  \n",
			opts:     ScriptOptions{Echo: true},
			expected: "> insert 5\ninserted 1\n> inorder\n5 \n",
			lines:    2,
		},
		{
			name:     "empty script",
			script:   "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			result, err := runScript(avl.New(), ops.NewManager(), strings.NewReader(tc.script), &out, tc.opts)
			if err != nil {
				t.Fatalf("runScript() error = %v", err)
			}
			if out.String() != tc.expected {
				t.Errorf("output = %q; want %q", out.String(), tc.expected)
			}
			if result.Lines != tc.lines || result.Failed != 0 {
				t.Errorf("result = %+v; want %d lines, 0 failed", result, tc.lines)
			}
		})
	}
}

func TestRunScriptStopsAtFirstError(t *testing.T) {
	script := "insert 1 2\nfrobnicate 3\ninsert 4\n"
	tree := avl.New()

	var out bytes.Buffer
	result, err := runScript(tree, ops.NewManager(), strings.NewReader(script), &out, ScriptOptions{})
	if err == nil {
		t.Fatal("runScript() expected an error")
	}
	if !errors.Is(err, ops.ErrUnknownOperation) {
		t.Errorf("error = %v; want ErrUnknownOperation", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2:") {
		t.Errorf("error = %q; want the line number", err.Error())
	}
	if result.Failed != 1 {
		t.Errorf("Failed = %d; want 1", result.Failed)
	}
	if tree.Search(4) {
		t.Error("lines after the failure should not run")
	}
}

func TestRunScriptKeepGoing(t *testing.T) {
	script := "insert 1 x\ninsert 2\ndelete\nsearch 2\n"
	tree := avl.New()

	var out bytes.Buffer
	result, err := runScript(tree, ops.NewManager(), strings.NewReader(script), &out, ScriptOptions{KeepGoing: true})
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if result.Lines != 4 || result.Failed != 2 {
		t.Errorf("result = %+v; want 4 lines, 2 failed", result)
	}
	if out.String() != "inserted 1\n2 true\n" {
		t.Errorf("output = %q", out.String())
	}
	if got := tree.InOrder(); len(got) != 1 || got[0] != 2 {
		t.Errorf("InOrder() = %v; want [2]", got)
	}
}

func TestRunScriptQuotedArguments(t *testing.T) {
	var out bytes.Buffer
	_, err := runScript(avl.New(), ops.NewManager(), strings.NewReader(`insert "7" '3'`+"\ninorder\n"), &out, ScriptOptions{})
	if err != nil {
		t.Fatalf("runScript() error = %v", err)
	}
	if out.String() != "inserted 2\n3 7 \n" {
		t.Errorf("output = %q", out.String())
	}
}

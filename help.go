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
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avltree/ops"
)

// operationsMarkdown lists every registered operation as a markdown bullet
func operationsMarkdown(manager *ops.Manager) string {
	var b strings.Builder
	for _, op := range manager.Operations() {
		fmt.Fprintf(&b, "* `%s`\n", op.Usage())
	}
	return b.String()
}

func getHelpMarkdown(manager *ops.Manager) string {
	return fmt.Sprintf(`
**avltree %s**

A height-balanced binary search tree of unique integer keys, driven from scripts, key files or an interactive prompt.

Built with Go %s

# 1. Operations
%s
Duplicate inserts and deletes of absent keys are silent no-ops.

# 2. Commands
* avltree exec [file] : run operations, one per line ('#' starts a comment)
* avltree load <file> : bulk insert whitespace separated keys
* avltree repl : interactive prompt with a live view of the tree
* avltree settings : show or create ~/.avltree.yaml

# 3. Example
    insert 20 10 30 5 15 25 35
    delete 20
    inorder
prints 5 10 15 25 30 35

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula
`, version, runtime.Version(), operationsMarkdown(manager))
}

func getHelpMessage(manager *ops.Manager) string {
	result := markdown.Render(getHelpMarkdown(manager), 80, 3)
	return string(result)
}

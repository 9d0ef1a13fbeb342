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
	"strings"
	"testing"

	"github.com/cybrota/avltree/ops"
)

func TestHelpMarkdownListsOperations(t *testing.T) {
	manager := ops.NewManager()
	help := getHelpMarkdown(manager)

	for _, op := range manager.Operations() {
		if !strings.Contains(help, op.Usage()) {
			t.Errorf("help is missing usage for %s", op.Name())
		}
	}
	if !strings.Contains(help, version) {
		t.Errorf("help is missing version %q", version)
	}

	// operations appear in priority order
	insertAt := strings.Index(help, "insert <key>")
	clearAt := strings.Index(help, "clear :")
	if insertAt < 0 || clearAt < 0 || insertAt > clearAt {
		t.Errorf("operations not listed in priority order")
	}
}

func TestGetHelpMessageRenders(t *testing.T) {
	rendered := getHelpMessage(ops.NewManager())
	if rendered == "" {
		t.Fatal("getHelpMessage() returned empty text")
	}
	if !strings.Contains(rendered, "avltree") {
		t.Errorf("rendered help is missing the program name")
	}
}

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
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/ops"
)

// ScriptOptions controls how a script of operations is run
type ScriptOptions struct {
	KeepGoing bool // log failing lines and continue
	Echo      bool // print "> line" before each output
}

// ScriptResult summarises a script run
type ScriptResult struct {
	Lines  int // operations executed, blanks and comments excluded
	Failed int
}

// runScript executes every line of r against tree, writing outputs to w.
// Without KeepGoing the first failing line stops the run and its error is
// returned with the line number.
func runScript(tree *avl.Tree, manager *ops.Manager, r io.Reader, w io.Writer, opts ScriptOptions) (ScriptResult, error) {
	var result ScriptResult

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		cmd, err := ops.ParseLine(line)
		if err == nil && cmd == nil {
			continue
		}
		result.Lines++

		out := ""
		if err == nil {
			out, err = manager.Run(tree, cmd)
		}
		if err != nil {
			result.Failed++
			if !opts.KeepGoing {
				return result, fmt.Errorf("line %d: %w", lineNo, err)
			}
			log.Printf("line %d: %v", lineNo, err)
			continue
		}

		if opts.Echo {
			fmt.Fprintf(w, "> %s\n", strings.TrimSpace(line))
		}
		if out != "" {
			// inorder output already carries its newline
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			if _, err := io.WriteString(w, out); err != nil {
				return result, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read script: %w", err)
	}
	return result, nil
}

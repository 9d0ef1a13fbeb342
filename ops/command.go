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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command represents a parsed driver line with its parts
type Command struct {
	Parts    []string
	Verb     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Verb:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// ParseLine splits a driver line into a Command. Blank lines and
// comments starting with '#' give a nil Command and no error.
func ParseLine(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	parts, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %w", trimmed, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return NewCommand(parts), nil
}

// ParseKeys converts every argument to an int key
func ParseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: not a decimal integer", ErrBadKey, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// requireKeys is ParseKeys for operations that need at least one key
func requireKeys(name string, args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingKeys)
	}
	keys, err := ParseKeys(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return keys, nil
}

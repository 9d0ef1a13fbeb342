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

	"github.com/cybrota/avltree/avl"
)

var (
	// ErrUnknownOperation is returned for a verb no operation supports
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrMissingKeys is returned when an operation needs at least one key
	ErrMissingKeys = errors.New("missing keys")
	// ErrBadKey is returned when an argument is not a decimal integer
	ErrBadKey = errors.New("bad key")
)

// Operation defines the interface for one driver command over a tree
type Operation interface {
	Apply(tree *avl.Tree, args []string) (string, error)
	SupportsVerb(verb string) bool
	Priority() int // Lower number = higher priority
	Name() string
	Usage() string
}

// verbs is embedded by operations that match a fixed list of aliases
type verbs []string

func (v verbs) SupportsVerb(verb string) bool {
	for _, alias := range v {
		if alias == verb {
			return true
		}
	}
	return false
}

func (v verbs) Name() string {
	return v[0]
}

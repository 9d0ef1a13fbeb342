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

// Package avl implements a height-balanced binary search tree over
// unique int keys.
//
// Nodes carry no parent pointer. Insert and Delete descend recursively
// and every frame returns the (possibly rotated) root of its subtree,
// which the caller re-attaches on the way back up.
//
// Note: a tree is not safe for concurrent use. Either keep it in a
// single goroutine or guard it with a mutex.
//
// Inserting a key that is already present and deleting a key that is
// absent are silent no-ops; use Search to tell them apart.
package avl
